// Package renderer turns holding reports into markdown for terminal
// display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/holding"
)

// PerformanceMarkdown renders the per-window performance of a holding
// as a markdown table.
//
// Windows without data in the series are rendered as "n/a"; windows
// whose result only restates the last historical close are marked
// stale, so a flat line is not mistaken for a flat market.
func PerformanceMarkdown(asset string, reports []*holding.WindowReport, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Performance of %s\n\n", asset)

	fmt.Fprintln(&b, "| Window | Since | Value | Gain | Gain % | CAGR |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")

	for _, r := range reports {
		if r.Metrics == nil {
			fmt.Fprintf(&b, "| %s | %s | n/a | n/a | n/a | n/a |\n", r.Window, r.From)
			continue
		}
		window := r.Window.String()
		if r.Stale {
			window += " (stale)"
		}
		cagr := "-"
		if c, ok := r.Metrics.DisplayCAGR(); ok {
			cagr = holding.Percent(100 * c).SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			window,
			r.From,
			holding.M(r.Metrics.TotalValue, currency),
			holding.M(r.Metrics.AbsoluteGain, currency).SignedString(),
			holding.Percent(100*r.Metrics.PercentageGain).SignedString(),
			cagr,
		)
	}

	return b.String()
}
