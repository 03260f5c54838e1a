package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/holding"
	"github.com/etnz/holding/date"
)

func TestPerformanceMarkdown(t *testing.T) {
	series, err := holding.NewSeries(date.MustParse("2024-12-14"), []float64{52000, 50000, 45000})
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2024, 12, 16, 12, 0, 0, 0, time.UTC)

	reports, err := holding.ReviewAll(series, holding.FreshQuote(45000), 1, now)
	if err != nil {
		t.Fatal(err)
	}

	md := PerformanceMarkdown("BTC", reports, "EUR")

	if !strings.Contains(md, "# Performance of BTC") {
		t.Errorf("missing title in:\n%s", md)
	}
	// The 1d window has data: a -10% gain, with CAGR gated away.
	if !strings.Contains(md, "| 1d | 2024-12-15 |") {
		t.Errorf("missing 1d row in:\n%s", md)
	}
	if !strings.Contains(md, "-10.00%") {
		t.Errorf("missing -10.00%% gain in:\n%s", md)
	}
	// Windows starting before the series have no data.
	if !strings.Contains(md, "| 7d | 2024-12-09 | n/a | n/a | n/a | n/a |") {
		t.Errorf("missing n/a row for 7d in:\n%s", md)
	}
}

func TestPerformanceMarkdownStale(t *testing.T) {
	series, err := holding.NewSeries(date.MustParse("2024-12-14"), []float64{52000, 50000, 45000})
	if err != nil {
		t.Fatal(err)
	}
	// The day after the last close, with the current price falling
	// back to that same close.
	now := time.Date(2024, 12, 17, 10, 0, 0, 0, time.UTC)

	r, err := holding.Review(series, holding.MustParseWindow("1d"), series.FallbackQuote(), 1, now)
	if err != nil {
		t.Fatal(err)
	}

	md := PerformanceMarkdown("BTC", []*holding.WindowReport{r}, "EUR")
	if !strings.Contains(md, "1d (stale)") {
		t.Errorf("missing stale marker in:\n%s", md)
	}
}
