package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/holding"
	"github.com/etnz/holding/renderer"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	window     string
	amount     float64
	price      float64
	fetch      bool
	configFile string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "current value and gains of the holding per window" }
func (*valueCmd) Usage() string {
	return `hold value [-w <window>] [-n <amount>] [-price <price> | -u]

  Computes the current value, gain, and annualized growth of the
  holding over one window (-w 1d, 7d, 30d, week, month, year, all) or
  over all of them. The current price is the last close of the series
  unless -price overrides it or -u fetches a live quote.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "", "Window to report on. Reports on all windows by default.")
	f.Float64Var(&c.amount, "n", 1, "Amount of the asset held.")
	f.Float64Var(&c.price, "price", -1, "Current price to value the holding at. Overrides -u.")
	f.BoolVar(&c.fetch, "u", false, "Fetch a live quote from the configured source.")
	f.StringVar(&c.configFile, "config", "hold.yaml", "Path to the quote source configuration.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := holding.DecodeSeries(*seriesFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quote, ok := c.quote(series)
	if !ok {
		return subcommands.ExitFailure
	}

	now := time.Now()
	var reports []*holding.WindowReport
	if c.window == "" {
		reports, err = holding.ReviewAll(series, quote, c.amount, now)
	} else {
		var w holding.Window
		w, err = holding.ParseWindow(c.window)
		if err == nil {
			var r *holding.WindowReport
			r, err = holding.Review(series, w, quote, c.amount, now)
			reports = append(reports, r)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PerformanceMarkdown(*seriesFile, reports, *currencyFlag))
	return subcommands.ExitSuccess
}

// quote resolves the current price from flags: explicit value, live
// fetch, or fallback to the series' last close.
func (c *valueCmd) quote(series *holding.Series) (holding.Quote, bool) {
	if c.price >= 0 {
		return holding.FreshQuote(c.price), true
	}
	if c.fetch {
		cfg, err := LoadConfig(c.configFile)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return holding.Quote{}, false
		}
		return holding.CurrentQuote(series, func() (float64, error) {
			return holding.FetchQuote(holding.Daily(), cfg.Quote.URL, cfg.Quote.Path)
		}), true
	}
	return series.FallbackQuote(), true
}
