package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/holding"
	"github.com/etnz/holding/date"
	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	configFile string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch the latest quote and record it in the series" }
func (*updateCmd) Usage() string {
	return `hold update [-config <file>]

  Fetches the latest quote from the configured source and records it
  as today's close in the series file. Days without a record between
  the last close and today are filled by carrying the last close
  forward, keeping one price per day.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configFile, "config", "hold.yaml", "Path to the quote source configuration.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(c.configFile)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := updateSeries(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// updateSeries performs a single fetch-and-record pass. It is shared
// with the watch command.
func updateSeries(cfg *Config) error {
	series, err := holding.DecodeSeries(cfg.SeriesFile)
	if err != nil {
		return err
	}

	price, err := holding.FetchQuote(holding.Daily(), cfg.Quote.URL, cfg.Quote.Path)
	if err != nil {
		return err
	}

	today := date.Today()
	updated, err := series.Extend(today, price)
	if err != nil {
		return err
	}
	if err := holding.EncodeSeries(cfg.SeriesFile, updated); err != nil {
		return err
	}
	log.Printf("recorded %v on %s (%d days in series)", price, today, updated.Len())
	return nil
}
