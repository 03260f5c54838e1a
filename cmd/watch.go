package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	configFile string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "keep the series updated on a schedule" }
func (*watchCmd) Usage() string {
	return `hold watch [-config <file>]

  Runs update on the cron schedule from the configuration (default
  @hourly) until interrupted. The series file stays current without
  manual updates.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configFile, "config", "hold.yaml", "Path to the quote source configuration.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(c.configFile)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	runner := cron.New()
	if _, err := runner.AddFunc(cfg.Schedule, func() {
		if err := updateSeries(cfg); err != nil {
			log.Printf("update failed: %v", err)
		}
	}); err != nil {
		fmt.Fprintf(os.Stderr, "invalid schedule %q: %v\n", cfg.Schedule, err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("watching %q on schedule %q", cfg.SeriesFile, cfg.Schedule)
	runner.Start()
	<-ctx.Done()
	runner.Stop()
	return subcommands.ExitSuccess
}
