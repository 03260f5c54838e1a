package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/holding"
	"github.com/google/subcommands"
)

type windowsCmd struct{}

func (*windowsCmd) Name() string     { return "windows" }
func (*windowsCmd) Synopsis() string { return "list the known time windows and their start" }
func (*windowsCmd) Usage() string {
	return `hold windows

  Lists the window identifiers the value command accepts, with the
  start each one resolves to right now against the series.
`
}

func (c *windowsCmd) SetFlags(f *flag.FlagSet) {}

func (c *windowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := holding.DecodeSeries(*seriesFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	var b strings.Builder
	fmt.Fprintln(&b, "| Window | Start |")
	fmt.Fprintln(&b, "|:---|:---|")
	for _, w := range holding.Windows() {
		fmt.Fprintf(&b, "| %s | %s |\n", w, w.Resolve(series, now).Format(time.RFC3339))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
