// Package cmd implements the CLI application to track a single-asset
// holding.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var seriesFile = flag.String("series-file", "series.json", "Path to the daily close series file (JSON format)")
var currencyFlag = flag.String("currency", "EUR", "ISO currency code used to format monetary values")

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&valueCmd{},
	&windowsCmd{},
	&updateCmd{},
	&watchCmd{},
}
