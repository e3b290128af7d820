package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/renderer"
	"github.com/google/subcommands"
)

type yearsCmd struct {
	asJSON bool
}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "list the years found in the dataset" }
func (*yearsCmd) Usage() string {
	return `taxfolio years [-json]

  Lists the selectable periods: "all" followed by every year found in the
  dataset, most recent first.
`
}

func (c *yearsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "print the years as JSON")
}

func (c *yearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	years := taxfolio.AvailableYears(ds)
	if c.asJSON {
		return printJSON(years)
	}
	printMarkdown(renderer.YearsMarkdown(years))
	return subcommands.ExitSuccess
}
