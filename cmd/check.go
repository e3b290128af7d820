package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxfolio"
	"github.com/google/subcommands"
)

type checkCmd struct {
	strict bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report the records that reports leave out" }
func (*checkCmd) Usage() string {
	return `taxfolio check [-strict]

  Reads the dataset and lists the records whose dates cannot be parsed. Such
  records are counted in "all" totals but never in a specific year. It also
  verifies that the tax form of every year matches its input records.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "fail when any record is left out")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, err := DecodeDataset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	issues := ds.Issues()
	for _, is := range issues {
		fmt.Println(is)
	}

	status := subcommands.ExitSuccess
	for _, y := range taxfolio.AvailableYears(ds) {
		if y.IsAll() {
			continue
		}
		if !taxfolio.NewTaxForm(ds, y).Reconciles(ds) {
			fmt.Fprintf(os.Stderr, "Error: tax form %s does not match its input records\n", y)
			status = subcommands.ExitFailure
		}
	}

	if len(issues) == 0 {
		fmt.Fprintln(os.Stderr, "✅ Every record is dated.")
	} else {
		fmt.Fprintf(os.Stderr, "%d records are only counted in all years.\n", len(issues))
		if c.strict {
			status = subcommands.ExitFailure
		}
	}
	return status
}
