package cmd

import (
	"context"
	"flag"

	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	year   string
	asJSON bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the profit and loss summary of a year" }
func (*summaryCmd) Usage() string {
	return `taxfolio summary [-y <year>] [-json]

  Displays the P/L of the selected year split by stocks, options and dividends,
  the taxes and commissions paid, the return on net deposits, and the best and
  worst closed positions. Unrealized P/L is only shown for "all" and the
  running year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", taxfolio.AllYears.String(), `Year to report on, or "all".`)
	f.BoolVar(&c.asJSON, "json", false, "print the summary as JSON")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, opts, status := newReport(c.year)
	if r == nil {
		return status
	}
	if c.asJSON {
		return printJSON(r.Summary)
	}
	printMarkdown(renderer.SummaryMarkdown(r.Summary, opts))
	return subcommands.ExitSuccess
}
