package cmd

import (
	"context"
	"flag"

	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/renderer"
	"github.com/google/subcommands"
)

type salesCmd struct {
	year   string
	asJSON bool
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the positions closed during a year" }
func (*salesCmd) Usage() string {
	return `taxfolio sales [-y <year>] [-json]

  Lists stock and option sales closed in the selected year, most recent first,
  with their holding period and annualized return.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", taxfolio.AllYears.String(), `Year to report on, or "all".`)
	f.BoolVar(&c.asJSON, "json", false, "print the sales as JSON")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, opts, status := newReport(c.year)
	if r == nil {
		return status
	}
	if c.asJSON {
		return printJSON(r.Sales)
	}
	printMarkdown(renderer.SalesMarkdown(r.Year, r.Sales, opts))
	return subcommands.ExitSuccess
}
