package cmd

import (
	"context"
	"flag"

	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct {
	year   string
	asJSON bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the positions held during a year" }
func (*holdingCmd) Usage() string {
	return `taxfolio holding [-y <year>] [-json]

  Displays the positions enriched with realized P/L, dividends and returns.
  For "all" and the running year these are the current holdings; for a past
  year, the lots held at its end valued at cost.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", taxfolio.AllYears.String(), `Year to report on, or "all".`)
	f.BoolVar(&c.asJSON, "json", false, "print the holdings as JSON")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, opts, status := newReport(c.year)
	if r == nil {
		return status
	}
	if c.asJSON {
		return printJSON(r.Holdings)
	}
	printMarkdown(renderer.RenderHoldings(r.Year, r.Holdings, opts))
	return subcommands.ExitSuccess
}
