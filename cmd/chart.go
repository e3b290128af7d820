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

// chartNames are the values accepted by -c.
var chartNames = []string{"dividends", "realized", "fees", "allocation", "countries"}

type chartCmd struct {
	year   string
	chart  string
	asJSON bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the chart series of a year" }
func (*chartCmd) Usage() string {
	return `taxfolio chart [-y <year>] [-c <chart>] [-json]

  Displays the chart series of the selected year as text bars. Time series are
  bucketed by month for a year and by year for "all". Allocation and
  dividends by country keep the top entries and fold the rest.

  Charts: dividends, realized, fees, allocation, countries.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", taxfolio.AllYears.String(), `Year to report on, or "all".`)
	f.StringVar(&c.chart, "c", "", "Only display this chart.")
	f.BoolVar(&c.asJSON, "json", false, "print the series as JSON")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, opts, status := newReport(c.year)
	if r == nil {
		return status
	}
	if c.chart == "" {
		if c.asJSON {
			return printJSON(r.Charts)
		}
		printMarkdown(renderer.ChartsMarkdown(r, opts))
		return subcommands.ExitSuccess
	}

	title, s, ok := selectChart(r.Charts, c.chart)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown chart %q, valid charts are %v\n", c.chart, chartNames)
		return subcommands.ExitUsageError
	}
	if c.asJSON {
		return printJSON(s)
	}
	printMarkdown(renderer.SeriesMarkdown(title, s, opts))
	return subcommands.ExitSuccess
}

// selectChart returns the title and series of the chart called name.
func selectChart(charts taxfolio.Charts, name string) (string, taxfolio.Series, bool) {
	switch name {
	case "dividends":
		return "Dividends", charts.Dividends, true
	case "realized":
		return "Realized P/L", charts.Realized, true
	case "fees":
		return "Fees", charts.Fees, true
	case "allocation":
		return "Allocation", charts.Allocation, true
	case "countries":
		return "Dividends by Country", charts.DividendCountries, true
	}
	return "", taxfolio.Series{}, false
}
