package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxfolio/renderer"
	"github.com/google/subcommands"
)

type taxformCmd struct {
	year   string
	asJSON bool
}

func (*taxformCmd) Name() string     { return "taxform" }
func (*taxformCmd) Synopsis() string { return "display the Anexo J tables of a year" }
func (*taxformCmd) Usage() string {
	return `taxfolio taxform -y <year> [-json]

  Displays the rows to copy into the Portuguese IRS Anexo J for the selected
  year: foreign dividends (Quadro 8A), stock sales (Quadro 9.2A) and option
  sales (Quadro 9.2B), each with its control sums.

  The command fails when the control sums do not match the input records.
`
}

func (c *taxformCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", "", "Fiscal year of the declaration.")
	f.BoolVar(&c.asJSON, "json", false, "print the tax form as JSON")
}

func (c *taxformCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.year == "" {
		fmt.Fprintln(os.Stderr, "Error: -y is required, the tax form is computed for a single year")
		return subcommands.ExitUsageError
	}
	ds, r, opts, status := loadReport(c.year)
	if r == nil {
		return status
	}
	if r.Year.IsAll() {
		fmt.Fprintln(os.Stderr, "Error: the tax form is computed for a single year, not for all")
		return subcommands.ExitUsageError
	}
	if c.asJSON {
		if s := printJSON(r.TaxForm); s != subcommands.ExitSuccess {
			return s
		}
	} else {
		printMarkdown(renderer.RenderTaxForm(r.TaxForm, opts))
	}

	if !r.TaxForm.Reconciles(ds) {
		fmt.Fprintln(os.Stderr, "Error: the tax form control sums do not match the input records")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
