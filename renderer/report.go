package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/taxfolio"
)

// YearsMarkdown lists the selectable periods.
func YearsMarkdown(years []taxfolio.Year) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Available Years\n\n")
	for _, y := range years {
		fmt.Fprintf(&b, "- %s\n", y)
	}
	return b.String()
}

// ChartsMarkdown renders every chart of a report, skipping the empty ones.
func ChartsMarkdown(r *taxfolio.Report, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Charts %s\n\n", yearTitle(r.Year))
	charts := []struct {
		title string
		s     taxfolio.Series
	}{
		{"Dividends", r.Charts.Dividends},
		{"Realized P/L", r.Charts.Realized},
		{"Fees", r.Charts.Fees},
		{"Allocation", r.Charts.Allocation},
		{"Dividends by Country", r.Charts.DividendCountries},
	}
	for _, c := range charts {
		ConditionalBlock(&b, func(w io.Writer) bool {
			if c.s.Total().IsZero() {
				return false
			}
			fmt.Fprintln(w, SeriesMarkdown(c.title, c.s, opts))
			return true
		})
	}
	return b.String()
}

// ReportMarkdown renders every view of a report.
func ReportMarkdown(r *taxfolio.Report, opts Options) string {
	var b strings.Builder
	fmt.Fprintln(&b, SummaryMarkdown(r.Summary, opts))
	fmt.Fprintln(&b, RenderHoldings(r.Year, r.Holdings, opts))
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.Sales) == 0 {
			return false
		}
		fmt.Fprintln(w, SalesMarkdown(r.Year, r.Sales, opts))
		return true
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		if r.Year.IsAll() {
			return false
		}
		fmt.Fprintln(w, RenderTaxForm(r.TaxForm, opts))
		return true
	})
	return b.String()
}
