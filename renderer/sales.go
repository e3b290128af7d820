package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/taxfolio"
)

// SalesMarkdown renders the closed positions of a period.
func SalesMarkdown(y taxfolio.Year, sales []taxfolio.SaleView, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Closed Positions %s\n\n", yearTitle(y))
	if len(sales) == 0 {
		fmt.Fprintln(&b, "No closed positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Closed | Opened | Product | Kind | Country | Cost | Proceeds | Commission | P/L | Days | Annualized |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|---:|---:|---:|---:|---:|---:|")

	total := taxfolio.Money{}
	for _, s := range sales {
		days := taxfolio.NA
		if s.DaysHeld != nil {
			days = strconv.Itoa(*s.DaysHeld)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			s.CloseDate,
			s.OpenDate,
			s.Product,
			s.Kind,
			taxfolio.CountryCode(s.Country),
			opts.eur(s.Cost),
			opts.eur(s.Proceeds),
			opts.eur(s.Commission),
			opts.eur(s.Delta),
			days,
			taxfolio.PercentString(s.AnnualizedReturn),
		)
		total = total.Add(s.Delta)
	}
	fmt.Fprintf(&b, "| **%s** | | | | | | | | **%s** | | |\n", "Total", opts.eur(total))

	return b.String()
}
