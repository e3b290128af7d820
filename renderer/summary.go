package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/taxfolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the period summary.
func SummaryMarkdown(s *taxfolio.Summary, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary %s", yearTitle(s.Year)))

	rows := [][]string{
		{"Stocks", opts.eur(s.StockPL)},
		{"Options", opts.eur(s.OptionPL)},
		{"Dividends", opts.eur(s.DividendPL)},
		{"Taxes & Commissions", opts.eur(s.TotalTaxesAndCommissions)},
	}
	if s.UnrealizedPL != nil {
		rows = append(rows, []string{"Unrealized", opts.eur(*s.UnrealizedPL)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total P/L"), md.Bold(opts.eur(s.TotalPL))},
		Rows:      rows,
	})

	doc.H2("Cash")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Net Deposits", opts.eur(s.NetDeposits)},
		Rows: [][]string{
			{"Return on Deposits", taxfolio.PercentString(s.ReturnPercentage)},
			{"Dividend Tax Withheld", opts.eur(s.DividendTaxWithheld)},
		},
	})

	doc.H2("Trades")
	if s.SaleCount == 0 {
		doc.PlainText("No closed positions.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d closed positions.", s.SaleCount))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Product", "Kind", "P/L"},
		Rows: [][]string{
			tradeRow("Best", s.BestTrade, opts),
			tradeRow("Worst", s.WorstTrade, opts),
		},
	})
	return doc.String()
}

func tradeRow(label string, t *taxfolio.Trade, opts Options) []string {
	if t == nil {
		return []string{label, taxfolio.NA, "", ""}
	}
	return []string{label, t.Product, t.Kind, opts.eur(t.Delta)}
}
