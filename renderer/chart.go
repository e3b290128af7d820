package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/taxfolio"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// barWidth is the length of the longest bar.
const barWidth = 30

// SeriesMarkdown renders a chart series as a table with a text bar per bucket.
func SeriesMarkdown(title string, s taxfolio.Series, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(title)
	if s.Len() == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	largest := decimal.Zero
	for _, v := range s.Values {
		largest = decimal.Max(largest, v.Decimal().Abs())
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"", "Amount", ""},
		Rows:   [][]string{},
	}
	for i, label := range s.Labels {
		table.Rows = append(table.Rows, []string{
			label,
			opts.eur(s.Values[i]),
			bar(s.Values[i], largest),
		})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(opts.eur(s.Total())), ""})
	doc.Table(table)

	return doc.String()
}

// bar draws v relative to largest, with "-" for negative values.
func bar(v taxfolio.Money, largest decimal.Decimal) string {
	if largest.IsZero() || v.IsZero() {
		return ""
	}
	n := int(v.Decimal().Abs().Div(largest).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
	n = max(n, 1)
	if v.IsNegative() {
		return strings.Repeat("-", n)
	}
	return strings.Repeat("#", n)
}
