package taxfolio

import (
	"fmt"

	"github.com/etnz/taxfolio/date"
)

// Dataset bundles every collection exported by the backend for one portfolio.
//
// A Dataset is read only: every computation derives new values from it.
type Dataset struct {
	Transactions       []Transaction         `json:"transactions"`
	StockSales         []StockSale           `json:"stock_sales"`
	OptionSales        []OptionSale          `json:"option_sales"`
	Dividends          []DividendTransaction `json:"dividends"`
	DividendTaxSummary DividendTaxSummary    `json:"dividend_tax_summary"`
	Fees               []Fee                 `json:"fees"`
	Holdings           []CurrentHolding      `json:"holdings"`
	HistoricalHoldings HistoricalHoldings    `json:"historical_holdings"`

	// dividendsResolved marks Dividends as already holding the dividend rows.
	dividendsResolved bool
}

// ForYear returns the records of the selected year.
//
// Dated records are kept when their date falls in the year: sales by their
// close date. For AllYears every record with a valid date is kept, so the
// lifetime figures are the sum of the yearly ones. The dividend summary and
// historical holdings keep only the year's key. Current holdings are not
// dated and are kept as is.
//
// Dividend rows are resolved on ds before filtering, so every period uses
// the same source.
func (ds *Dataset) ForYear(y Year) *Dataset {
	if ds == nil {
		return &Dataset{}
	}
	in := validDate
	if !y.IsAll() {
		in = y.Range().ContainsString
	}

	out := &Dataset{
		Transactions:      filter(ds.Transactions, func(tx Transaction) bool { return in(tx.Date) }),
		StockSales:        filter(ds.StockSales, func(s StockSale) bool { return in(s.SaleDate) }),
		OptionSales:       filter(ds.OptionSales, func(o OptionSale) bool { return in(o.CloseDate) }),
		Dividends:         filter(ds.DividendRows(), func(d DividendTransaction) bool { return in(d.Date) }),
		Fees:              filter(ds.Fees, func(f Fee) bool { return in(f.Date) }),
		Holdings:          ds.Holdings,
		dividendsResolved: true,
	}
	if y.IsAll() {
		out.DividendTaxSummary = ds.DividendTaxSummary
		out.HistoricalHoldings = ds.HistoricalHoldings
		return out
	}
	if countries, ok := ds.DividendTaxSummary[string(y)]; ok {
		out.DividendTaxSummary = DividendTaxSummary{string(y): countries}
	}
	if lots, ok := ds.HistoricalHoldings[string(y)]; ok {
		out.HistoricalHoldings = HistoricalHoldings{string(y): lots}
	}
	return out
}

// validDate reports whether s parses as a date.
func validDate(s string) bool {
	_, err := date.Parse(s)
	return err == nil
}

// filter returns a new slice with the items matching keep.
func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Issue describes a record the engine skips.
type Issue struct {
	Collection string
	Index      int
	Reason     string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s[%d]: %s", i.Collection, i.Index, i.Reason)
}

// Issues lists the records that cannot be placed in time and are therefore
// left out of every period, AllYears included.
func (ds *Dataset) Issues() []Issue {
	if ds == nil {
		return nil
	}
	var issues []Issue
	check := func(collection string, i int, field, value string) {
		if _, err := date.Parse(value); err != nil {
			issues = append(issues, Issue{Collection: collection, Index: i, Reason: fmt.Sprintf("%s: %v", field, err)})
		}
	}
	for i, tx := range ds.Transactions {
		check("transactions", i, "date", tx.Date)
	}
	for i, s := range ds.StockSales {
		check("stock_sales", i, "SaleDate", s.SaleDate)
		check("stock_sales", i, "BuyDate", s.BuyDate)
	}
	for i, o := range ds.OptionSales {
		check("option_sales", i, "close_date", o.CloseDate)
		check("option_sales", i, "open_date", o.OpenDate)
	}
	for i, d := range ds.Dividends {
		check("dividends", i, "date", d.Date)
	}
	for i, f := range ds.Fees {
		check("fees", i, "date", f.Date)
	}
	return issues
}

// DividendRows returns the dividend export, or when it is empty the DIVIDEND
// entries of the transaction ledger.
func (ds *Dataset) DividendRows() []DividendTransaction {
	if ds == nil {
		return nil
	}
	if ds.dividendsResolved || len(ds.Dividends) > 0 {
		return ds.Dividends
	}
	var rows []DividendTransaction
	for _, tx := range ds.Transactions {
		if d, ok := tx.Dividend(); ok {
			rows = append(rows, d)
		}
	}
	return rows
}

// Metrics aggregates the per-ISIN metrics of the dataset.
func (ds *Dataset) Metrics() map[string]ISINMetrics {
	return AggregateByISIN(ds.DividendRows(), ds.StockSales, ds.OptionSales)
}
