package taxfolio

import (
	"encoding/json"
	"fmt"
	"io"
)

// A dataset is either a folder with one JSON document per collection, or a
// single bundle document using the same names as keys:
//
//	{
//	  "transactions": [...],
//	  "stock_sales": [...],
//	  "dividend_tax_summary": {"2023": {"840 - United States": {...}}},
//	  ...
//	}
//
// Absent collections are empty.

// collection binds the file name of a collection to its place in a Dataset.
type collection struct {
	name string
	ptr  func(ds *Dataset) any
}

// collections lists the files of a dataset folder.
var collections = []collection{
	{"transactions", func(ds *Dataset) any { return &ds.Transactions }},
	{"stock_sales", func(ds *Dataset) any { return &ds.StockSales }},
	{"option_sales", func(ds *Dataset) any { return &ds.OptionSales }},
	{"dividends", func(ds *Dataset) any { return &ds.Dividends }},
	{"dividend_tax_summary", func(ds *Dataset) any { return &ds.DividendTaxSummary }},
	{"fees", func(ds *Dataset) any { return &ds.Fees }},
	{"holdings", func(ds *Dataset) any { return &ds.Holdings }},
	{"historical_holdings", func(ds *Dataset) any { return &ds.HistoricalHoldings }},
}

// ReadDataset decodes a bundle document.
func ReadDataset(r io.Reader) (*Dataset, error) {
	ds := new(Dataset)
	dec := json.NewDecoder(r)
	if err := dec.Decode(ds); err != nil {
		return nil, fmt.Errorf("cannot decode dataset: %w", err)
	}
	return ds, nil
}

// EncodeDataset writes ds as a bundle document.
func EncodeDataset(w io.Writer, ds *Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("cannot encode dataset: %w", err)
	}
	return nil
}

// decodeCollection decodes one collection document into ptr.
// filename is for error message only.
func decodeCollection(filename string, r io.Reader, ptr any) error {
	if err := json.NewDecoder(r).Decode(ptr); err != nil && err != io.EOF {
		return fmt.Errorf("format error in %q: %w", filename, err)
	}
	return nil
}
