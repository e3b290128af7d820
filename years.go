package taxfolio

import (
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/taxfolio/date"
)

// Sources whose years are the keys of a map rather than dates of items.
const (
	DividendSummarySource = "dividend_tax_summary"
	HistoricalSource      = "historical_holdings"
)

// Accessor resolves the date string of an item.
type Accessor func(item any) string

// Func wraps a typed accessor.
func Func[T any](fn func(T) string) Accessor {
	return func(item any) string {
		v, ok := item.(T)
		if !ok {
			return ""
		}
		return fn(v)
	}
}

// Field resolves the top level JSON field name of an item, as serialized by
// encoding/json. Anything that is not a string resolves to "".
func Field(name string) Accessor {
	path := "$." + name
	return func(item any) string {
		jobj, err := jsonView(item)
		if err != nil {
			return ""
		}
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return ""
		}
		// jsonpath may wrap a single answer in a list
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		s, _ := jval.(string)
		return s
	}
}

// jsonView returns the generic JSON value of item.
func jsonView(item any) (any, error) {
	if m, ok := item.(map[string]any); ok {
		return m, nil
	}
	b, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("cannot view %T as json: %w", item, err)
	}
	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		return nil, fmt.Errorf("cannot view %T as json: %w", item, err)
	}
	return jobj, nil
}

// ExtractYears collects the distinct years found in sources, most recent first.
//
// Each source is a slice whose items are dated through the accessor of the
// same name; sources without an accessor are ignored. The
// DividendSummarySource and HistoricalSource sources are maps keyed by year.
// Dates that do not parse are skipped.
func ExtractYears(sources map[string]any, accessors map[string]Accessor) []Year {
	found := make(map[Year]bool)
	for _, name := range slices.Sorted(maps.Keys(sources)) {
		src := sources[name]
		if name == DividendSummarySource || name == HistoricalSource {
			for _, k := range mapKeys(src) {
				if y, err := ParseYear(k); err == nil && !y.IsAll() {
					found[y] = true
				}
			}
			continue
		}
		get, ok := accessors[name]
		if !ok {
			continue
		}
		for _, item := range items(src) {
			if y, ok := date.YearOf(get(item)); ok {
				found[Year(fmt.Sprintf("%04d", y))] = true
			}
		}
	}
	years := slices.Collect(maps.Keys(found))
	slices.SortFunc(years, func(a, b Year) int { return cmp.Compare(b, a) })
	return years
}

// items returns the elements of a slice held in an interface.
func items(src any) []any {
	v := reflect.ValueOf(src)
	if v.Kind() != reflect.Slice {
		return nil
	}
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out
}

// mapKeys returns the string keys of a map held in an interface.
func mapKeys(src any) []string {
	v := reflect.ValueOf(src)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	return keys
}

// AvailableYears lists the selectable periods of ds: AllYears first, then the
// years any record falls in, most recent first.
func AvailableYears(ds *Dataset) []Year {
	if ds == nil {
		ds = &Dataset{}
	}
	sources := map[string]any{
		"transactions":        ds.Transactions,
		"stock_sales":         ds.StockSales,
		"option_sales":        ds.OptionSales,
		"dividends":           ds.Dividends,
		"fees":                ds.Fees,
		DividendSummarySource: ds.DividendTaxSummary,
		HistoricalSource:      ds.HistoricalHoldings,
	}
	accessors := map[string]Accessor{
		"transactions": Field("date"),
		"stock_sales":  Func(func(s StockSale) string { return s.SaleDate }),
		"option_sales": Field("close_date"),
		"dividends":    Field("date"),
		"fees":         Func(func(f Fee) string { return f.Date }),
	}
	return append([]Year{AllYears}, ExtractYears(sources, accessors)...)
}
