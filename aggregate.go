package taxfolio

import (
	"maps"
	"slices"

	"github.com/etnz/taxfolio/date"
)

// ISINMetrics are the realized figures of one security.
type ISINMetrics struct {
	TotalRealizedStockPL Money `json:"totalRealizedStockPL"`
	TotalDividends       Money `json:"totalDividends"`
	TotalCommissions     Money `json:"totalCommissions"` // positive magnitude
}

// NetRealized is dividends plus realized P/L minus commissions.
func (m ISINMetrics) NetRealized() Money {
	return m.TotalDividends.Add(m.TotalRealizedStockPL).Sub(m.TotalCommissions.Abs())
}

// AggregateByISIN folds sales and dividends into per-ISIN metrics.
//
// It does not filter by date: pass the whole history for lifetime metrics, or
// the slices of Dataset.ForYear for period metrics. The output has the same
// shape in both cases.
func AggregateByISIN(dividends []DividendTransaction, stock []StockSale, options []OptionSale) map[string]ISINMetrics {
	metrics := make(map[string]ISINMetrics)
	for _, s := range Sales(stock, options) {
		m := metrics[s.ISIN]
		m.TotalRealizedStockPL = m.TotalRealizedStockPL.Add(s.Delta)
		m.TotalCommissions = m.TotalCommissions.Add(s.Commission.Abs())
		metrics[s.ISIN] = m
	}
	for _, d := range dividends {
		if !d.IsIncome() {
			continue
		}
		m := metrics[d.ISIN]
		m.TotalDividends = m.TotalDividends.Add(d.AmountEUR)
		metrics[d.ISIN] = m
	}
	return metrics
}

// Totals accumulates amounts by key.
type Totals map[string]Money

// Add accumulates v under key.
func (t Totals) Add(key string, v Money) { t[key] = t[key].Add(v) }

// Keys returns the keys in ascending order.
func (t Totals) Keys() []string { return slices.Sorted(maps.Keys(t)) }

// Total returns the sum of every key.
func (t Totals) Total() Money {
	total := Money{}
	for _, k := range t.Keys() {
		total = total.Add(t[k])
	}
	return total
}

// DatedValue is an amount at a date, the input of time based accumulators.
type DatedValue struct {
	Date  string
	Label string
	Value Money
}

// SumByYear accumulates values by calendar year. Undated values are skipped.
func SumByYear(values []DatedValue) Totals {
	t := make(Totals)
	for _, v := range values {
		if y := date.YearString(v.Date); y != "" {
			t.Add(y, v.Value)
		}
	}
	return t
}

// SumByMonth accumulates values in twelve monthly slots, January first.
// Values outside y are skipped; y must be a specific year.
func SumByMonth(y Year, values []DatedValue) [12]Money {
	var months [12]Money
	for _, v := range values {
		if !y.IsAll() && !y.Contains(v.Date) {
			continue
		}
		if i, ok := date.MonthIndex(v.Date); ok {
			months[i] = months[i].Add(v.Value)
		}
	}
	return months
}

// SumByLabel accumulates values by label.
func SumByLabel(values []DatedValue) Totals {
	t := make(Totals)
	for _, v := range values {
		t.Add(v.Label, v.Value)
	}
	return t
}

// DividendIncome lists dividend payments, withholding excluded, labelled by country.
func DividendIncome(dividends []DividendTransaction) []DatedValue {
	var values []DatedValue
	for _, d := range dividends {
		if d.IsIncome() {
			values = append(values, DatedValue{Date: d.Date, Label: countryOf(d.CountryCode, d.ISIN), Value: d.AmountEUR})
		}
	}
	return values
}

// DividendWithholding lists the tax withheld on dividends, labelled by country.
func DividendWithholding(dividends []DividendTransaction) []DatedValue {
	var values []DatedValue
	for _, d := range dividends {
		if d.IsWithholding() {
			values = append(values, DatedValue{Date: d.Date, Label: countryOf(d.CountryCode, d.ISIN), Value: d.AmountEUR})
		}
	}
	return values
}

// RealizedValues lists the realized P/L of every leg at its close date, labelled by product.
func RealizedValues(sales []Sale) []DatedValue {
	values := make([]DatedValue, 0, len(sales))
	for _, s := range sales {
		values = append(values, DatedValue{Date: s.CloseDate, Label: s.Product, Value: s.Delta})
	}
	return values
}

// FeeValues lists fees labelled by category.
func FeeValues(fees []Fee) []DatedValue {
	values := make([]DatedValue, 0, len(fees))
	for _, f := range fees {
		values = append(values, DatedValue{Date: f.Date, Label: f.Category, Value: f.AmountEUR})
	}
	return values
}

// SumByCountry accumulates the realized P/L of sale legs by country.
func SumByCountry(sales []Sale) Totals {
	t := make(Totals)
	for _, s := range sales {
		t.Add(s.Country, s.Delta)
	}
	return t
}

// countryOf returns the exported country, or the ISIN prefix when missing.
func countryOf(country, isin string) string {
	if country != "" {
		return country
	}
	if len(isin) >= 2 {
		return isin[:2]
	}
	return "??"
}
