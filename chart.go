package taxfolio

import (
	"cmp"
	"slices"
	"strconv"
)

// Chart defaults.
const (
	DefaultTopN        = 9
	DefaultOthersLabel = "Others"
)

// DefaultMonthLabels are the Portuguese month abbreviations.
var DefaultMonthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// Series is a list of labelled values ready to be drawn.
type Series struct {
	Labels []string `json:"labels"`
	Values []Money  `json:"values"`
}

// Len returns the number of buckets.
func (s Series) Len() int { return len(s.Labels) }

// Total returns the sum of every bucket.
func (s Series) Total() Money { return Sum(s.Values...) }

func (s *Series) add(label string, v Money) {
	s.Labels = append(s.Labels, label)
	s.Values = append(s.Values, v)
}

// Point is a labelled value.
type Point struct {
	Label string
	Value Money
}

// PointsOf lists the entries of t in key order.
func PointsOf(t Totals) []Point {
	points := make([]Point, 0, len(t))
	for _, k := range t.Keys() {
		points = append(points, Point{Label: k, Value: t[k]})
	}
	return points
}

// TopN keeps the n points of largest magnitude and folds the rest into a
// single othersLabel bucket appended last.
//
// Equal magnitudes are ordered by label. The Others bucket is the exact sum of the folded
// values and is omitted when nothing is folded. n <= 0 means DefaultTopN.
func TopN(points []Point, n int, othersLabel string) Series {
	if n <= 0 {
		n = DefaultTopN
	}
	if othersLabel == "" {
		othersLabel = DefaultOthersLabel
	}
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Or(b.Value.Abs().Decimal().Cmp(a.Value.Abs().Decimal()), cmp.Compare(a.Label, b.Label))
	})

	var s Series
	if len(sorted) <= n {
		for _, p := range sorted {
			s.add(p.Label, p.Value)
		}
		return s
	}
	others := Money{}
	for i, p := range sorted {
		if i < n {
			s.add(p.Label, p.Value)
			continue
		}
		others = others.Add(p.Value)
	}
	s.add(othersLabel, others)
	return s
}

// TimeBuckets spreads dated values over time.
//
// For AllYears there is one bucket per year present, ascending. For a
// specific year there are always twelve monthly buckets labelled with
// monthLabels.
func TimeBuckets(y Year, values []DatedValue, monthLabels [12]string) Series {
	var s Series
	if y.IsAll() {
		years := SumByYear(values)
		for _, k := range years.Keys() {
			s.add(k, years[k])
		}
		return s
	}
	months := SumByMonth(y, values)
	for i, v := range months {
		label := monthLabels[i]
		if label == "" {
			label = strconv.Itoa(i + 1)
		}
		s.add(label, v)
	}
	return s
}

// DividendChart shows dividend income over the selected period.
func DividendChart(ds *Dataset, y Year, monthLabels [12]string) Series {
	return TimeBuckets(y, DividendIncome(ds.ForYear(y).DividendRows()), monthLabels)
}

// RealizedChart shows realized P/L of stock and option legs over the selected period.
func RealizedChart(ds *Dataset, y Year, monthLabels [12]string) Series {
	p := ds.ForYear(y)
	return TimeBuckets(y, RealizedValues(Sales(p.StockSales, p.OptionSales)), monthLabels)
}

// FeeChart shows fees over the selected period.
func FeeChart(ds *Dataset, y Year, monthLabels [12]string) Series {
	return TimeBuckets(y, FeeValues(ds.ForYear(y).Fees), monthLabels)
}

// AllocationChart shows the weight of each holding: market value when known,
// cost otherwise.
func AllocationChart(holdings []EnrichedHolding, n int, othersLabel string) Series {
	points := make([]Point, 0, len(holdings))
	for _, h := range holdings {
		v := h.CostBasis
		if h.MarketValue != nil {
			v = *h.MarketValue
		}
		points = append(points, Point{Label: h.ProductName, Value: v})
	}
	return TopN(points, n, othersLabel)
}

// DividendCountryChart shows dividend income of the selected period by country.
func DividendCountryChart(ds *Dataset, y Year, n int, othersLabel string) Series {
	return TopN(PointsOf(SumByLabel(DividendIncome(ds.ForYear(y).DividendRows()))), n, othersLabel)
}
