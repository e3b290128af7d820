package taxfolio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregateByISIN(t *testing.T) {
	ds := testDataset()
	got := ds.Metrics()
	want := map[string]ISINMetrics{
		appleISIN: {TotalRealizedStockPL: M(600), TotalDividends: M(50), TotalCommissions: M(22)},
		sapISIN:   {TotalRealizedStockPL: M(-205), TotalDividends: M(30), TotalCommissions: M(5)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Metrics() mismatch (-want +got):\n%s", diff)
	}
	if net := got[appleISIN].NetRealized(); !net.Equal(M(628)) {
		t.Errorf("NetRealized(apple) = %v, want 628", net)
	}
}

// Lifetime metrics of a security only traded in one year equal that year's metrics.
func TestAggregateByISIN_Symmetry(t *testing.T) {
	ds := testDataset()
	lifetime := ds.Metrics()
	for isin, y := range map[string]Year{appleISIN: "2023", sapISIN: "2024"} {
		period := ds.ForYear(y).Metrics()
		if diff := cmp.Diff(lifetime[isin], period[isin]); diff != "" {
			t.Errorf("%s: lifetime and %s metrics differ (-lifetime +period):\n%s", isin, y, diff)
		}
	}
}

func TestDividendRows_FromLedger(t *testing.T) {
	ds := &Dataset{Transactions: []Transaction{
		{Date: "2023-01-01", TransactionType: TypeDividend, ISIN: "X", AmountEUR: M(10)},
		{Date: "2023-01-01", TransactionType: TypeDividend, TransactionSubtype: SubtypeTax, ISIN: "X", AmountEUR: M(-1.5)},
		{Date: "2023-01-01", TransactionType: TypeCash, AmountEUR: M(100)},
	}}
	m := ds.Metrics()
	if !m["X"].TotalDividends.Equal(M(10)) {
		t.Errorf("Metrics()[X].TotalDividends = %v, want 10", m["X"].TotalDividends)
	}
	if rows := ds.DividendRows(); len(rows) != 2 {
		t.Errorf("DividendRows() returned %d rows, want 2", len(rows))
	}
}

func TestSumByMonth(t *testing.T) {
	months := SumByMonth("2023", []DatedValue{
		{Date: "2023-01-31", Value: M(1)},
		{Date: "01-01-2023", Value: M(2)},
		{Date: "2022-01-01", Value: M(100)},
		{Date: "2023-13-01", Value: M(100)},
	})
	if !months[0].Equal(M(3)) {
		t.Errorf("SumByMonth()[0] = %v, want 3", months[0])
	}
	if total := Sum(months[:]...); !total.Equal(M(3)) {
		t.Errorf("Sum(SumByMonth()) = %v, want 3", total)
	}
}

func TestSumByCountry(t *testing.T) {
	ds := testDataset()
	totals := SumByCountry(Sales(ds.StockSales, ds.OptionSales))
	if got := totals.Keys(); len(got) != 2 || got[0] != germany {
		t.Errorf("SumByCountry().Keys() = %v, want [%s %s]", got, germany, usa)
	}
	if !totals[usa].Equal(M(600)) || !totals.Total().Equal(M(395)) {
		t.Errorf("SumByCountry() = %v", totals)
	}
}

func TestDividendLabels(t *testing.T) {
	rows := []DividendTransaction{
		{ISIN: "IE00B4L5Y983", AmountEUR: M(1)},
		{ISIN: "", AmountEUR: M(1)},
		{ISIN: "IE00B4L5Y983", AmountEUR: M(-0.1), TransactionSubtype: SubtypeTax},
	}
	income := SumByLabel(DividendIncome(rows))
	if !income["IE"].Equal(M(1)) || !income["??"].Equal(M(1)) {
		t.Errorf("SumByLabel(DividendIncome()) = %v", income)
	}
	withheld := SumByLabel(DividendWithholding(rows))
	if len(withheld) != 1 || !withheld["IE"].Equal(M(-0.1)) {
		t.Errorf("SumByLabel(DividendWithholding()) = %v", withheld)
	}
}
