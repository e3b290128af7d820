package taxfolio

import "testing"

// undatedDataset holds one sale closed in 2023 and one without any date.
func undatedDataset() *Dataset {
	return &Dataset{
		StockSales: []StockSale{
			{ISIN: "Y", ProductName: "dated", BuyDate: "2023-01-01", SaleDate: "2023-06-01", Delta: M(10)},
			{ISIN: "Y", ProductName: "nodates", Delta: M(1000)},
		},
	}
}

func TestForYear_SkipsUndatedInAllYears(t *testing.T) {
	ds := undatedDataset()

	all := NewSummary(ds, AllYears)
	if !all.StockPL.Equal(M(10)) {
		t.Errorf("NewSummary(all).StockPL = %v, want 10", all.StockPL)
	}
	if all.BestTrade == nil || all.BestTrade.Product != "dated" {
		t.Errorf("NewSummary(all).BestTrade = %+v, want dated", all.BestTrade)
	}
	if all.SaleCount != 1 {
		t.Errorf("NewSummary(all).SaleCount = %d, want 1", all.SaleCount)
	}
	if m := ds.ForYear(AllYears).Metrics(); !m["Y"].TotalRealizedStockPL.Equal(M(10)) {
		t.Errorf("ForYear(all).Metrics()[Y].TotalRealizedStockPL = %v, want 10", m["Y"].TotalRealizedStockPL)
	}
	if issues := ds.Issues(); len(issues) != 2 {
		t.Errorf("Issues() = %v, want both dates of the undated sale", issues)
	}
}

// Lifetime P/L is the sum of the yearly P/L.
func TestForYear_AllYearsIsSumOfYears(t *testing.T) {
	for name, ds := range map[string]*Dataset{"fixture": testDataset(), "undated": undatedDataset()} {
		all := NewSummary(ds, AllYears)
		var stock, option, dividend []Money
		for _, y := range AvailableYears(ds) {
			if y.IsAll() {
				continue
			}
			s := NewSummary(ds, y)
			stock = append(stock, s.StockPL)
			option = append(option, s.OptionPL)
			dividend = append(dividend, s.DividendPL)
		}
		checks := []struct {
			name      string
			got, want Money
		}{
			{"StockPL", all.StockPL, Sum(stock...)},
			{"OptionPL", all.OptionPL, Sum(option...)},
			{"DividendPL", all.DividendPL, Sum(dividend...)},
		}
		for _, c := range checks {
			if !c.got.Equal(c.want) {
				t.Errorf("%s: NewSummary(all).%s = %v, want the yearly sum %v", name, c.name, c.got, c.want)
			}
		}
	}
}

// The dividend export wins over the ledger for every period once it holds a row.
func TestForYear_DividendSource(t *testing.T) {
	ds := &Dataset{
		Dividends: []DividendTransaction{
			{Date: "2022-05-01", ISIN: "X", AmountEUR: M(10)},
		},
		Transactions: []Transaction{
			{Date: "2022-05-01", TransactionType: TypeDividend, ISIN: "X", AmountEUR: M(10)},
			{Date: "2023-05-01", TransactionType: TypeDividend, ISIN: "X", AmountEUR: M(20)},
		},
	}
	tests := []struct {
		year Year
		want Money
	}{
		{AllYears, M(10)},
		{"2022", M(10)},
		{"2023", M(0)},
	}
	for _, tt := range tests {
		t.Run(string(tt.year), func(t *testing.T) {
			var got Money
			for _, d := range ds.ForYear(tt.year).DividendRows() {
				got = got.Add(d.AmountEUR)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ForYear(%s) dividends = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

// Without an export the ledger is the source for every period.
func TestForYear_DividendLedgerFallback(t *testing.T) {
	ds := &Dataset{Transactions: []Transaction{
		{Date: "2022-05-01", TransactionType: TypeDividend, ISIN: "X", AmountEUR: M(10)},
		{Date: "2023-05-01", TransactionType: TypeDividend, ISIN: "X", AmountEUR: M(20)},
	}}
	if rows := ds.ForYear("2023").DividendRows(); len(rows) != 1 || !rows[0].AmountEUR.Equal(M(20)) {
		t.Errorf("ForYear(2023).DividendRows() = %+v, want the 20 dividend", rows)
	}
	if rows := ds.ForYear("2021").DividendRows(); len(rows) != 0 {
		t.Errorf("ForYear(2021).DividendRows() = %+v, want none", rows)
	}
}
