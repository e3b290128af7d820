package taxfolio

import (
	"testing"

	"github.com/etnz/taxfolio/date"
)

func TestEnrichHoldings_Current(t *testing.T) {
	for _, y := range []Year{AllYears, "2025"} {
		t.Run(string(y), func(t *testing.T) {
			got := EnrichHoldings(testDataset(), y, today)
			if len(got) != 1 {
				t.Fatalf("EnrichHoldings() returned %d holdings, want 1", len(got))
			}
			h := got[0]
			if h.Historical {
				t.Errorf("Historical = true, want false")
			}
			if !h.CostBasis.Equal(M(1500)) {
				t.Errorf("CostBasis = %v, want 1500", h.CostBasis)
			}
			if !h.CostPerShare.Equal(M(300)) {
				t.Errorf("CostPerShare = %v, want 300", h.CostPerShare)
			}
			if h.UnrealizedPL == nil || !h.UnrealizedPL.Equal(M(500)) {
				t.Errorf("UnrealizedPL = %v, want 500", h.UnrealizedPL)
			}
			if h.UnrealizedPLPercentage == nil || !h.UnrealizedPLPercentage.Equal(Percent(100.0/3)) {
				t.Errorf("UnrealizedPLPercentage = %v, want 33.33", h.UnrealizedPLPercentage)
			}
			if !h.TotalProfitAmount.Equal(M(500)) {
				t.Errorf("TotalProfitAmount = %v, want 500", h.TotalProfitAmount)
			}
		})
	}
}

func TestEnrichHoldings_Historical(t *testing.T) {
	got := EnrichHoldings(testDataset(), "2023", today)
	if len(got) != 2 {
		t.Fatalf("EnrichHoldings(2023) returned %d holdings, want 2", len(got))
	}
	// sorted by product name
	ms, sap := got[0], got[1]
	if ms.ProductName != "Microsoft" || sap.ProductName != "SAP" {
		t.Fatalf("EnrichHoldings(2023) order = %s, %s, want Microsoft, SAP", ms.ProductName, sap.ProductName)
	}
	if !sap.Quantity.Equal(Q(10)) || !sap.CostBasis.Equal(M(2000)) {
		t.Errorf("SAP lots reduced to %v shares for %v, want 10 for 2000", sap.Quantity, sap.CostBasis)
	}
	if !sap.CostPerShare.Equal(M(200)) {
		t.Errorf("SAP CostPerShare = %v, want 200", sap.CostPerShare)
	}
	for _, h := range got {
		if !h.Historical {
			t.Errorf("%s: Historical = false, want true", h.ProductName)
		}
		if h.MarketValue != nil || h.UnrealizedPL != nil || h.UnrealizedPLPercentage != nil {
			t.Errorf("%s: valuation = %v, %v, %v, want nil", h.ProductName, h.MarketValue, h.UnrealizedPL, h.UnrealizedPLPercentage)
		}
		// no realized activity in 2023 for those
		if !h.RealizedGains.IsZero() || !h.TotalProfitAmount.IsZero() || h.TotalProfitPercentage != 0 {
			t.Errorf("%s: profit = %v (%v), want zero", h.ProductName, h.TotalProfitAmount, h.TotalProfitPercentage)
		}
	}
}

func TestEnrichHoldings_RealizedMetrics(t *testing.T) {
	ds := &Dataset{
		StockSales: []StockSale{{ISIN: appleISIN, SaleDate: "2024-03-01", BuyDate: "2023-01-01", Delta: M(100), Commission: M(-4)}},
		Dividends:  []DividendTransaction{{ISIN: appleISIN, Date: "2024-05-01", AmountEUR: M(10)}},
		Holdings:   []CurrentHolding{{ISIN: appleISIN, ProductName: "Apple", Quantity: Q(2), TotalCostBasisEUR: M(-300), MarketValueEUR: M(250)}},
	}
	got := EnrichHoldings(ds, AllYears, today)
	h := got[0]
	// 10 + 100 - 4
	if !h.RealizedGains.Equal(M(106)) {
		t.Errorf("RealizedGains = %v, want 106", h.RealizedGains)
	}
	if !h.TotalCommissions.Equal(M(4)) {
		t.Errorf("TotalCommissions = %v, want 4", h.TotalCommissions)
	}
	// -50 + 106
	if !h.TotalProfitAmount.Equal(M(56)) {
		t.Errorf("TotalProfitAmount = %v, want 56", h.TotalProfitAmount)
	}
}

func TestEnrichHoldings_ZeroQuantityAndCost(t *testing.T) {
	ds := &Dataset{Holdings: []CurrentHolding{{ISIN: "X", ProductName: "Gift", MarketValueEUR: M(10)}}}
	h := EnrichHoldings(ds, AllYears, today)[0]
	if !h.CostPerShare.IsZero() {
		t.Errorf("CostPerShare = %v, want 0", h.CostPerShare)
	}
	if h.UnrealizedPLPercentage != nil {
		t.Errorf("UnrealizedPLPercentage = %v, want nil without cost", *h.UnrealizedPLPercentage)
	}
	if h.TotalProfitPercentage != 0 {
		t.Errorf("TotalProfitPercentage = %v, want 0 without cost", h.TotalProfitPercentage)
	}
}

func TestUsesCurrentHoldings(t *testing.T) {
	now := date.New(2024, 8, 1)
	tests := []struct {
		y    Year
		want bool
	}{
		{AllYears, true},
		{"2024", true},
		{"2023", false},
		{"2025", false},
	}
	for _, tt := range tests {
		if got := usesCurrentHoldings(tt.y, now); got != tt.want {
			t.Errorf("usesCurrentHoldings(%q) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestTotalUnrealized(t *testing.T) {
	all := EnrichHoldings(testDataset(), AllYears, today)
	if got := TotalUnrealized(all); !got.Equal(M(500)) {
		t.Errorf("TotalUnrealized(all) = %v, want 500", got)
	}
	past := EnrichHoldings(testDataset(), "2023", today)
	if got := TotalUnrealized(past); !got.IsZero() {
		t.Errorf("TotalUnrealized(2023) = %v, want 0", got)
	}
}
