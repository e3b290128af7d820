package taxfolio

import (
	"slices"
	"testing"
)

func TestExtractYears(t *testing.T) {
	tests := []struct {
		name      string
		sources   map[string]any
		accessors map[string]Accessor
		want      []Year
	}{
		{
			name:      "single sale",
			sources:   map[string]any{"stock_sales": []StockSale{{SaleDate: "15-03-2023", BuyDate: "01-01-2023"}}},
			accessors: map[string]Accessor{"stock_sales": Field("SaleDate")},
			want:      []Year{"2023"},
		},
		{
			name: "union descending",
			sources: map[string]any{
				"fees":   []Fee{{Date: "2021-01-01"}, {Date: "2024-01-01"}, {Date: "nope"}},
				"extras": []map[string]any{{"when": "05-05-2022"}, {"when": 12}},
			},
			accessors: map[string]Accessor{
				"fees":   Func(func(f Fee) string { return f.Date }),
				"extras": Field("when"),
			},
			want: []Year{"2024", "2022", "2021"},
		},
		{
			name: "map keys",
			sources: map[string]any{
				DividendSummarySource: DividendTaxSummary{"2020": nil, "all": nil, "x": nil},
				HistoricalSource:      HistoricalHoldings{"2019": nil},
			},
			want: []Year{"2020", "2019"},
		},
		{
			name:    "no accessor",
			sources: map[string]any{"fees": []Fee{{Date: "2021-01-01"}}},
			want:    []Year{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractYears(tt.sources, tt.accessors)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExtractYears() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	tx := Transaction{Date: "2023-04-01", AmountEUR: M(3)}
	if got := Field("date")(tx); got != "2023-04-01" {
		t.Errorf("Field(date) = %q, want 2023-04-01", got)
	}
	if got := Field("amount_eur")(tx); got != "" {
		t.Errorf("Field(amount_eur) = %q, want empty for a number", got)
	}
	if got := Field("missing")(tx); got != "" {
		t.Errorf("Field(missing) = %q, want empty", got)
	}
}

func TestAvailableYears(t *testing.T) {
	got := AvailableYears(testDataset())
	want := []Year{AllYears, "2024", "2023"}
	if !slices.Equal(got, want) {
		t.Errorf("AvailableYears() = %v, want %v", got, want)
	}
	if got := AvailableYears(nil); !slices.Equal(got, []Year{AllYears}) {
		t.Errorf("AvailableYears(nil) = %v, want [all]", got)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    Year
		wantErr bool
	}{
		{"", AllYears, false},
		{"all", AllYears, false},
		{"2023", "2023", false},
		{"23", "", true},
		{"20x3", "", true},
		{"0000", "", true},
		{"+202", "", true},
		{"-202", "", true},
		{" 202", "", true},
		{"２０２３", "", true},
	}
	for _, tt := range tests {
		got, err := ParseYear(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseYear(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseYear(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYear_Contains(t *testing.T) {
	if !AllYears.Contains("garbage") {
		t.Errorf("AllYears.Contains(garbage) = false, want true")
	}
	y := Year("2023")
	for s, want := range map[string]bool{"31-12-2023": true, "2023-01-01": true, "2024-01-01": false, "31-02-2023": false} {
		if got := y.Contains(s); got != want {
			t.Errorf("Year(2023).Contains(%q) = %v, want %v", s, got, want)
		}
	}
}
