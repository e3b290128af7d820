package cmd

import (
	"testing"
	"text/template"

	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/date"
	"github.com/google/go-cmp/cmp"
)

func testDataset() *taxfolio.Dataset {
	return &taxfolio.Dataset{
		StockSales: []taxfolio.StockSale{{
			ISIN: "US0378331005", ProductName: "Apple", BuyDate: "01-01-2023", SaleDate: "15-03-2024",
			Quantity: taxfolio.Q(10), BuyAmountEUR: taxfolio.M(-1000), SaleAmountEUR: taxfolio.M(1500),
			Delta: taxfolio.M(500), CountryCode: "840 - United States",
		}},
		Dividends: []taxfolio.DividendTransaction{
			{Date: "2023-06-15", ISIN: "US0378331005", AmountEUR: taxfolio.M(50), CountryCode: "840 - United States"},
		},
	}
}

func TestPublishTasks(t *testing.T) {
	cfg := taxfolio.DefaultConfig()
	cfg.Today = date.New(2025, 1, 1)

	tests := []struct {
		name string
		ds   *taxfolio.Dataset
		want []taxfolio.Year
	}{
		{
			name: "empty dataset",
			ds:   &taxfolio.Dataset{},
			want: []taxfolio.Year{taxfolio.AllYears},
		},
		{
			name: "two years",
			ds:   testDataset(),
			want: []taxfolio.Year{taxfolio.AllYears, "2024", "2023"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := publishTasks(tt.ds, cfg)
			var got []taxfolio.Year
			for _, task := range tasks {
				got = append(got, task.Year)
				if task.Report.Year != task.Year {
					t.Errorf("task %s holds the report of %s", task.Year, task.Report.Year)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("publishTasks() years mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderFrontMatter(t *testing.T) {
	tpl := template.Must(template.New("fm").Parse("---\ntitle: Report {{.Year}}\nfile: {{.File}}\npl: {{.Report.Summary.TotalPL}}\n---"))

	cfg := taxfolio.DefaultConfig()
	cfg.Today = date.New(2025, 1, 1)
	task := reportTask{Year: "2024", Report: taxfolio.NewReport(testDataset(), "2024", cfg)}

	got, err := renderFrontMatter(tpl, task)
	if err != nil {
		t.Fatalf("renderFrontMatter() error = %v", err)
	}
	want := "---\ntitle: Report 2024\nfile: 2024.md\npl: €500.00\n---"
	if got != want {
		t.Errorf("renderFrontMatter() = %q, want %q", got, want)
	}
}
