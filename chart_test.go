package taxfolio

import (
	"fmt"
	"slices"
	"testing"
)

func TestTopN(t *testing.T) {
	// twelve points A..L worth 12.1 down to 1.1
	var points []Point
	for i := range 12 {
		points = append(points, Point{Label: string(rune('A' + i)), Value: M(float64(12-i) + 0.1)})
	}
	// shuffle the input order, the output must not depend on it
	slices.Reverse(points)

	s := TopN(points, 9, "Others")
	if s.Len() != 10 {
		t.Fatalf("TopN() returned %d buckets, want 10", s.Len())
	}
	wantLabels := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "Others"}
	if !slices.Equal(s.Labels, wantLabels) {
		t.Errorf("TopN() labels = %v, want %v", s.Labels, wantLabels)
	}
	if others := s.Values[9]; !others.Equal(M(6.3)) {
		t.Errorf("TopN() Others = %v, want 6.3", others)
	}
	if !s.Total().Equal(M(79.2)) {
		t.Errorf("TopN() total = %v, want 79.2", s.Total())
	}
}

func TestTopN_Small(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   []string
	}{
		{"empty", nil, nil},
		{"fits", []Point{{"b", M(1)}, {"a", M(-3)}}, []string{"a", "b"}},
		{"ties by label", []Point{{"b", M(2)}, {"a", M(-2)}, {"c", M(2)}}, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TopN(tt.points, 0, "")
			if !slices.Equal(s.Labels, tt.want) {
				t.Errorf("TopN() labels = %v, want %v", s.Labels, tt.want)
			}
		})
	}
}

func TestTopN_DefaultOthers(t *testing.T) {
	var points []Point
	for i := range 11 {
		points = append(points, Point{Label: fmt.Sprintf("p%02d", i), Value: M(1)})
	}
	s := TopN(points, 0, "")
	if s.Len() != DefaultTopN+1 || s.Labels[DefaultTopN] != DefaultOthersLabel {
		t.Fatalf("TopN() labels = %v, want %d points and %s", s.Labels, DefaultTopN, DefaultOthersLabel)
	}
	if !s.Values[DefaultTopN].Equal(M(2)) {
		t.Errorf("TopN() Others = %v, want 2", s.Values[DefaultTopN])
	}
}

func TestTimeBuckets(t *testing.T) {
	values := []DatedValue{
		{Date: "2023-06-15", Value: M(50)},
		{Date: "20-06-2023", Value: M(1.5)},
		{Date: "2023-12-31", Value: M(2)},
		{Date: "2024-03-01", Value: M(30)},
		{Date: "31-02-2024", Value: M(1000)},
	}

	s := TimeBuckets("2023", values, DefaultMonthLabels)
	if s.Len() != 12 {
		t.Fatalf("TimeBuckets(2023) returned %d buckets, want 12", s.Len())
	}
	if s.Labels[5] != "Jun" || !s.Values[5].Equal(M(51.5)) {
		t.Errorf("TimeBuckets(2023)[5] = %s %v, want Jun 51.5", s.Labels[5], s.Values[5])
	}
	if !s.Values[11].Equal(M(2)) || !s.Values[0].IsZero() {
		t.Errorf("TimeBuckets(2023) = %v", s.Values)
	}

	all := TimeBuckets(AllYears, values, DefaultMonthLabels)
	if !slices.Equal(all.Labels, []string{"2023", "2024"}) {
		t.Fatalf("TimeBuckets(all) labels = %v, want [2023 2024]", all.Labels)
	}
	if !all.Values[1].Equal(M(30)) {
		t.Errorf("TimeBuckets(all)[2024] = %v, want 30, invalid dates skipped", all.Values[1])
	}

	unlabelled := TimeBuckets("2023", values, [12]string{})
	if unlabelled.Labels[0] != "1" || unlabelled.Labels[11] != "12" {
		t.Errorf("TimeBuckets() without labels = %v", unlabelled.Labels)
	}
}

func TestCharts(t *testing.T) {
	ds := testDataset()

	if s := DividendChart(ds, AllYears, DefaultMonthLabels); !s.Total().Equal(M(80)) {
		t.Errorf("DividendChart(all) total = %v, want 80 (withholding excluded)", s.Total())
	}
	if s := RealizedChart(ds, "2023", DefaultMonthLabels); !s.Values[2].Equal(M(480)) || !s.Values[6].Equal(M(120)) {
		t.Errorf("RealizedChart(2023) = %v, want 480 in March and 120 in July", s.Values)
	}
	if s := FeeChart(ds, "2023", DefaultMonthLabels); !s.Total().Equal(M(-8)) {
		t.Errorf("FeeChart(2023) total = %v, want -8", s.Total())
	}

	countries := DividendCountryChart(ds, AllYears, 9, "Others")
	if !slices.Equal(countries.Labels, []string{usa, germany}) {
		t.Errorf("DividendCountryChart() labels = %v", countries.Labels)
	}

	past := AllocationChart(EnrichHoldings(ds, "2023", today), 1, "Others")
	// cost is used without a market value: SAP 2000, Microsoft 1500
	if !slices.Equal(past.Labels, []string{"SAP", "Others"}) || !past.Values[1].Equal(M(1500)) {
		t.Errorf("AllocationChart(2023) = %v %v", past.Labels, past.Values)
	}
}
