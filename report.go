package taxfolio

import (
	"github.com/etnz/taxfolio/date"
	"github.com/rs/zerolog"
)

// Config carries everything the engine would otherwise read from the environment.
type Config struct {
	Today       date.Date // decides which year is the running one
	TopN        int
	OthersLabel string
	Locale      string
	MonthLabels [12]string
	Logger      zerolog.Logger
}

// DefaultConfig returns the configuration used when nothing is set: today's
// date, top 9 buckets, Portuguese labels and no logging.
func DefaultConfig() Config {
	return Config{
		Today:       date.Today(),
		TopN:        DefaultTopN,
		OthersLabel: DefaultOthersLabel,
		Locale:      DefaultLocale,
		MonthLabels: DefaultMonthLabels,
		Logger:      zerolog.Nop(),
	}
}

// withDefaults fills the zero fields of c.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Today.IsZero() {
		c.Today = d.Today
	}
	if c.TopN <= 0 {
		c.TopN = d.TopN
	}
	if c.OthersLabel == "" {
		c.OthersLabel = d.OthersLabel
	}
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	if c.MonthLabels == ([12]string{}) {
		c.MonthLabels = d.MonthLabels
	}
	return c
}

// Charts groups the chart series of a report.
type Charts struct {
	Dividends         Series `json:"dividends"`
	Realized          Series `json:"realized"`
	Fees              Series `json:"fees"`
	Allocation        Series `json:"allocation"`
	DividendCountries Series `json:"dividendCountries"`
}

// Report is every view of one selected period.
type Report struct {
	Year           Year              `json:"year"`
	AvailableYears []Year            `json:"availableYears"`
	Summary        *Summary          `json:"summary"`
	Holdings       []EnrichedHolding `json:"holdings"`
	TaxForm        *TaxForm          `json:"taxForm"`
	Sales          []SaleView        `json:"sales"`
	Charts         Charts            `json:"charts"`
	Issues         []Issue           `json:"-"`
}

// NewReport computes every view of ds for y.
//
// Records that cannot be placed in time are left out of the figures and
// logged as warnings on cfg.Logger.
func NewReport(ds *Dataset, y Year, cfg Config) *Report {
	cfg = cfg.withDefaults()
	if ds == nil {
		ds = &Dataset{}
	}
	if y == "" {
		y = AllYears
	}
	log := cfg.Logger.With().Str("year", y.String()).Logger()

	issues := ds.Issues()
	for _, is := range issues {
		log.Warn().Str("collection", is.Collection).Int("index", is.Index).Msg(is.Reason)
	}

	r := &Report{
		Year:           y,
		AvailableYears: AvailableYears(ds),
		Summary:        NewSummary(ds, y),
		Holdings:       EnrichHoldings(ds, y, cfg.Today),
		TaxForm:        NewTaxForm(ds, y),
		Sales:          SaleViews(ds, y),
		Issues:         issues,
	}
	r.Charts = Charts{
		Dividends:         DividendChart(ds, y, cfg.MonthLabels),
		Realized:          RealizedChart(ds, y, cfg.MonthLabels),
		Fees:              FeeChart(ds, y, cfg.MonthLabels),
		Allocation:        AllocationChart(r.Holdings, cfg.TopN, cfg.OthersLabel),
		DividendCountries: DividendCountryChart(ds, y, cfg.TopN, cfg.OthersLabel),
	}
	if !r.TaxForm.Reconciles(ds) {
		log.Error().Msg("tax form control sums do not match the input records")
	}
	log.Debug().
		Int("holdings", len(r.Holdings)).
		Int("sales", len(r.Sales)).
		Int("issues", len(issues)).
		Msg("report computed")
	return r
}
