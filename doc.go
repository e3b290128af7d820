// Package taxfolio turns the exports of a brokerage backend into the figures a
// Portuguese resident investor needs: a period summary, enriched holdings,
// chart series, a list of closed positions and the pre-fill of the Anexo J
// tax form.
//
// The engine is pure and synchronous. Every computation takes a read only
// Dataset and a Year selector (a calendar year, or AllYears for the whole
// history) and returns new values:
//   - NewSummary: realized P/L, dividends, fees, deposits and best/worst trade.
//   - EnrichHoldings: cost, valuation and realized metrics per position.
//   - NewTaxForm: quadros 8A, 9.2A and 9.2B rows with their control sums.
//   - TopN and TimeBuckets: chart series.
//   - AvailableYears: the selectable periods.
//
// Amounts are exact decimals in EUR. Records whose dates cannot be parsed are
// skipped rather than reported as errors; Dataset.Issues lists them.
//
// NewReport bundles every view and is the entry point of the taxfolio command.
package taxfolio
