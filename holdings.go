package taxfolio

import (
	"cmp"
	"slices"

	"github.com/etnz/taxfolio/date"
)

// EnrichedHolding is a position with its cost, valuation and realized figures.
//
// Historical holdings (a past year) have no market value: MarketValue,
// UnrealizedPL and UnrealizedPLPercentage are nil for them.
type EnrichedHolding struct {
	ISIN                   string   `json:"isin"`
	ProductName            string   `json:"productName"`
	Quantity               Quantity `json:"quantity"`
	CostBasis              Money    `json:"costBasis"`
	CostPerShare           Money    `json:"costPerShare"`
	CurrentPrice           *Money   `json:"currentPrice"`
	MarketValue            *Money   `json:"marketValue"`
	UnrealizedPL           *Money   `json:"unrealizedPL"`
	UnrealizedPLPercentage *Percent `json:"unrealizedPLPercentage"`
	TotalRealizedStockPL   Money    `json:"totalRealizedStockPL"`
	TotalDividends         Money    `json:"totalDividends"`
	TotalCommissions       Money    `json:"totalCommissions"`
	RealizedGains          Money    `json:"realizedGains"`
	TotalProfitAmount      Money    `json:"totalProfitAmount"`
	TotalProfitPercentage  Percent  `json:"totalProfitPercentage"`
	Historical             bool     `json:"historical"`
}

// usesCurrentHoldings reports whether the current positions describe y.
// That is the case for AllYears and for the running calendar year.
func usesCurrentHoldings(y Year, today date.Date) bool {
	return y.IsAll() || y == YearOfDate(today)
}

// ReduceLots merges the lots of one year by ISIN, summing quantity and cost.
// The first product name met is kept. Output is in order of first appearance.
func ReduceLots(lots []HistoricalLot) []HistoricalLot {
	index := make(map[string]int)
	var reduced []HistoricalLot
	for _, lot := range lots {
		i, ok := index[lot.ISIN]
		if !ok {
			index[lot.ISIN] = len(reduced)
			reduced = append(reduced, HistoricalLot{
				Year:         lot.Year,
				ISIN:         lot.ISIN,
				ProductName:  lot.ProductName,
				Quantity:     lot.Quantity,
				BuyAmountEUR: lot.BuyAmountEUR.Abs(),
			})
			continue
		}
		reduced[i].Quantity = reduced[i].Quantity.Add(lot.Quantity)
		reduced[i].BuyAmountEUR = reduced[i].BuyAmountEUR.Add(lot.BuyAmountEUR.Abs())
	}
	return reduced
}

// EnrichHoldings builds the holdings of the selected period.
//
// For AllYears and the current calendar year the current positions are used,
// otherwise the open lots recorded for that year. Realized figures come from
// AggregateByISIN over the same period; a position without any realized
// activity gets zero metrics.
func EnrichHoldings(ds *Dataset, y Year, today date.Date) []EnrichedHolding {
	if ds == nil {
		ds = &Dataset{}
	}
	metrics := ds.ForYear(y).Metrics()

	var holdings []EnrichedHolding
	if usesCurrentHoldings(y, today) {
		for _, h := range ds.Holdings {
			holdings = append(holdings, enrichCurrent(h, metrics[h.ISIN]))
		}
	} else {
		for _, lot := range ReduceLots(ds.HistoricalHoldings[string(y)]) {
			holdings = append(holdings, enrichHistorical(lot, metrics[lot.ISIN]))
		}
	}

	slices.SortStableFunc(holdings, func(a, b EnrichedHolding) int {
		return cmp.Or(cmp.Compare(a.ProductName, b.ProductName), cmp.Compare(a.ISIN, b.ISIN))
	})
	return holdings
}

func enrichCurrent(h CurrentHolding, m ISINMetrics) EnrichedHolding {
	e := newEnriched(h.ISIN, h.ProductName, h.Quantity, h.TotalCostBasisEUR.Abs(), m)
	price, value := h.CurrentPriceEUR, h.MarketValueEUR
	unrealized := value.Sub(e.CostBasis)
	e.CurrentPrice = &price
	e.MarketValue = &value
	e.UnrealizedPL = &unrealized
	if e.CostBasis.IsPositive() {
		p, _ := PercentOf(unrealized, e.CostBasis)
		e.UnrealizedPLPercentage = &p
	}
	e.TotalProfitAmount = unrealized.Add(e.RealizedGains)
	e.TotalProfitPercentage, _ = PercentOf(e.TotalProfitAmount, e.CostBasis)
	return e
}

func enrichHistorical(lot HistoricalLot, m ISINMetrics) EnrichedHolding {
	e := newEnriched(lot.ISIN, lot.ProductName, lot.Quantity, lot.BuyAmountEUR.Abs(), m)
	e.Historical = true
	e.TotalProfitAmount = e.RealizedGains
	e.TotalProfitPercentage, _ = PercentOf(e.TotalProfitAmount, e.CostBasis)
	return e
}

func newEnriched(isin, name string, quantity Quantity, cost Money, m ISINMetrics) EnrichedHolding {
	e := EnrichedHolding{
		ISIN:                 isin,
		ProductName:          name,
		Quantity:             quantity,
		CostBasis:            cost,
		TotalRealizedStockPL: m.TotalRealizedStockPL,
		TotalDividends:       m.TotalDividends,
		TotalCommissions:     m.TotalCommissions,
		RealizedGains:        m.NetRealized(),
	}
	if !quantity.IsZero() {
		e.CostPerShare = cost.Div(quantity)
	}
	return e
}

// TotalUnrealized sums the unrealized P/L of holdings that have one.
func TotalUnrealized(holdings []EnrichedHolding) Money {
	total := Money{}
	for _, h := range holdings {
		if h.UnrealizedPL != nil {
			total = total.Add(*h.UnrealizedPL)
		}
	}
	return total
}
