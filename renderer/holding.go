package renderer

import "github.com/etnz/taxfolio"

// holdingsView is the data of the holdings template.
type holdingsView struct {
	Title           string
	Holdings        []taxfolio.EnrichedHolding
	Historical      bool
	TotalCost       taxfolio.Money
	TotalMarket     taxfolio.Money
	TotalUnrealized taxfolio.Money
}

// RenderHoldings renders enriched holdings as a markdown table.
func RenderHoldings(y taxfolio.Year, holdings []taxfolio.EnrichedHolding, opts Options) string {
	v := holdingsView{
		Title:           yearTitle(y),
		Holdings:        holdings,
		TotalUnrealized: taxfolio.TotalUnrealized(holdings),
	}
	for _, h := range holdings {
		v.TotalCost = v.TotalCost.Add(h.CostBasis)
		if h.MarketValue != nil {
			v.TotalMarket = v.TotalMarket.Add(*h.MarketValue)
		}
		v.Historical = v.Historical || h.Historical
	}
	return renderTemplate("holdings", "holdings.md", nil, opts, v)
}
