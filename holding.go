package taxfolio

// CurrentHolding is an open position valued at the latest price.
type CurrentHolding struct {
	ISIN              string   `json:"isin"`
	ProductName       string   `json:"product_name"`
	Quantity          Quantity `json:"quantity"`
	TotalCostBasisEUR Money    `json:"total_cost_basis_eur"` // stored negative
	MarketValueEUR    Money    `json:"market_value_eur"`
	CurrentPriceEUR   Money    `json:"current_price_eur"`
}

// HistoricalLot is an open lot as it stood at the end of a past year.
type HistoricalLot struct {
	Year         string   `json:"year,omitempty"`
	ISIN         string   `json:"isin"`
	ProductName  string   `json:"product_name"`
	Quantity     Quantity `json:"quantity"`
	BuyAmountEUR Money    `json:"buy_amount_eur"` // stored negative
}

// HistoricalHoldings maps a year to its open lots.
type HistoricalHoldings map[string][]HistoricalLot
