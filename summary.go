package taxfolio

// Trade is one closed leg singled out by the summary.
type Trade struct {
	Product string `json:"product"`
	ISIN    string `json:"isin"`
	Kind    string `json:"kind"`
	Delta   Money  `json:"delta"`
}

// Summary provides an at-a-glance overview of a selected period.
type Summary struct {
	Year                     Year     `json:"year"`
	StockPL                  Money    `json:"stockPL"`
	OptionPL                 Money    `json:"optionPL"`
	DividendPL               Money    `json:"dividendPL"`
	DividendTaxWithheld      Money    `json:"dividendTaxWithheld"`
	TotalTaxesAndCommissions Money    `json:"totalTaxesAndCommissions"`
	UnrealizedPL             *Money   `json:"unrealizedPL"` // only for AllYears
	TotalPL                  Money    `json:"totalPL"`
	NetDeposits              Money    `json:"netDeposits"`
	ReturnPercentage         *Percent `json:"returnPercentage"`
	SaleCount                int      `json:"saleCount"`
	BestTrade                *Trade   `json:"bestTrade"`
	WorstTrade               *Trade   `json:"worstTrade"`
}

// NewSummary computes the summary of the selected period.
//
// Realized figures come from the records of the period. Unrealized P/L of
// the current holdings is added to the total only for AllYears: it has no
// meaning for a closed year. The return on deposits is likewise only
// computed for AllYears, when deposits are positive.
func NewSummary(ds *Dataset, y Year) *Summary {
	period := ds.ForYear(y)
	s := &Summary{Year: y}
	if y.IsAll() {
		s.Year = AllYears
	}

	for _, st := range period.StockSales {
		s.StockPL = s.StockPL.Add(st.Delta)
	}
	for _, o := range period.OptionSales {
		s.OptionPL = s.OptionPL.Add(o.Delta)
	}
	for _, d := range period.DividendRows() {
		switch {
		case d.IsIncome():
			s.DividendPL = s.DividendPL.Add(d.AmountEUR)
		case d.IsWithholding():
			s.DividendTaxWithheld = s.DividendTaxWithheld.Add(d.AmountEUR)
		}
	}
	for _, f := range period.Fees {
		s.TotalTaxesAndCommissions = s.TotalTaxesAndCommissions.Add(f.AmountEUR)
	}
	s.TotalPL = Sum(s.StockPL, s.OptionPL, s.DividendPL, s.TotalTaxesAndCommissions)

	for _, tx := range period.Transactions {
		if tx.IsCash() {
			s.NetDeposits = s.NetDeposits.Add(tx.AmountEUR)
		}
	}

	if y.IsAll() {
		unrealized := Money{}
		for _, h := range period.Holdings {
			unrealized = unrealized.Add(h.MarketValueEUR.Sub(h.TotalCostBasisEUR.Abs()))
		}
		s.UnrealizedPL = &unrealized
		s.TotalPL = s.TotalPL.Add(unrealized)
		if s.NetDeposits.IsPositive() {
			r, _ := PercentOf(s.TotalPL, s.NetDeposits)
			s.ReturnPercentage = &r
		}
	}

	legs := Sales(period.StockSales, period.OptionSales)
	s.SaleCount = len(legs)
	s.BestTrade, s.WorstTrade = extremeTrades(legs)
	return s
}

// extremeTrades finds the legs with the highest and lowest delta in one pass.
// Ties keep the first leg met. Both are nil when there are no legs.
func extremeTrades(legs []Sale) (best, worst *Trade) {
	for _, l := range legs {
		t := &Trade{Product: l.Product, ISIN: l.ISIN, Kind: l.Kind.String(), Delta: l.Delta}
		if best == nil || l.Delta.GreaterThan(best.Delta) {
			best = t
		}
		if worst == nil || l.Delta.LessThan(worst.Delta) {
			worst = t
		}
	}
	return best, worst
}
