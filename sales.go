package taxfolio

import (
	"cmp"
	"slices"

	"github.com/etnz/taxfolio/date"
)

// StockSale is one FIFO-matched closed stock lot.
//
// The capitalized JSON names are the ones of the backend export.
type StockSale struct {
	ISIN          string   `json:"ISIN"`
	ProductName   string   `json:"ProductName"`
	BuyDate       string   `json:"BuyDate"`
	SaleDate      string   `json:"SaleDate"`
	Quantity      Quantity `json:"Quantity"`
	BuyAmountEUR  Money    `json:"BuyAmountEUR"` // negative, the cost
	SaleAmountEUR Money    `json:"SaleAmountEUR"`
	Delta         Money    `json:"Delta"`
	Commission    Money    `json:"Commission"`
	CountryCode   string   `json:"country_code"`
}

// OptionSale is one closed option position.
type OptionSale struct {
	ProductName    string   `json:"product_name"`
	ISIN           string   `json:"isin"`
	OpenDate       string   `json:"open_date"`
	CloseDate      string   `json:"close_date"`
	Quantity       Quantity `json:"quantity"`
	OpenAmountEUR  Money    `json:"open_amount_eur"`
	CloseAmountEUR Money    `json:"close_amount_eur"`
	Commission     Money    `json:"commission"`
	Delta          Money    `json:"delta"`
	CountryCode    string   `json:"country_code"`
}

// SaleKind tells stock legs from option legs.
type SaleKind int

const (
	StockKind SaleKind = iota
	OptionKind
)

func (k SaleKind) String() string {
	switch k {
	case StockKind:
		return "stock"
	case OptionKind:
		return "option"
	default:
		return "unknown"
	}
}

// Sale is the shape both kinds of closed legs are folded through.
type Sale struct {
	Kind        SaleKind
	ISIN        string
	Product     string
	OpenDate    string
	CloseDate   string
	Quantity    Quantity
	OpenAmount  Money // cost side, as exported
	CloseAmount Money
	Commission  Money
	Delta       Money
	Country     string
}

func (s StockSale) sale() Sale {
	return Sale{
		Kind:        StockKind,
		ISIN:        s.ISIN,
		Product:     s.ProductName,
		OpenDate:    s.BuyDate,
		CloseDate:   s.SaleDate,
		Quantity:    s.Quantity,
		OpenAmount:  s.BuyAmountEUR,
		CloseAmount: s.SaleAmountEUR,
		Commission:  s.Commission,
		Delta:       s.Delta,
		Country:     s.CountryCode,
	}
}

func (o OptionSale) sale() Sale {
	return Sale{
		Kind:        OptionKind,
		ISIN:        o.ISIN,
		Product:     o.ProductName,
		OpenDate:    o.OpenDate,
		CloseDate:   o.CloseDate,
		Quantity:    o.Quantity,
		OpenAmount:  o.OpenAmountEUR,
		CloseAmount: o.CloseAmountEUR,
		Commission:  o.Commission,
		Delta:       o.Delta,
		Country:     o.CountryCode,
	}
}

// Sales normalizes stock legs then option legs, keeping the input order.
func Sales(stock []StockSale, options []OptionSale) []Sale {
	legs := make([]Sale, 0, len(stock)+len(options))
	for _, s := range stock {
		legs = append(legs, s.sale())
	}
	for _, o := range options {
		legs = append(legs, o.sale())
	}
	return legs
}

// SaleView is a closed leg ready to be listed.
type SaleView struct {
	Kind             string   `json:"kind"`
	ISIN             string   `json:"isin"`
	Product          string   `json:"product"`
	OpenDate         string   `json:"openDate"`
	CloseDate        string   `json:"closeDate"`
	Quantity         Quantity `json:"quantity"`
	Cost             Money    `json:"cost"`
	Proceeds         Money    `json:"proceeds"`
	Commission       Money    `json:"commission"`
	Delta            Money    `json:"delta"`
	Country          string   `json:"country"`
	DaysHeld         *int     `json:"daysHeld"`
	AnnualizedReturn *Percent `json:"annualizedReturn"`
}

// SaleViews lists the closed legs of the selected period, ordered by close date.
// Legs whose close date does not parse are skipped.
func SaleViews(ds *Dataset, y Year) []SaleView {
	ds = ds.ForYear(y)
	type dated struct {
		closed date.Date
		view   SaleView
	}
	rows := make([]dated, 0, len(ds.StockSales)+len(ds.OptionSales))
	for _, s := range Sales(ds.StockSales, ds.OptionSales) {
		closed, err := date.Parse(s.CloseDate)
		if err != nil {
			continue
		}
		v := SaleView{
			Kind:       s.Kind.String(),
			ISIN:       s.ISIN,
			Product:    s.Product,
			OpenDate:   s.OpenDate,
			CloseDate:  s.CloseDate,
			Quantity:   s.Quantity,
			Cost:       s.OpenAmount.Abs(),
			Proceeds:   s.CloseAmount,
			Commission: s.Commission,
			Delta:      s.Delta,
			Country:    s.Country,
		}
		if days, ok := date.DaysHeld(s.OpenDate, s.CloseDate); ok {
			v.DaysHeld = &days
			if r, ok := AnnualizedReturn(s.Delta, s.OpenAmount, days); ok {
				v.AnnualizedReturn = &r
			}
		}
		rows = append(rows, dated{closed, v})
	}

	slices.SortStableFunc(rows, func(a, b dated) int { return cmp.Compare(a.closed.Sub(b.closed), 0) })
	views := make([]SaleView, len(rows))
	for i, r := range rows {
		views[i] = r.view
	}
	return views
}
