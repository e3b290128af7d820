package taxfolio

import "strings"

// Transaction types found in the ledger export.
const (
	TypeStock    = "STOCK"
	TypeOption   = "OPTION"
	TypeDividend = "DIVIDEND"
	TypeFee      = "FEE"
	TypeCash     = "CASH"
)

// Transaction subtypes with a meaning for the engine.
const (
	SubtypeTax        = "TAX"
	SubtypeDeposit    = "DEPOSIT"
	SubtypeWithdrawal = "WITHDRAWAL"
)

// Transaction is a raw ledger entry, already converted to EUR.
// CASH entries carry no ISIN.
type Transaction struct {
	Date               string   `json:"date"`
	Source             string   `json:"source"`
	ProductName        string   `json:"product_name"`
	ISIN               string   `json:"isin"`
	TransactionType    string   `json:"transaction_type"`
	TransactionSubtype string   `json:"transaction_subtype"`
	BuySell            string   `json:"buy_sell"`
	Quantity           Quantity `json:"quantity"`
	Price              Money    `json:"price"`
	Commission         Money    `json:"commission"`
	Currency           string   `json:"currency"`
	ExchangeRate       float64  `json:"exchange_rate"`
	Amount             Money    `json:"amount"`
	AmountEUR          Money    `json:"amount_eur"`
	CountryCode        string   `json:"country_code,omitempty"`
}

// IsCash reports whether tx is a deposit or a withdrawal of cash.
func (tx Transaction) IsCash() bool { return strings.EqualFold(tx.TransactionType, TypeCash) }

// DividendTransaction is a dividend payment or the tax withheld on it.
type DividendTransaction struct {
	Date               string `json:"date"`
	ProductName        string `json:"product_name"`
	ISIN               string `json:"isin"`
	AmountEUR          Money  `json:"amount_eur"`
	TransactionType    string `json:"transaction_type,omitempty"`
	TransactionSubtype string `json:"transaction_subtype"`
	CountryCode        string `json:"country_code,omitempty"`
}

// IsIncome reports whether d is dividend income rather than withholding.
//
// The export only holds dividend rows, so an empty type is a dividend.
func (d DividendTransaction) IsIncome() bool {
	if d.TransactionType != "" && !strings.EqualFold(d.TransactionType, TypeDividend) {
		return false
	}
	return !d.IsWithholding()
}

// IsWithholding reports whether d is tax withheld at source.
func (d DividendTransaction) IsWithholding() bool {
	return strings.EqualFold(d.TransactionSubtype, SubtypeTax)
}

// Fee is a cost charged by the broker, already signed negative.
type Fee struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	AmountEUR   Money  `json:"amount_eur"`
	Source      string `json:"source"`
}

// CountrySummary holds the dividend amounts of one country in one year.
type CountrySummary struct {
	GrossAmt Money `json:"gross_amt"`
	TaxedAmt Money `json:"taxed_amt"`
}

// DividendTaxSummary maps year → country → amounts.
type DividendTaxSummary map[string]map[string]CountrySummary

// Dividend returns the dividend view of a DIVIDEND ledger entry.
func (tx Transaction) Dividend() (DividendTransaction, bool) {
	if !strings.EqualFold(tx.TransactionType, TypeDividend) {
		return DividendTransaction{}, false
	}
	return DividendTransaction{
		Date:               tx.Date,
		ProductName:        tx.ProductName,
		ISIN:               tx.ISIN,
		AmountEUR:          tx.AmountEUR,
		TransactionType:    tx.TransactionType,
		TransactionSubtype: tx.TransactionSubtype,
		CountryCode:        tx.CountryCode,
	}, true
}
