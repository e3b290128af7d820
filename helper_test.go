package taxfolio

import "github.com/etnz/taxfolio/date"

const (
	appleISIN     = "US0378331005"
	sapISIN       = "DE0007164600"
	microsoftISIN = "US5949181045"
	usa           = "840 - United States"
	germany       = "276 - Germany"
)

// testDataset returns a small two-year portfolio:
//
//	2023: Apple sold (+480), an Apple call closed (+120), a 50 dividend with
//	      7.5 withheld, fees of -5 and -3, a deposit of 10000.
//	2024: SAP sold (-205), a 30 dividend, a deposit of 2000.
//
// Microsoft is still held: cost 1500, market value 2000.
func testDataset() *Dataset {
	return &Dataset{
		Transactions: []Transaction{
			{Date: "05-01-2023", TransactionType: TypeCash, TransactionSubtype: SubtypeDeposit, AmountEUR: M(10000)},
			{Date: "2024-02-01", TransactionType: TypeCash, TransactionSubtype: SubtypeDeposit, AmountEUR: M(2000)},
			{Date: "2023-02-01", TransactionType: TypeStock, BuySell: "BUY", ISIN: microsoftISIN, AmountEUR: M(-1500)},
		},
		StockSales: []StockSale{
			{ISIN: appleISIN, ProductName: "Apple", BuyDate: "01-01-2023", SaleDate: "15-03-2023", Quantity: Q(10),
				BuyAmountEUR: M(-1000), SaleAmountEUR: M(1500), Delta: M(480), Commission: M(-20), CountryCode: usa},
			{ISIN: sapISIN, ProductName: "SAP", BuyDate: "01-06-2023", SaleDate: "10-05-2024", Quantity: Q(10),
				BuyAmountEUR: M(-2000), SaleAmountEUR: M(1800), Delta: M(-205), Commission: M(-5), CountryCode: germany},
		},
		OptionSales: []OptionSale{
			{ProductName: "AAPL 150 C", ISIN: appleISIN, OpenDate: "2023-06-01", CloseDate: "2023-07-01", Quantity: Q(1),
				OpenAmountEUR: M(-200), CloseAmountEUR: M(322), Commission: M(-2), Delta: M(120), CountryCode: usa},
		},
		Dividends: []DividendTransaction{
			{Date: "15-06-2023", ProductName: "Apple", ISIN: appleISIN, AmountEUR: M(50), TransactionType: TypeDividend, CountryCode: usa},
			{Date: "15-06-2023", ProductName: "Apple", ISIN: appleISIN, AmountEUR: M(-7.5), TransactionType: TypeDividend, TransactionSubtype: SubtypeTax, CountryCode: usa},
			{Date: "01-03-2024", ProductName: "SAP", ISIN: sapISIN, AmountEUR: M(30), CountryCode: germany},
		},
		DividendTaxSummary: DividendTaxSummary{
			"2023": {usa: {GrossAmt: M(50), TaxedAmt: M(-7.5)}},
			"2024": {germany: {GrossAmt: M(30), TaxedAmt: M(-7.91)}},
		},
		Fees: []Fee{
			{Date: "10-02-2023", Description: "connectivity", Category: "exchange", AmountEUR: M(-5)},
			{Date: "10-08-2023", Description: "connectivity", Category: "exchange", AmountEUR: M(-3)},
		},
		Holdings: []CurrentHolding{
			{ISIN: microsoftISIN, ProductName: "Microsoft", Quantity: Q(5), TotalCostBasisEUR: M(-1500), MarketValueEUR: M(2000), CurrentPriceEUR: M(400)},
		},
		HistoricalHoldings: HistoricalHoldings{
			"2023": {
				{Year: "2023", ISIN: sapISIN, ProductName: "SAP", Quantity: Q(5), BuyAmountEUR: M(-1000)},
				{Year: "2023", ISIN: microsoftISIN, ProductName: "Microsoft", Quantity: Q(5), BuyAmountEUR: M(-1500)},
				{Year: "2023", ISIN: sapISIN, ProductName: "SAP SE", Quantity: Q(5), BuyAmountEUR: M(-1000)},
			},
		},
	}
}

// today is a date after every record of testDataset.
var today = date.New(2025, 6, 30)
