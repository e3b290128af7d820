package taxfolio

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/taxfolio/date"
)

// First line numbers of each Anexo J table.
const (
	DividendFirstLine = 801 // quadro 8A, foreign capital income
	StockFirstLine    = 951 // quadro 9.2A, disposal of shares
	OptionFirstLine   = 991 // quadro 9.2B, other capital gains (derivatives)
)

// Income codes written on each row.
const (
	DividendCode = "E11"
	StockCode    = "G01"
	OptionCode   = "G30"
)

// CountryCode returns the numeric code of a "840 - United States" country key.
// Keys without that shape are returned trimmed.
func CountryCode(country string) string {
	code, _, found := strings.Cut(country, " - ")
	if !found {
		return strings.TrimSpace(country)
	}
	return strings.TrimSpace(code)
}

// DividendRow is a line of quadro 8A.
type DividendRow struct {
	Linha                 int    `json:"linha"`
	Codigo                string `json:"codigo"`
	Pais                  string `json:"pais"`
	CodigoPais            string `json:"codigoPais"`
	RendimentoBruto       Money  `json:"rendimentoBruto"`
	ImpostoEstrangeiro    Money  `json:"impostoEstrangeiro"`
	ImpostoRetidoPortugal Money  `json:"impostoRetidoPortugal"`
	RetencaoPortugal      Money  `json:"retencaoPortugal"`
}

// DividendTotals is the control sum of quadro 8A.
type DividendTotals struct {
	RendimentoBruto       Money `json:"rendimentoBruto"`
	ImpostoEstrangeiro    Money `json:"impostoEstrangeiro"`
	ImpostoRetidoPortugal Money `json:"impostoRetidoPortugal"`
	RetencaoPortugal      Money `json:"retencaoPortugal"`
}

func (t DividendTotals) Equal(o DividendTotals) bool {
	return t.RendimentoBruto.Equal(o.RendimentoBruto) &&
		t.ImpostoEstrangeiro.Equal(o.ImpostoEstrangeiro) &&
		t.ImpostoRetidoPortugal.Equal(o.ImpostoRetidoPortugal) &&
		t.RetencaoPortugal.Equal(o.RetencaoPortugal)
}

// DividendRows builds one row per country present in summary for y.
// Countries are listed in key order. Portuguese withholding is not known to
// the engine and stays zero.
func DividendRows(summary DividendTaxSummary, y Year) []DividendRow {
	countries := summary[string(y)]
	rows := make([]DividendRow, 0, len(countries))
	for i, country := range slices.Sorted(maps.Keys(countries)) {
		c := countries[country]
		rows = append(rows, DividendRow{
			Linha:              DividendFirstLine + i,
			Codigo:             DividendCode,
			Pais:               country,
			CodigoPais:         CountryCode(country),
			RendimentoBruto:    c.GrossAmt,
			ImpostoEstrangeiro: c.TaxedAmt.Abs(),
		})
	}
	return rows
}

// DividendRowTotals sums the rows.
func DividendRowTotals(rows []DividendRow) DividendTotals {
	var t DividendTotals
	for _, r := range rows {
		t.RendimentoBruto = t.RendimentoBruto.Add(r.RendimentoBruto)
		t.ImpostoEstrangeiro = t.ImpostoEstrangeiro.Add(r.ImpostoEstrangeiro)
		t.ImpostoRetidoPortugal = t.ImpostoRetidoPortugal.Add(r.ImpostoRetidoPortugal)
		t.RetencaoPortugal = t.RetencaoPortugal.Add(r.RetencaoPortugal)
	}
	return t
}

// DividendInputTotals sums the summary of y directly.
func DividendInputTotals(summary DividendTaxSummary, y Year) DividendTotals {
	var t DividendTotals
	for _, c := range summary[string(y)] {
		t.RendimentoBruto = t.RendimentoBruto.Add(c.GrossAmt)
		t.ImpostoEstrangeiro = t.ImpostoEstrangeiro.Add(c.TaxedAmt.Abs())
	}
	return t
}

// StockRow is a line of quadro 9.2A.
type StockRow struct {
	Linha             int    `json:"linha"`
	Codigo            string `json:"codigo"`
	Pais              string `json:"pais"`
	CodigoPais        string `json:"codigoPais"`
	AnoRealizacao     string `json:"anoRealizacao"`
	MesRealizacao     string `json:"mesRealizacao"`
	DiaRealizacao     string `json:"diaRealizacao"`
	Realizacao        Money  `json:"realizacao"`
	AnoAquisicao      string `json:"anoAquisicao"`
	MesAquisicao      string `json:"mesAquisicao"`
	DiaAquisicao      string `json:"diaAquisicao"`
	Aquisicao         Money  `json:"aquisicao"`
	Despesas          Money  `json:"despesas"`
	PaisContraparte   string `json:"paisContraparte"`
	saleDate, buyDate date.Date
}

// StockTotals is the control sum of quadro 9.2A.
type StockTotals struct {
	Realizacao Money `json:"realizacao"`
	Aquisicao  Money `json:"aquisicao"`
	Despesas   Money `json:"despesas"`
}

func (t StockTotals) Equal(o StockTotals) bool {
	return t.Realizacao.Equal(o.Realizacao) && t.Aquisicao.Equal(o.Aquisicao) && t.Despesas.Equal(o.Despesas)
}

// stockKey groups the sales reported on the same row.
type stockKey struct {
	country, sale, buy string
}

// StockRows builds the rows of the stock sales closed in y.
//
// Sales sharing country, sale date and buy date are merged into one row.
// Rows are ordered by sale date, then buy date, then country. Sales whose
// dates do not parse are skipped.
func StockRows(sales []StockSale, y Year) []StockRow {
	index := make(map[stockKey]int)
	var rows []StockRow
	for _, s := range sales {
		sold, err := date.Parse(s.SaleDate)
		if err != nil || !y.Range().Contains(sold) {
			continue
		}
		bought, err := date.Parse(s.BuyDate)
		if err != nil {
			continue
		}
		key := stockKey{s.CountryCode, sold.String(), bought.String()}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, StockRow{
				Codigo:          StockCode,
				Pais:            s.CountryCode,
				CodigoPais:      CountryCode(s.CountryCode),
				AnoRealizacao:   sold.Format("2006"),
				MesRealizacao:   sold.Format("01"),
				DiaRealizacao:   sold.Format("02"),
				AnoAquisicao:    bought.Format("2006"),
				MesAquisicao:    bought.Format("01"),
				DiaAquisicao:    bought.Format("02"),
				PaisContraparte: CountryCode(s.CountryCode),
				saleDate:        sold,
				buyDate:         bought,
			})
		}
		r := &rows[i]
		r.Realizacao = r.Realizacao.Add(s.SaleAmountEUR)
		r.Aquisicao = r.Aquisicao.Add(s.BuyAmountEUR.Abs())
		r.Despesas = r.Despesas.Add(s.Commission)
	}

	slices.SortStableFunc(rows, func(a, b StockRow) int {
		return cmp.Or(
			cmp.Compare(a.saleDate.Sub(b.saleDate), 0),
			cmp.Compare(a.buyDate.Sub(b.buyDate), 0),
			cmp.Compare(a.Pais, b.Pais),
		)
	})
	for i := range rows {
		rows[i].Linha = StockFirstLine + i
	}
	return rows
}

// StockRowTotals sums the rows.
func StockRowTotals(rows []StockRow) StockTotals {
	var t StockTotals
	for _, r := range rows {
		t.Realizacao = t.Realizacao.Add(r.Realizacao)
		t.Aquisicao = t.Aquisicao.Add(r.Aquisicao)
		t.Despesas = t.Despesas.Add(r.Despesas)
	}
	return t
}

// StockInputTotals sums the sales of y directly, skipping the same records as StockRows.
func StockInputTotals(sales []StockSale, y Year) StockTotals {
	var t StockTotals
	for _, s := range sales {
		sold, err := date.Parse(s.SaleDate)
		if err != nil || !y.Range().Contains(sold) {
			continue
		}
		if _, err := date.Parse(s.BuyDate); err != nil {
			continue
		}
		t.Realizacao = t.Realizacao.Add(s.SaleAmountEUR)
		t.Aquisicao = t.Aquisicao.Add(s.BuyAmountEUR.Abs())
		t.Despesas = t.Despesas.Add(s.Commission)
	}
	return t
}

// OptionRow is a line of quadro 9.2B.
type OptionRow struct {
	Linha             int    `json:"linha"`
	Codigo            string `json:"codigo"`
	Pais              string `json:"pais"`
	CodigoPais        string `json:"codigoPais"`
	RendimentoLiquido Money  `json:"rendimentoLiquido"`
	PaisContraparte   string `json:"paisContraparte"`
}

// OptionTotals is the control sum of quadro 9.2B.
type OptionTotals struct {
	RendimentoLiquido Money `json:"rendimentoLiquido"`
}

func (t OptionTotals) Equal(o OptionTotals) bool {
	return t.RendimentoLiquido.Equal(o.RendimentoLiquido)
}

// OptionRows builds one row per country for the options closed in y.
// Countries are listed in key order.
func OptionRows(options []OptionSale, y Year) []OptionRow {
	net := make(Totals)
	for _, o := range options {
		if closed, err := date.Parse(o.CloseDate); err == nil && y.Range().Contains(closed) {
			net.Add(o.CountryCode, o.Delta)
		}
	}
	rows := make([]OptionRow, 0, len(net))
	for i, country := range net.Keys() {
		rows = append(rows, OptionRow{
			Linha:             OptionFirstLine + i,
			Codigo:            OptionCode,
			Pais:              country,
			CodigoPais:        CountryCode(country),
			RendimentoLiquido: net[country],
			PaisContraparte:   CountryCode(country),
		})
	}
	return rows
}

// OptionRowTotals sums the rows.
func OptionRowTotals(rows []OptionRow) OptionTotals {
	var t OptionTotals
	for _, r := range rows {
		t.RendimentoLiquido = t.RendimentoLiquido.Add(r.RendimentoLiquido)
	}
	return t
}

// OptionInputTotals sums the options of y directly.
func OptionInputTotals(options []OptionSale, y Year) OptionTotals {
	var t OptionTotals
	for _, o := range options {
		if closed, err := date.Parse(o.CloseDate); err == nil && y.Range().Contains(closed) {
			t.RendimentoLiquido = t.RendimentoLiquido.Add(o.Delta)
		}
	}
	return t
}

// TaxForm is the Anexo J pre-fill of one year.
type TaxForm struct {
	Year           Year           `json:"year"`
	Dividends      []DividendRow  `json:"dividends"`
	DividendTotals DividendTotals `json:"dividendTotals"`
	Stocks         []StockRow     `json:"stocks"`
	StockTotals    StockTotals    `json:"stockTotals"`
	Options        []OptionRow    `json:"options"`
	OptionTotals   OptionTotals   `json:"optionTotals"`
}

// NewTaxForm builds the three tables of y with their control sums.
// The form is filed per year: AllYears yields an empty form.
func NewTaxForm(ds *Dataset, y Year) *TaxForm {
	f := &TaxForm{Year: y, Dividends: []DividendRow{}, Stocks: []StockRow{}, Options: []OptionRow{}}
	if ds == nil || y.IsAll() {
		return f
	}
	f.Dividends = DividendRows(ds.DividendTaxSummary, y)
	f.DividendTotals = DividendRowTotals(f.Dividends)
	f.Stocks = StockRows(ds.StockSales, y)
	f.StockTotals = StockRowTotals(f.Stocks)
	f.Options = OptionRows(ds.OptionSales, y)
	f.OptionTotals = OptionRowTotals(f.Options)
	return f
}

// Reconciles reports whether every control sum matches the totals computed
// from the raw records of ds.
func (f *TaxForm) Reconciles(ds *Dataset) bool {
	if f.Year.IsAll() {
		return true
	}
	return f.DividendTotals.Equal(DividendInputTotals(ds.DividendTaxSummary, f.Year)) &&
		f.StockTotals.Equal(StockInputTotals(ds.StockSales, f.Year)) &&
		f.OptionTotals.Equal(OptionInputTotals(ds.OptionSales, f.Year))
}
