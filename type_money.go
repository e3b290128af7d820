package taxfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact amount in euros.
//
// Every amount in a Dataset has already been converted to EUR upstream, so
// Money carries no currency of its own.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money from a number of euros.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// EUR is the currency every amount is expressed in.
const EUR = money.EUR

// eur returns the go-money currency definition for EUR.
func eur() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, EUR).Currency()
}

// String returns the amount formatted the go-money way (€1,234.56).
func (m Money) String() string {
	cur := eur()
	return cur.Formatter().Format(m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Div(q Quantity) Money            { return Money{value: m.value.Div(q.value)} }
func (m Money) Round(places int32) Money        { return Money{value: m.value.Round(places)} }

// Decimal returns the exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// AsFloat is meant for presentation only; computations stay in decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Sum adds up amounts.
func Sum(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.value)
	}
	return Money{value: total}
}

// PercentOf returns part/whole*100, and false when whole is zero.
func PercentOf(part, whole Money) (Percent, bool) {
	if whole.IsZero() {
		return 0, false
	}
	return Percent(part.value.Div(whole.value).Mul(hundred).InexactFloat64()), true
}

var hundred = decimal.NewFromInt(100)

// MarshalJSON writes the amount as a JSON number rounded to the cent.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(int32(eur().Fraction))), nil
}

// UnmarshalJSON reads a JSON number (or numeric string) of euros.
// null leaves the amount at zero.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
