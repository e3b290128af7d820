package taxfolio

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultLocale is the locale of the tax forms.
const DefaultLocale = "pt-PT"

// FormatOptions controls FormatCurrency.
// A zero value formats with two decimals in the default locale.
type FormatOptions struct {
	Locale                string
	MinimumFractionDigits *int
	MaximumFractionDigits *int
}

// Digits is a helper to fill FormatOptions fraction digits.
func Digits(n int) *int { return &n }

// locale describes separators and symbol placement.
type locale struct {
	decimal, thousand string
	template          string // "$" is the symbol and "1" the amount, as in go-money
}

var locales = map[string]locale{
	"pt-PT": {decimal: ",", thousand: ".", template: "1 $"},
	"de-DE": {decimal: ",", thousand: ".", template: "1 $"},
	"fr-FR": {decimal: ",", thousand: " ", template: "1 $"},
	"en-US": {decimal: ".", thousand: ",", template: "$1"},
	"en-GB": {decimal: ".", thousand: ",", template: "$1"},
}

// lookupLocale finds a locale by name, ignoring case and accepting "_" separators.
// Unknown names fall back to DefaultLocale.
func lookupLocale(name string) locale {
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	for k, l := range locales {
		if strings.EqualFold(k, name) {
			return l
		}
	}
	return locales[DefaultLocale]
}

// ErrUnknownLocale is returned by CheckLocale for locales without separators.
var ErrUnknownLocale = errors.New("unknown locale")

// Locales lists the supported locale names.
func Locales() []string { return slices.Sorted(maps.Keys(locales)) }

// CheckLocale validates a locale given by a user.
// FormatCurrency itself never fails and falls back to DefaultLocale.
func CheckLocale(name string) error {
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	for k := range locales {
		if strings.EqualFold(k, name) {
			return nil
		}
	}
	return fmt.Errorf("%w %q: want one of %s", ErrUnknownLocale, name, strings.Join(Locales(), ", "))
}

// fractionDigits resolves the min and max digits, clamping min down to max.
func (o FormatOptions) fractionDigits() (minDigits, maxDigits int) {
	minDigits, maxDigits = 2, 2
	if o.MaximumFractionDigits != nil {
		maxDigits = max(*o.MaximumFractionDigits, 0)
		minDigits = min(minDigits, maxDigits)
	}
	if o.MinimumFractionDigits != nil {
		minDigits = max(*o.MinimumFractionDigits, 0)
		if o.MaximumFractionDigits == nil {
			maxDigits = max(maxDigits, minDigits)
		}
	}
	return min(minDigits, maxDigits), maxDigits
}

// FormatCurrency formats an amount of euros for a locale.
//
// The amount is rounded to the maximum number of fraction digits, then
// trailing zeros are dropped down to the minimum. Inconsistent options never
// fail: the minimum is clamped to the maximum.
func FormatCurrency(value Money, opts FormatOptions) string {
	minDigits, maxDigits := opts.fractionDigits()
	l := lookupLocale(opts.Locale)

	rounded := value.value.Round(int32(maxDigits))
	digits := minDigits
	for digits < maxDigits && !rounded.Round(int32(digits)).Equal(rounded) {
		digits++
	}

	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(digits)), ".")
	amount := groupThousands(intPart, l.thousand)
	if frac != "" {
		amount += l.decimal + frac
	}
	sa := strings.Replace(l.template, "1", amount, 1)
	sa = strings.Replace(sa, "$", eur().Grapheme, 1)
	if rounded.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// groupThousands inserts sep between every group of three digits.
func groupThousands(digits, sep string) string {
	var b strings.Builder
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// AnnualizedReturn scales a return on cost to a yearly percentage.
//
// It reports false when the cost is zero or the holding period is not positive.
func AnnualizedReturn(netReturn, costBasis Money, daysHeld int) (Percent, bool) {
	if costBasis.IsZero() || daysHeld <= 0 {
		return 0, false
	}
	r := netReturn.value.Div(costBasis.value.Abs()).
		Mul(decimal.NewFromInt(365)).
		Div(decimal.NewFromInt(int64(daysHeld))).
		Mul(hundred)
	return Percent(r.InexactFloat64()), true
}
