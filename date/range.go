package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange return the period range containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// YearRange returns the range covering a whole calendar year.
func YearRange(year int) Range {
	return NewRange(New(year, 1, 1), Yearly)
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// ContainsString parses str and reports whether it falls in the range.
// Strings that do not parse are never contained.
func (r Range) ContainsString(str string) bool {
	d, err := Parse(str)
	if err != nil {
		return false
	}
	return r.Contains(d)
}

// Identifier compute a unique identifier for the Range.
// Whole months and years get a short name.
func (r Range) Identifier() string {
	switch {
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return r.From.Format("2006")
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return r.From.Format("2006-01")
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}
