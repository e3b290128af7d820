package taxfolio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/taxfolio/date"
)

// Year selects the reporting period: a four digit calendar year, or AllYears.
//
// Years stay strings so that they can key maps and sort lexicographically.
type Year string

// AllYears selects the whole history.
const AllYears Year = "all"

// ParseYear validates a selector given by a user.
func ParseYear(s string) (Year, error) {
	if s == "" || s == string(AllYears) {
		return AllYears, nil
	}
	if len(s) != 4 || strings.Trim(s, "0123456789") != "" || s == "0000" {
		return "", fmt.Errorf("invalid year %q: want a four digit year or %q", s, AllYears)
	}
	return Year(s), nil
}

// YearOfDate returns the calendar year of a date as a Year.
func YearOfDate(d date.Date) Year { return Year(d.Format("2006")) }

// IsAll reports whether y selects the whole history.
func (y Year) IsAll() bool { return y == AllYears || y == "" }

// Int returns the numeric year, 0 for AllYears.
func (y Year) Int() int {
	n, _ := strconv.Atoi(string(y))
	return n
}

// Range returns the calendar range of a specific year.
func (y Year) Range() date.Range { return date.YearRange(y.Int()) }

// Contains reports whether a date string falls in the selected period.
// AllYears contains every string, even the ones that do not parse.
func (y Year) Contains(dateStr string) bool {
	if y.IsAll() {
		return true
	}
	return y.Range().ContainsString(dateStr)
}

func (y Year) String() string { return string(y) }
