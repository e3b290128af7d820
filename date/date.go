// Package date handles the calendar dates found in broker exports.
//
// Exports mix two layouts, "DD-MM-YYYY" and "YYYY-MM-DD". Parsing is strict:
// a string either describes an existing calendar day in one of those layouts,
// or it is rejected. Nothing here panics on bad input.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateFormat is the ISO-8601 layout used to write dates.
const DateFormat = "2006-01-02"

// DMYFormat is the day-first layout used by the broker exports.
const DMYFormat = "02-01-2006"

const Day = 24 * time.Hour

// ErrInvalidDate is returned for strings that do not describe a calendar day.
var ErrInvalidDate = errors.New("invalid date")

var (
	dmyRE = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	ymdRE = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Sub returns the number of days from x to d.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()) / Day) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// DMY formats the date as DD-MM-YYYY.
func (d Date) DMY() string { return d.time().Format(DMYFormat) }

// Format returns a textual representation of the date using a time layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a date in either DD-MM-YYYY or YYYY-MM-DD layout.
//
// The components are normalized and compared with the input, so a day that
// does not exist in its month (31-02-2023) is rejected instead of rolling over.
func Parse(str string) (Date, error) {
	var y, m, d string
	if match := dmyRE.FindStringSubmatch(str); match != nil {
		d, m, y = match[1], match[2], match[3]
	} else if match := ymdRE.FindStringSubmatch(str); match != nil {
		y, m, d = match[1], match[2], match[3]
	} else {
		return Date{}, fmt.Errorf("%w %q: want DD-MM-YYYY or YYYY-MM-DD", ErrInvalidDate, str)
	}
	// the regexps guarantee digits only.
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)

	on := New(year, time.Month(month), day)
	if on.y != year || int(on.m) != month || on.d != day {
		return Date{}, fmt.Errorf("%w %q: no such day", ErrInvalidDate, str)
	}
	return on, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// YearOf returns the year of a date string.
func YearOf(str string) (int, bool) {
	d, err := Parse(str)
	if err != nil {
		return 0, false
	}
	return d.y, true
}

// YearString returns the four digit year of a date string, or "" if it does not parse.
func YearString(str string) string {
	d, err := Parse(str)
	if err != nil {
		return ""
	}
	return d.Format("2006")
}

// MonthIndex returns the zero based month (0 for January) of a date string.
func MonthIndex(str string) (int, bool) {
	d, err := Parse(str)
	if err != nil {
		return 0, false
	}
	return int(d.m) - 1, true
}

// MonthString returns the zero padded month of a date string, or "".
func MonthString(str string) string {
	d, err := Parse(str)
	if err != nil {
		return ""
	}
	return d.Format("01")
}

// DayString returns the zero padded day of a date string, or "".
func DayString(str string) string {
	d, err := Parse(str)
	if err != nil {
		return ""
	}
	return d.Format("02")
}

// DaysHeld returns the number of days between two date strings.
//
// It reports false when a date does not parse or when end is before start.
// A position opened and closed on the same day counts as held for one day.
func DaysHeld(start, end string) (int, bool) {
	from, err := Parse(start)
	if err != nil {
		return 0, false
	}
	to, err := Parse(end)
	if err != nil {
		return 0, false
	}
	if to.Before(from) {
		return 0, false
	}
	return max(to.Sub(from), 1), true
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
