// Package filters holds the fixed city/month/day vocabularies and the
// Selection a session is filtered by.
package filters

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All disables filtering on the month or day axis.
const All = "All"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

// Cities lists the accepted city keys in prompt order.
var Cities = []string{Chicago, NewYorkCity, Washington}

// MonthNames are the canonical month names; index+1 is the calendar month.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Months is the accepted month input. The published datasets cover the first
// half of the year only.
var Months = append(slices.Clone(MonthNames[:6]), All)

// DayNames are indexed 0=Monday..6=Sunday.
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Days is the accepted day input.
var Days = append(slices.Clone(DayNames), All)

var titleCaser = cases.Title(language.English)

// Selection fully determines which trips a session looks at.
type Selection struct {
	City  string
	Month string
	Day   string
}

func (s Selection) String() string {
	return s.City + " / " + s.Month + " / " + s.Day
}

// MonthIndex returns the 1-based calendar month of the selection, or 0 for All.
func (s Selection) MonthIndex() int {
	if s.Month == All {
		return 0
	}
	return slices.Index(MonthNames, s.Month) + 1
}

// DayIndex returns the weekday index (0=Monday) of the selection, or -1 for All.
func (s Selection) DayIndex() int {
	if s.Day == All {
		return -1
	}
	return slices.Index(DayNames, s.Day)
}

// NormalizeCity lower-cases the input and reports whether it is a known city.
func NormalizeCity(in string) (string, bool) {
	city := strings.ToLower(strings.TrimSpace(in))
	return city, slices.Contains(Cities, city)
}

// NormalizeMonth title-cases the input and reports whether it is accepted.
func NormalizeMonth(in string) (string, bool) {
	month := titleCaser.String(strings.TrimSpace(in))
	return month, slices.Contains(Months, month)
}

// NormalizeDay title-cases the input and reports whether it is accepted.
func NormalizeDay(in string) (string, bool) {
	day := titleCaser.String(strings.TrimSpace(in))
	return day, slices.Contains(Days, day)
}

// MonthName maps a calendar month (1-12) back to its name.
func MonthName(m int) string {
	if m < 1 || m > len(MonthNames) {
		return ""
	}
	return MonthNames[m-1]
}

// DayName maps a weekday index (0=Monday) back to its name.
func DayName(d int) string {
	if d < 0 || d >= len(DayNames) {
		return ""
	}
	return DayNames[d]
}

// New validates and normalises a raw triple, as used by the non-interactive
// commands. The first rejected field is reported.
func New(city, month, day string) (Selection, error) {
	c, ok := NormalizeCity(city)
	if !ok {
		return Selection{}, &InvalidError{Field: "city", Value: city, Allowed: Cities}
	}
	m, ok := NormalizeMonth(month)
	if !ok {
		return Selection{}, &InvalidError{Field: "month", Value: month, Allowed: Months}
	}
	d, ok := NormalizeDay(day)
	if !ok {
		return Selection{}, &InvalidError{Field: "day", Value: day, Allowed: Days}
	}
	return Selection{City: c, Month: m, Day: d}, nil
}

// InvalidError reports a value outside its vocabulary.
type InvalidError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidError) Error() string {
	return "invalid " + e.Field + " " + strings.TrimSpace(e.Value) + " (want one of: " + strings.Join(e.Allowed, ", ") + ")"
}
