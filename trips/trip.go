package trips

import (
	"strconv"
	"strings"
	"time"
)

// Trip is one bike-share ride.
type Trip struct {
	Index int      // position in the source, 0-based, header excluded
	Raw   []string // source cells, for the raw data pager

	Start        time.Time
	StartStation string
	EndStation   string

	Duration    float64 // seconds
	HasDuration bool

	UserType string
	Gender   string

	BirthYear    int
	HasBirthYear bool
}

// Month returns the calendar month (1-12) the trip started in.
func (t Trip) Month() int { return int(t.Start.Month()) }

// Weekday returns the day the trip started on, 0=Monday..6=Sunday.
func (t Trip) Weekday() int { return (int(t.Start.Weekday()) + 6) % 7 }

// Hour returns the start hour (0-23).
func (t Trip) Hour() int { return t.Start.Hour() }

// Route joins start and end station names the way route popularity is keyed.
func (t Trip) Route() string { return t.StartStation + RouteSeparator + t.EndStation }

// RouteSeparator sits between start and end station in a route key.
const RouteSeparator = " to "

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339Nano,
}

func parseStartTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range startTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseNumber returns ok=false for an empty cell; err is set only for text that
// is present but not numeric.
func parseNumber(raw string) (v float64, ok bool, err error) {
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
