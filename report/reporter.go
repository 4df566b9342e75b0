package report

import (
	"strconv"
	"time"

	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/stats"
	"github.com/andareed/siftly-bikeshare/trips"
)

// NoDataNotice replaces an aggregate that is undefined for an empty set.
const NoDataNotice = "No trips match the selected filters."

const (
	genderUnavailable    = "Gender is info not available."
	birthYearUnavailable = "Birth Year info is not available."
)

// Reporter prints the four statistic sections for a filtered trip set.
type Reporter struct {
	P *Printer
	// Timings appends how long each section took, like the interactive tool
	// always has. Disabled for reproducible output.
	Timings bool
	Now     func() time.Time
}

func NewReporter(p *Printer, timings bool) *Reporter {
	return &Reporter{P: p, Timings: timings, Now: time.Now}
}

// All prints every section in order.
func (r *Reporter) All(t *trips.Table) {
	r.Time(t)
	r.Stations(t)
	r.Durations(t)
	r.Users(t)
}

func (r *Reporter) begin(title string) time.Time {
	r.P.Heading(title)
	return r.Now()
}

func (r *Reporter) end(start time.Time) {
	if r.Timings {
		r.P.Print("\n%s", r.P.Dim("This took "+strconv.FormatFloat(r.Now().Sub(start).Seconds(), 'f', -1, 64)+" seconds."))
	}
	r.P.Rule()
}

func (r *Reporter) stat(label, value string) {
	r.P.Print("%s %s", r.P.Label(label), value)
}

// optionalStat prints the stat, or the no-data notice in its place.
func (r *Reporter) optionalStat(label, value string, ok bool) {
	if !ok {
		value = NoDataNotice
	}
	r.stat(label, value)
}

// Time prints the most frequent month, day and start hour.
func (r *Reporter) Time(t *trips.Table) {
	start := r.begin("Calculating The Most Frequent Times of Travel...")
	s := stats.ComputeTimeStats(t)
	if !s.OK {
		r.P.Info(NoDataNotice)
	} else {
		r.stat("most common month:", filters.MonthName(s.Month))
		r.stat("most common day in a week:", filters.DayName(s.Weekday))
		r.stat("most common start hour:", strconv.Itoa(s.Hour)+":00")
	}
	r.end(start)
}

// Stations prints the most popular start, end and route.
func (r *Reporter) Stations(t *trips.Table) {
	start := r.begin("Calculating The Most Popular Stations and Trip...")
	s := stats.ComputeStationStats(t)
	if !s.Any() {
		r.P.Info(NoDataNotice)
		r.end(start)
		return
	}
	r.optionalStat("Most commonly used start station:", s.Start, s.HasStart)
	r.optionalStat("Most commonly used end station:", s.End, s.HasEnd)
	r.optionalStat("Most commonly combined start and end station:", s.Route+".", s.HasRoute)
	r.end(start)
}

// Durations prints total and mean trip duration.
func (r *Reporter) Durations(t *trips.Table) {
	start := r.begin("Calculating Trip Duration...")
	s := stats.ComputeDurationStats(t)
	r.stat("Total travel time:", formatSeconds(s.Total)+" s")
	if s.HasMean {
		r.stat("Mean travel time:", formatSeconds(s.Mean)+" s")
	} else {
		r.stat("Mean travel time:", "n/a")
		r.P.Info(NoDataNotice)
	}
	r.end(start)
}

// Users prints user type, gender and birth year breakdowns. Gender and birth
// year are only read when the source has those columns.
func (r *Reporter) Users(t *trips.Table) {
	start := r.begin("Calculating User Stats...")
	s := stats.ComputeUserStats(t)

	if len(s.UserTypes) == 0 {
		r.P.Info(NoDataNotice)
	} else {
		r.counts(trips.ColUserType, s.UserTypes)
	}
	r.P.Rule()

	switch {
	case !s.HasGender:
		r.P.Print(genderUnavailable)
	case len(s.Genders) == 0:
		r.P.Info(NoDataNotice)
	default:
		r.counts(trips.ColGender, s.Genders)
	}
	r.P.Rule()

	switch {
	case !s.HasBirthYear:
		r.P.Print(birthYearUnavailable)
	case !s.BirthYears.OK:
		r.P.Info(NoDataNotice)
	default:
		r.stat("Earliest year of birth:", strconv.Itoa(s.BirthYears.Earliest))
		r.stat("Most recent year of birth:", strconv.Itoa(s.BirthYears.MostRecent))
		r.stat("Most common year of birth:", strconv.Itoa(s.BirthYears.MostCommon))
	}
	r.end(start)
}

// renderCounts is swapped in tests.
var renderCounts = writeCounts

func (r *Reporter) counts(c trips.Column, counts []stats.Count[string]) {
	if err := renderCounts(r.P.Out(), string(c), counts); err != nil {
		logging.Warnf("Reporter: %v", err)
		r.P.Error("%v", err)
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
