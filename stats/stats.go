package stats

import (
	"slices"

	"github.com/andareed/siftly-bikeshare/trips"
)

// TimeStats are the most frequent travel times.
type TimeStats struct {
	Month   int // 1-12
	Weekday int // 0=Monday
	Hour    int
	OK      bool // false when there were no trips
}

func ComputeTimeStats(t *trips.Table) TimeStats {
	n := t.Len()
	months := make([]int, 0, n)
	days := make([]int, 0, n)
	hours := make([]int, 0, n)
	for _, trip := range t.Trips {
		months = append(months, trip.Month())
		days = append(days, trip.Weekday())
		hours = append(hours, trip.Hour())
	}

	var s TimeStats
	s.Month, s.OK = Mode(months)
	s.Weekday, _ = Mode(days)
	s.Hour, _ = Mode(hours)
	return s
}

// StationStats are the most popular stations and route. Blank station cells
// are skipped, so each mode is only meaningful when its Has flag is set.
type StationStats struct {
	Start    string
	End      string
	Route    string
	HasStart bool
	HasEnd   bool
	HasRoute bool
}

// Any reports whether at least one of the modes exists.
func (s StationStats) Any() bool { return s.HasStart || s.HasEnd || s.HasRoute }

func ComputeStationStats(t *trips.Table) StationStats {
	var starts, ends, routes []string
	for _, trip := range t.Trips {
		if trip.StartStation != "" {
			starts = append(starts, trip.StartStation)
		}
		if trip.EndStation != "" {
			ends = append(ends, trip.EndStation)
		}
		if trip.StartStation != "" && trip.EndStation != "" {
			routes = append(routes, trip.Route())
		}
	}

	var s StationStats
	s.Start, s.HasStart = Mode(starts)
	s.End, s.HasEnd = Mode(ends)
	s.Route, s.HasRoute = Mode(routes)
	return s
}

// DurationStats aggregate trip durations in seconds.
type DurationStats struct {
	Total   float64 // rounded to one decimal
	Mean    float64 // rounded to one decimal; meaningless unless HasMean
	Trips   int     // trips with a known duration
	HasMean bool
}

func ComputeDurationStats(t *trips.Table) DurationStats {
	var s DurationStats
	var sum float64
	for _, trip := range t.Trips {
		if !trip.HasDuration {
			continue
		}
		sum += trip.Duration
		s.Trips++
	}
	s.Total = Round1(sum)
	if s.Trips > 0 {
		s.Mean = Round1(sum / float64(s.Trips))
		s.HasMean = true
	}
	return s
}

// BirthYearStats summarise known birth years.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
	OK         bool
}

// UserStats describe who rode. Gender and BirthYears are only meaningful when
// the matching Has flag is set, which mirrors the source's columns.
type UserStats struct {
	UserTypes []Count[string]

	HasGender bool
	Genders   []Count[string]

	HasBirthYear bool
	BirthYears   BirthYearStats
}

func ComputeUserStats(t *trips.Table) UserStats {
	s := UserStats{
		HasGender:    t.HasColumn(trips.ColGender),
		HasBirthYear: t.HasColumn(trips.ColBirthYear),
	}

	var types []string
	for _, trip := range t.Trips {
		if trip.UserType != "" {
			types = append(types, trip.UserType)
		}
	}
	s.UserTypes = ValueCounts(types)

	if s.HasGender {
		var genders []string
		for _, trip := range t.Trips {
			if trip.Gender != "" {
				genders = append(genders, trip.Gender)
			}
		}
		s.Genders = ValueCounts(genders)
	}

	if s.HasBirthYear {
		var years []int
		for _, trip := range t.Trips {
			if trip.HasBirthYear {
				years = append(years, trip.BirthYear)
			}
		}
		if len(years) > 0 {
			s.BirthYears.MostCommon, s.BirthYears.OK = Mode(years)
			s.BirthYears.Earliest = slices.Min(years)
			s.BirthYears.MostRecent = slices.Max(years)
		}
	}
	return s
}
