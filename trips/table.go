package trips

import (
	"context"
	"fmt"
	"strings"

	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/logging"
)

// Table is one city's trips, possibly narrowed by a Selection. A Table is not
// modified after it is built; Filter returns a new one.
type Table struct {
	Header []string
	Trips  []Trip
	cols   columnIndex
}

// Len returns the number of trips.
func (t *Table) Len() int { return len(t.Trips) }

// HasColumn reports whether the source carried column c.
func (t *Table) HasColumn(c Column) bool {
	_, ok := t.cols[c]
	return ok
}

// FromFrame converts a raw frame into trips. It fails with ErrSchema when a
// required column is missing or a cell cannot be parsed.
func FromFrame(f *Frame) (*Table, error) {
	cols := indexColumns(f.Header)

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s", ErrSchema, strings.Join(missing, ", "))
	}

	t := &Table{
		Header: append([]string(nil), f.Header...),
		Trips:  make([]Trip, 0, len(f.Rows)),
		cols:   cols,
	}
	for i, row := range f.Rows {
		trip, err := cols.trip(i, row)
		if err != nil {
			// +2: 1-based, header line
			return nil, fmt.Errorf("%w: row %d: %w", ErrSchema, i+2, err)
		}
		t.Trips = append(t.Trips, trip)
	}
	return t, nil
}

func (ci columnIndex) trip(i int, row []string) (Trip, error) {
	start, ok := parseStartTime(ci.cell(row, ColStartTime))
	if !ok {
		return Trip{}, fmt.Errorf("%s %q is not a timestamp", ColStartTime, ci.cell(row, ColStartTime))
	}

	dur, hasDur, err := parseNumber(ci.cell(row, ColDuration))
	if err != nil {
		return Trip{}, fmt.Errorf("%s: %w", ColDuration, err)
	}
	if dur < 0 {
		return Trip{}, fmt.Errorf("%s %v is negative", ColDuration, dur)
	}

	by, hasBY, err := parseNumber(ci.cell(row, ColBirthYear))
	if err != nil {
		return Trip{}, fmt.Errorf("%s: %w", ColBirthYear, err)
	}

	return Trip{
		Index:        i,
		Raw:          row,
		Start:        start,
		StartStation: ci.cell(row, ColStartStation),
		EndStation:   ci.cell(row, ColEndStation),
		Duration:     dur,
		HasDuration:  hasDur,
		UserType:     ci.cell(row, ColUserType),
		Gender:       ci.cell(row, ColGender),
		BirthYear:    int(by),
		HasBirthYear: hasBY,
	}, nil
}

// Filter keeps trips matching the month and day of sel. An All axis keeps
// every trip on that axis.
func (t *Table) Filter(sel filters.Selection) *Table {
	month := sel.MonthIndex()
	day := sel.DayIndex()

	out := &Table{Header: t.Header, cols: t.cols, Trips: make([]Trip, 0, len(t.Trips))}
	for _, trip := range t.Trips {
		if month != 0 && trip.Month() != month {
			continue
		}
		if day >= 0 && trip.Weekday() != day {
			continue
		}
		out.Trips = append(out.Trips, trip)
	}
	return out
}

// Loader builds the filtered trip set for a Selection.
type Loader struct {
	Source Source
}

// Load reads sel.City from the source and narrows it by sel.
func (l *Loader) Load(ctx context.Context, sel filters.Selection) (*Table, error) {
	frame, err := l.Source.Read(ctx, sel.City)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", sel.City, err)
	}
	full, err := FromFrame(frame)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", sel.City, err)
	}
	filtered := full.Filter(sel)
	logging.Infof("Filter %s kept %d of %d trips", sel, filtered.Len(), full.Len())
	return filtered, nil
}
