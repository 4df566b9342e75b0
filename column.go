package main

import (
	"strings"

	"github.com/andareed/siftly-bikeshare/trips"
)

type ColumnRole int

const (
	RoleNormal    ColumnRole = iota
	RolePrimary              // station names
	RoleSecondary            // timestamps
)

type ColumnMeta struct {
	Name     string
	Index    int
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

func detectRole(name string) ColumnRole {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "start station", "end station":
		return RolePrimary
	case "start time", "end time":
		return RoleSecondary
	default:
		return RoleNormal
	}
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 20
	case RoleSecondary:
		return 19
	default:
		return 8
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 4.0
	case RoleSecondary:
		return 0.5
	default:
		return 1.0
	}
}

// newColumns builds column metadata for a trip table. Columns without a single
// non-blank cell are hidden.
func newColumns(t *trips.Table) []ColumnMeta {
	cols := make([]ColumnMeta, len(t.Header))
	for i, name := range t.Header {
		role := detectRole(name)
		if strings.TrimSpace(name) == "" {
			name = "#"
		}
		cols[i] = ColumnMeta{
			Name:     name,
			Index:    i,
			Role:     role,
			Visible:  true,
			MinWidth: defaultMinWidthForRole(role),
			Weight:   defaultWeightForRole(role),
		}
	}
	markEmptyColumns(cols, t.Trips)
	return cols
}

func markEmptyColumns(cols []ColumnMeta, rows []trips.Trip) {
	if len(rows) == 0 {
		return
	}
	for i := range cols {
		hasData := false
		for _, row := range rows {
			if cols[i].Index >= len(row.Raw) {
				continue
			}
			if strings.TrimSpace(row.Raw[cols[i].Index]) != "" {
				hasData = true
				break
			}
		}
		if !hasData && cols[i].Role != RolePrimary {
			cols[i].Visible = false
			cols[i].Width = 0
			cols[i].Weight = 0
		}
	}
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	// 1. Sum min widths & weights for visible columns
	minSum := 0
	weightSum := 0.0

	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: just give each visible column its MinWidth clamped
		for i := range cols {
			if !cols[i].Visible {
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum

	// 2. Distribute remaining space by weight
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}

		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}
