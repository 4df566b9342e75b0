package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/siftly-bikeshare/trips"
)

const ellipsis = "…"

// rowText is what gets copied for a trip: the source cells, tab separated.
func rowText(trip trips.Trip) string {
	return strings.Join(trip.Raw, "\t")
}

func toTableColumns(cols []ColumnMeta) []table.Column {
	out := make([]table.Column, 0, len(cols))
	for _, c := range cols {
		if !c.Visible || c.Width <= 0 {
			continue
		}
		out = append(out, table.Column{Title: c.Name, Width: c.Width})
	}
	return out
}

func toTableRows(ts []trips.Trip, cols []ColumnMeta) []table.Row {
	rows := make([]table.Row, 0, len(ts))
	for _, trip := range ts {
		row := make(table.Row, 0, len(cols))
		for _, c := range cols {
			if !c.Visible || c.Width <= 0 {
				continue
			}
			cell := ""
			if c.Index < len(trip.Raw) {
				cell = trip.Raw[c.Index]
			}
			row = append(row, truncate.StringWithTail(cell, uint(c.Width), ellipsis))
		}
		rows = append(rows, row)
	}
	return rows
}
