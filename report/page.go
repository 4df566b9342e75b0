package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/andareed/siftly-bikeshare/trips"
)

// RenderPage draws rows of the source table, with the source header, as a
// bordered grid. An empty page renders as "".
func (p *Printer) RenderPage(header []string, page []trips.Trip) string {
	if len(page) == 0 {
		return ""
	}

	headers := make([]string, len(header))
	for i, h := range header {
		if h == "" {
			h = "#"
		}
		headers[i] = h
	}

	rows := make([][]string, 0, len(page))
	for _, trip := range page {
		row := make([]string, len(headers))
		copy(row, trip.Raw)
		rows = append(rows, row)
	}

	st := p.styles
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.headerCell
			case row%2 == 1:
				return st.oddCell
			default:
				return st.cell
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// PrintPage writes a rendered page, skipping empty ones.
func (p *Printer) PrintPage(header []string, page []trips.Trip) {
	if s := p.RenderPage(header, page); s != "" {
		p.Print("%s", s)
	}
}
