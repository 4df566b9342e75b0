package report

import "github.com/charmbracelet/lipgloss"

const (
	headingFGColor = "#ff9f1c"
	labelFGColor   = "#c0c0c0"
	headerFGColor  = "#e0e0e0"
	headerBGColor  = "#3a3a3a"
	borderFGColor  = "240"
	dimFGColor     = "245"
)

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	dim     lipgloss.Style

	// raw data pages
	border     lipgloss.Style
	headerCell lipgloss.Style
	cell       lipgloss.Style
	oddCell    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color(headingFGColor)),
		label:   r.NewStyle().Foreground(lipgloss.Color(labelFGColor)),
		dim:     r.NewStyle().Faint(true),

		border: r.NewStyle().Foreground(lipgloss.Color(borderFGColor)),
		headerCell: r.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color(headerFGColor)).
			Background(lipgloss.Color(headerBGColor)),
		cell:    r.NewStyle().Padding(0, 1),
		oddCell: r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(dimFGColor)),
	}
}
