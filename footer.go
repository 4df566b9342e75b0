package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type footerState struct {
	Selection     string
	Row           int
	TotalRows     int
	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	TextFG     lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color(titleBGColor),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color(titlePillBGColor),
		ModePillFG: lipgloss.Color(titlePillFGColor),
		TextFG:     lipgloss.Color("#cfcfcf"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color(legendFGColor),
	}
}

// renderFooter draws two lines: the selection with a row counter, then the
// status message with the key legend on the right.
func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Row < 0 {
		st.Row = 0
	}
	if st.TotalRows < 0 {
		st.TotalRows = 0
	}
	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	right := truncatePlain(fmt.Sprintf(" Trip %d/%d", st.Row, st.TotalRows), width)
	leftW := max(0, width-lipgloss.Width(right))

	pillText := truncatePlain(" BROWSE ", leftW)
	pill := lipgloss.NewStyle().
		Background(styles.ModePillBG).
		Foreground(styles.ModePillFG).
		Render(pillText)

	selW := max(0, leftW-lipgloss.Width(pillText))
	sel := padRightPlain(truncatePlain(" ▸ "+st.Selection, selW), selW)

	bar := lipgloss.NewStyle().Background(styles.BarBG).Foreground(styles.TextFG)
	return pill + bar.Render(sel+right)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legend := truncatePlain(st.Legend, width)
	leftW := max(0, width-lipgloss.Width(legend))
	msg := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	base := lipgloss.NewStyle().Background(styles.StatusBG)
	return base.Foreground(styles.StatusFG).Render(msg) +
		base.Foreground(styles.LegendFG).Render(legend)
}

func padRightPlain(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return truncate.String(s, uint(w))
}
