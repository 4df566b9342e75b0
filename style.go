package main

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	titleBGColor           = "#2b2b2b"
	titlePillBGColor       = "#ff9f1c"
	titlePillFGColor       = "#000000"
	legendFGColor          = "#b0b0b0"
)

var (
	appstyle = lipgloss.NewStyle().Margin(0, 1)

	titleBarStyle = lipgloss.NewStyle().Background(lipgloss.Color(titleBGColor))
	titlePill     = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(lipgloss.Color(titlePillBGColor)).
			Foreground(lipgloss.Color(titlePillFGColor))
	titleText = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color(titleBGColor))

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

func tripTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(rowSelectedTextFGColor)).
		Background(lipgloss.Color(rowSelectedBGColor)).
		Bold(false)
	return s
}
