// Package dialogs holds the overlay boxes drawn on top of the trip browser.
package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface overlays implement.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	IsVisible() bool
	Show()
	Hide()
}
