package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-bikeshare/logging"
)

// jumpToTrip moves the cursor to the n-th trip of the current selection,
// counting from 1 like the footer does.
func (m *model) jumpToTrip(n int) tea.Cmd {
	logging.Debugf("browse: jump to trip %d", n)
	if m.data.Len() == 0 {
		return m.startNotice("No trips to jump to", "warn", noticeDuration)
	}
	if n <= 0 || n > m.data.Len() {
		return m.startNotice(fmt.Sprintf("Trip %d out of bounds", n), "warn", noticeDuration)
	}
	m.table.SetCursor(n - 1)
	return nil
}
