package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce moves to the next trip after the cursor whose cells contain
// query, wrapping around at the end.
func (m *model) searchOnce(query string) tea.Cmd {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	n := m.data.Len()
	start := m.table.Cursor()
	for step := 1; step <= n; step++ {
		i := (start + step) % n
		if strings.Contains(strings.ToLower(rowText(m.data.Trips[i])), q) {
			m.table.SetCursor(i)
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("No trip matches %q", query), "warn", noticeDuration)
}
