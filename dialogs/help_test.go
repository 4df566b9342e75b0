package dialogs

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestHelp_ShowAndDismiss(t *testing.T) {
	d := NewHelpDialog([]key.Binding{
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selected trip")),
	})
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())

	d.Show()
	assert.True(t, d.IsVisible())
	assert.Contains(t, d.View(), "copy selected trip")

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, d.IsVisible())
}

func TestHelp_IgnoresOtherKeys(t *testing.T) {
	d := NewHelpDialog(nil)
	d.Show()

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.True(t, d.IsVisible())
}

func TestCenter_PadsToArea(t *testing.T) {
	out := Center("x", 5, 3)
	assert.Contains(t, out, "x")
	assert.Len(t, splitLines(out), 3)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
