package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

type Keymap struct {
	Quit     key.Binding
	OpenHelp key.Binding
	CopyRow  key.Binding
	Jump     key.Binding
	Search   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy selected trip"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to trip number"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search trips"),
	),
}

// helpBindings lists every key the browser reacts to, for the help dialog.
func helpBindings() []key.Binding {
	nav := table.DefaultKeyMap()
	return []key.Binding{
		nav.LineUp,
		nav.LineDown,
		nav.PageUp,
		nav.PageDown,
		nav.GotoTop,
		nav.GotoBottom,
		Keys.Jump,
		Keys.Search,
		Keys.CopyRow,
		Keys.OpenHelp,
		Keys.Quit,
	}
}
