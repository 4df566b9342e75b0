package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	switch m.ci.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(strings.TrimSpace(m.ci.buf)); err == nil {
			return m.jumpToTrip(n)
		}
		return m.startNotice("Invalid trip number", "warn", noticeDuration)

	case CmdSearch:
		return m.searchOnce(m.ci.buf)
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ci = commandInput{}
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil
	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	case tea.KeyBackspace:
		if r := []rune(m.ci.buf); len(r) > 0 {
			m.ci.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ci.buf += " "
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.ci.buf += string(msg.Runes)
	}
	return m, nil
}
