package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-bikeshare/clipboard"
	"github.com/andareed/siftly-bikeshare/dialogs"
	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/trips"
)

// Lines taken by the title bar, the table border and the footer.
const chromeHeight = 1 + 2 + 2

// model is the trip browser: a scrollable table of the filtered trips.
type model struct {
	sel  filters.Selection
	data *trips.Table
	cols []ColumnMeta

	table        table.Model
	activeDialog dialogs.Dialog
	ci           commandInput

	terminalWidth  int
	terminalHeight int
	ready          bool

	noticeMsg  string
	noticeType string
	noticeSeq  int

	copy func(string) error
}

func newBrowseModel(sel filters.Selection, data *trips.Table) *model {
	cols := newColumns(data)
	t := table.New(
		table.WithColumns(toTableColumns(layoutColumns(cols, 80))),
		table.WithFocused(true),
	)
	t.SetStyles(tripTableStyles())

	m := &model{
		sel:          sel,
		data:         data,
		cols:         cols,
		table:        t,
		activeDialog: dialogs.NewHelpDialog(helpBindings()),
		copy:         clipboard.Copy,
	}
	m.table.SetRows(toTableRows(data.Trips, m.cols))
	return m
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			_, cmd := m.activeDialog.Update(msg)
			return m, cmd
		}
		if m.ci.cmd != CmdNone {
			return m.handleCommandKey(msg)
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if c := CommandFromPrefix(msg.Runes[0]); c != CmdNone {
				m.ci = commandInput{cmd: c}
				return m, nil
			}
		}
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.OpenHelp):
			m.activeDialog.Show()
			return m, nil
		case key.Matches(msg, Keys.CopyRow):
			return m, m.copySelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) resize(width, height int) {
	logging.Debugf("browse: resize %dx%d", width, height)
	m.terminalWidth, m.terminalHeight = width, height

	// margins and border eat four columns
	contentW := max(0, width-4)
	m.cols = layoutColumns(m.cols, contentW-2*visibleCount(m.cols))
	m.table.SetColumns(toTableColumns(m.cols))
	m.table.SetRows(toTableRows(m.data.Trips, m.cols))
	m.table.SetWidth(contentW)
	m.table.SetHeight(max(1, height-chromeHeight))
	m.ready = true
}

func (m *model) copySelected() tea.Cmd {
	if m.data.Len() == 0 {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	trip := m.data.Trips[m.table.Cursor()]
	if err := m.copy(rowText(trip)); err != nil {
		logging.Errorf("browse: copy trip %d: %v", trip.Index, err)
		return m.startNotice(fmt.Sprintf("Copy failed: %v", err), "error", noticeDuration)
	}
	return m.startNotice("Copied trip to clipboard", "success", noticeDuration)
}

func visibleCount(cols []ColumnMeta) int {
	n := 0
	for _, c := range cols {
		if c.Visible {
			n++
		}
	}
	return n
}
