package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/trips"
)

func testTable(t *testing.T) *trips.Table {
	t.Helper()
	tbl, err := trips.FromFrame(&trips.Frame{
		Header: []string{"", "Start Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender"},
		Rows: [][]string{
			{"1", "2017-06-05 08:00:00", "300", "Canal St & Adams St", "Clinton St & Madison St", "Subscriber", ""},
			{"2", "2017-06-12 09:30:00", "600", "Lake Shore Dr & Monroe St", "Streeter Dr & Grand Ave", "Customer", ""},
			{"3", "2017-06-19 17:45:00", "900", "Canal St & Adams St", "Wabash Ave & Grand Ave", "Subscriber", ""},
		},
	})
	require.NoError(t, err)
	return tbl
}

func testModel(t *testing.T) (*model, *[]string) {
	t.Helper()
	sel := filters.Selection{City: filters.Chicago, Month: "June", Day: filters.All}
	m := newBrowseModel(sel, testTable(t))
	var copied []string
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	return m, &copied
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(m *model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

func TestNewColumns_HidesEmptyColumns(t *testing.T) {
	cols := newColumns(testTable(t))

	require.Len(t, cols, 7)
	assert.Equal(t, "#", cols[0].Name)
	assert.Equal(t, RoleSecondary, cols[1].Role)
	assert.Equal(t, RolePrimary, cols[3].Role)
	assert.False(t, cols[6].Visible, "gender is blank in every row")
	assert.True(t, cols[5].Visible)
}

func TestLayoutColumns_DistributesWidth(t *testing.T) {
	cols := layoutColumns(newColumns(testTable(t)), 200)

	total := 0
	for _, c := range cols {
		if !c.Visible {
			assert.Zero(t, c.Width)
			continue
		}
		assert.GreaterOrEqual(t, c.Width, c.MinWidth)
		total += c.Width
	}
	assert.LessOrEqual(t, total, 200)
	assert.Greater(t, cols[3].Width, cols[5].Width, "stations get the spare room")
}

func TestLayoutColumns_TooNarrowClampsToMin(t *testing.T) {
	cols := layoutColumns(newColumns(testTable(t)), 10)
	for _, c := range cols {
		if c.Visible {
			assert.LessOrEqual(t, c.Width, 10)
		}
	}
}

func TestToTableRows_TruncatesCells(t *testing.T) {
	tbl := testTable(t)
	cols := newColumns(tbl)
	for i := range cols {
		cols[i].Width = 6
	}

	rows := toTableRows(tbl.Trips, cols)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 6, "hidden column dropped")
	assert.Equal(t, "Canal…", rows[0][3])
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := newBrowseModel(filters.Selection{City: filters.Chicago, Month: filters.All, Day: filters.All}, testTable(t))
	assert.Equal(t, "loading...", m.View())
}

func TestModel_ViewShowsSelectionAndCounter(t *testing.T) {
	m, _ := testModel(t)

	out := m.View()
	assert.Contains(t, out, "chicago / June / All")
	assert.Contains(t, out, "3 trips")
	assert.Contains(t, out, "Trip 1/3")
	assert.Contains(t, out, "Canal St & Adams St")
}

func TestModel_CopySelectedTrip(t *testing.T) {
	m, copied := testModel(t)

	m.Update(runes("j"))
	_, cmd := m.Update(runes("y"))

	assert.NotNil(t, cmd)
	require.Len(t, *copied, 1)
	assert.Equal(t, strings.Join(m.data.Trips[1].Raw, "\t"), (*copied)[0])
	assert.Equal(t, "success", m.noticeType)
}

func TestModel_CopyFailureShowsNotice(t *testing.T) {
	m, _ := testModel(t)
	m.copy = func(string) error { return errors.New("no clipboard") }

	m.Update(runes("y"))
	assert.Equal(t, "error", m.noticeType)
	assert.Contains(t, m.noticeMsg, "no clipboard")
}

func TestModel_NoticeClearsOnlyForLatestTimer(t *testing.T) {
	m, _ := testModel(t)
	m.Update(runes("y"))
	first := m.noticeSeq
	m.Update(runes("y"))

	m.Update(clearNoticeMsg{id: first})
	assert.NotEmpty(t, m.noticeMsg)

	m.Update(clearNoticeMsg{id: m.noticeSeq})
	assert.Empty(t, m.noticeMsg)
}

func TestModel_HelpDialogSwallowsKeys(t *testing.T) {
	m, copied := testModel(t)

	m.Update(runes("?"))
	require.True(t, m.activeDialog.IsVisible())
	assert.Contains(t, m.View(), "jump to trip number")

	_, cmd := m.Update(runes("y"))
	assert.Nil(t, cmd)
	assert.Empty(t, *copied)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.activeDialog.IsVisible())
}

func TestModel_Quit(t *testing.T) {
	m, _ := testModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_JumpToTrip(t *testing.T) {
	m, _ := testModel(t)

	typeKeys(m, ":3")
	assert.Contains(t, m.View(), "[JUMP] trip: 3")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 2, m.table.Cursor())
	assert.Equal(t, CmdNone, m.ci.cmd)
}

func TestModel_JumpOutOfBounds(t *testing.T) {
	m, _ := testModel(t)

	typeKeys(m, ":9")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, m.table.Cursor())
	assert.Equal(t, "Trip 9 out of bounds", m.noticeMsg)
}

func TestModel_SearchWrapsAround(t *testing.T) {
	m, _ := testModel(t)

	typeKeys(m, "/canal")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.table.Cursor())

	typeKeys(m, "/canal")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, m.table.Cursor())
}

func TestModel_SearchNoMatch(t *testing.T) {
	m, _ := testModel(t)

	typeKeys(m, "/zzz")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "warn", m.noticeType)
}

func TestModel_EscCancelsCommand(t *testing.T) {
	m, copied := testModel(t)

	typeKeys(m, "/y")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, CmdNone, m.ci.cmd)
	assert.Empty(t, *copied, "y was typed into the prompt")
}

func TestModel_EmptySelection(t *testing.T) {
	tbl := testTable(t)
	empty := tbl.Filter(filters.Selection{City: filters.Chicago, Month: "January", Day: filters.All})
	m := newBrowseModel(filters.Selection{City: filters.Chicago, Month: "January", Day: filters.All}, empty)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})

	assert.Contains(t, m.View(), "No trips match the selected filters.")
	m.Update(runes("y"))
	assert.Equal(t, "Nothing to copy", m.noticeMsg)
}
