package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-bikeshare/dialogs"
	"github.com/andareed/siftly-bikeshare/report"
)

const legend = "(? help · / search · : jump · y copy · q quit)"

func (m *model) titleView(width int) string {
	pill := titlePill.Render("bikeshare")
	text := titleText.Render(fmt.Sprintf("%s · %d trips", m.sel, m.data.Len()))
	bar := lipgloss.JoinHorizontal(lipgloss.Top, pill, text)
	gap := max(0, width-lipgloss.Width(bar))
	return bar + titleBarStyle.Render(fmt.Sprintf("%*s", gap, ""))
}

func (m *model) footerView(width int) string {
	st := footerState{
		Selection: m.sel.String(),
		TotalRows: m.data.Len(),
		Legend:    legend,
	}
	if m.data.Len() > 0 {
		st.Row = m.table.Cursor() + 1
	}
	switch {
	case m.ci.cmd != CmdNone:
		st.StatusMessage = m.activeCommandLine()
	case m.noticeMsg != "":
		st.StatusMessage = noticeText(m.noticeMsg, m.noticeType)
	}
	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Center(m.activeDialog.View(), m.terminalWidth, m.terminalHeight)
	}

	bordered := tableStyle.Render(m.table.View())
	contentW := lipgloss.Width(bordered)

	body := bordered
	if m.data.Len() == 0 {
		body = tableStyle.Width(max(0, contentW-2)).Render(report.NoDataNotice)
	}

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.titleView(contentW),
		body,
		m.footerView(contentW),
	))
}
