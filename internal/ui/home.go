package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/threds/internal/threds"
)

// renderHome lists every board with the subjects of its threads.
func (m Model) renderHome(rows []row) bodyBuilder {
	styles := m.theme.Styles()
	pad := lipgloss.NewStyle().Padding(0, 1)
	width := max(m.width-2, 20)

	var b bodyBuilder
	b.add(pad.Render(styles.Title.Render("Directory of Threds")))
	b.add(pad.Render(m.homeStatus()))
	b.blank()

	for i, r := range rows {
		sel := i == m.cursor
		switch r.kind {
		case rowBoard:
			label := styles.Board(r.board).Render("|-" + threds.BoardLabel(r.board))
			line := m.cursorMark(sel) + label
			b.row(pad.Render(m.highlight(line, sel)), sel)
			if len(m.ctrl.ThredsFor(r.board)) == 0 {
				b.add(pad.Render("  " + styles.FaintText.Render("|----(empty)")))
			}
		case rowThread:
			subject := truncate(r.thread.Subject, width-12)
			line := m.cursorMark(sel) + styles.MutedText.Render("    |----") + styles.Text.Render(subject)
			b.row(pad.Render(m.highlight(line, sel)), sel)
		}
	}

	b.blank()
	b.add(pad.Render(styles.FaintText.Render(fmt.Sprintf(
		"Total Threds: %d | Threds per board: %d",
		len(m.ctrl.Threds()), threds.MaxThredsPerBoard,
	))))
	return b
}

func (m Model) homeStatus() string {
	styles := m.theme.Styles()
	var status string
	switch m.snapshot.Status() {
	case "online":
		status = styles.SuccessText.Render("Online")
	case "offline":
		// The backend may be cold-starting; it usually answers within a minute.
		status = styles.WarningText.Render("Booting up... (up to 60s)")
	default:
		status = styles.MutedText.Render("Checking...")
	}
	return styles.MutedText.Render("Status: ") + status + styles.MutedText.Render(" | Account: Anonymous")
}

// cursorMark is the gutter shown left of every selectable row.
func (m Model) cursorMark(selected bool) string {
	if selected {
		return m.theme.Styles().AccentText.Render("▶ ")
	}
	return "  "
}

func (m Model) highlight(line string, selected bool) string {
	if !selected || m.focus == focusForm {
		return line
	}
	return m.theme.Styles().Selected.Render(line)
}
