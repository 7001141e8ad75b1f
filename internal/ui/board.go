package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/threds/internal/threds"
)

// renderBoard shows the board title and one card per thread.
func (m Model) renderBoard(rows []row) bodyBuilder {
	styles := m.theme.Styles()
	pad := lipgloss.NewStyle().Padding(0, 1)
	board := m.ctrl.Board()
	width := max(m.width-6, 20)

	var b bodyBuilder
	title := styles.Board(board).Render(fmt.Sprintf("|-%s-|", board)) +
		styles.Title.Render(" - "+threds.BoardLabel(board))
	b.add(pad.Render(title))
	if info, ok := threds.LookupBoard(board); ok {
		b.add(pad.Render(styles.MutedText.Render(info.Description)))
	}
	b.add(pad.Render(styles.FaintText.Render(fmt.Sprintf(
		"Displaying %d / %d active threds", len(rows), threds.MaxThredsPerBoard,
	))))
	b.blank()

	if len(rows) == 0 {
		if m.loading > 0 {
			b.add(pad.Render(styles.MutedText.Render("Loading threds...")))
		} else {
			b.add(pad.Render(styles.MutedText.Render("No threds yet. Press n to start the first one.")))
		}
		return b
	}

	for i, r := range rows {
		sel := i == m.cursor
		b.row(pad.Render(m.renderCard(r.thread, width, sel)), sel)
	}
	return b
}

func (m Model) renderCard(t threds.Thread, width int, selected bool) string {
	styles := m.theme.Styles()

	subject := t.Subject
	if strings.TrimSpace(subject) == "" {
		subject = "(no subject)"
	}
	lines := []string{m.cursorMark(selected) + styles.Title.Render(truncate(subject, width-2))}

	if op, ok := t.Opener(); ok {
		lines = append(lines, "  "+styles.Text.Render(excerpt(op.Content, width-2)))
		if op.ImageURL != "" {
			lines = append(lines, "  "+styles.AccentText.Render("[image] ")+styles.FaintText.Render(truncate(op.ImageURL, width-10)))
		}
	}

	meta := fmt.Sprintf("R: %d", t.ReplyCount())
	if last, ok := t.LastPost(); ok {
		meta += "  Last: " + formatClock(last.Timestamp)
	}
	meta += "  " + quoteRef(t.ID)
	lines = append(lines, "  "+styles.FaintText.Render(meta))

	card := strings.Join(lines, "\n")
	if selected && m.focus != focusForm {
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
			Render(card)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder(), false, false, false, true).
		Render(card)
}
