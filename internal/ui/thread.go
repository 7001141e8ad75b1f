package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/threds/internal/threds"
)

// renderThread shows the open thread's posts in order.
func (m Model) renderThread(rows []row) bodyBuilder {
	styles := m.theme.Styles()
	pad := lipgloss.NewStyle().Padding(0, 1)
	board := m.ctrl.Board()

	var b bodyBuilder
	b.add(pad.Render(styles.FaintText.Render("esc Back to ") + styles.Board(board).Render(fmt.Sprintf("|-%s-|", board))))

	thread := m.ctrl.ActiveThread()
	if thread == nil {
		b.blank()
		b.add(pad.Render(styles.MutedText.Render("Loading thread...")))
		return b
	}

	id := string(thread.ID)
	if len(id) > 8 {
		id = id[:8]
	}
	b.add(pad.Render(styles.FaintText.Render("Thread " + id)))
	b.add(pad.Render(styles.Title.Render(thread.Subject)))
	b.add(pad.Render(styles.MutedText.Render(fmt.Sprintf("Posts: %d / %d", len(thread.Posts), threds.MaxPostsPerThread))))
	b.blank()

	width := max(m.width-6, 20)
	for i, r := range rows {
		sel := i == m.cursor
		b.row(pad.Render(m.renderPost(*thread, r.post, width, sel)), sel)
		b.blank()
	}
	return b
}

func (m Model) renderPost(t threds.Thread, p threds.Post, width int, selected bool) string {
	styles := m.theme.Styles()

	header := styles.AccentText.Render("No."+p.ID.Short()) +
		styles.FaintText.Render(" • ") +
		styles.SuccessText.Render(p.AuthorName()) +
		styles.FaintText.Render(" • "+formatStamp(p.Timestamp))
	lines := []string{m.cursorMark(selected) + header}

	if p.ReplyToID != "" {
		lines = append(lines, "  "+styles.WarningText.Render(quoteRef(p.ReplyToID)))
	}
	if content := strings.TrimRight(p.Content, "\n"); content != "" {
		wrapped := lipgloss.NewStyle().Width(width - 2).Render(content)
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, "  "+styles.Text.Render(line))
		}
	}
	if p.ImageURL != "" {
		lines = append(lines, "  "+styles.AccentText.Render("[image] ")+styles.MutedText.Render(truncate(p.ImageURL, width-10)))
	}
	if replies := t.RepliesTo(p.ID); len(replies) > 0 {
		refs := make([]string, len(replies))
		for i, r := range replies {
			refs[i] = quoteRef(r.ID)
		}
		lines = append(lines, "  "+styles.FaintText.Render("Replies: "+strings.Join(refs, " ")))
	}

	post := strings.Join(lines, "\n")
	if selected && m.focus != focusForm {
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
			Render(post)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder(), false, false, false, true).
		Render(post)
}
