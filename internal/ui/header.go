package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/threds/internal/route"
	"github.com/five82/threds/internal/threds"
)

// renderHeader renders the navbar and the location line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bar := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface))

	left := []string{
		styles.Logo.Render("TH"),
		styles.Header.Bold(true).Render("Threds"),
	}
	for i, b := range threds.Boards {
		label := fmt.Sprintf("%d %s", i+1, b.Label)
		if m.ctrl.Kind() != route.KindHome && m.ctrl.Board() == b.ID {
			left = append(left, styles.ActiveTab.Foreground(styles.Board(b.ID).GetForeground()).Render(label))
			continue
		}
		left = append(left, styles.Tab.Render(label))
	}

	right := []string{m.renderLiveness(), styles.Header.Render(m.modeLabel())}

	leftStr := lipgloss.JoinHorizontal(lipgloss.Top, left...)
	rightStr := lipgloss.JoinHorizontal(lipgloss.Top, right...)
	gap := max(m.width-lipgloss.Width(leftStr)-lipgloss.Width(rightStr), 1)
	line1 := leftStr + bar.Render(strings.Repeat(" ", gap)) + rightStr

	return lipgloss.JoinVertical(lipgloss.Left,
		bar.Width(m.width).Render(line1),
		m.renderLocation(),
	)
}

func (m Model) renderLiveness() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)
	switch m.snapshot.Status() {
	case "online":
		return styles.SuccessText.Background(bg).Padding(0, 1).Render("● Online")
	case "offline":
		return styles.DangerText.Background(bg).Padding(0, 1).Render("● Offline")
	default:
		return styles.WarningText.Background(bg).Padding(0, 1).Render("● Checking")
	}
}

func (m Model) modeLabel() string {
	if m.theme.Dark {
		return "☾ Dark"
	}
	return "☀ Light"
}

// renderLocation shows the current path with history hints.
func (m Model) renderLocation() string {
	styles := m.theme.Styles()

	back, fwd := " ", " "
	if m.history.CanBack() {
		back = "◂"
	}
	if m.history.CanForward() {
		fwd = "▸"
	}
	parts := []string{
		styles.FaintText.Render(back + fwd),
		styles.MutedText.Render(m.history.Path()),
	}
	if m.loading > 0 {
		parts = append(parts, styles.WarningText.Render("loading..."))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, " "))
}

// renderStatusLine shows the dismissible navigation error, if any.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	if err := m.ctrl.LoadErr(); err != nil {
		msg := truncate(err.Error(), max(m.width-20, 10))
		return lipgloss.NewStyle().Padding(0, 1).Render(
			styles.DangerText.Render("! "+msg) + styles.FaintText.Render("  x dismiss"),
		)
	}
	return ""
}

// renderFooter shows the key hints for the current focus.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var hints []string
	switch {
	case m.focus == focusForm:
		hints = []string{"ctrl+s submit", "tab next field", "esc cancel"}
	case m.ctrl.Kind() == route.KindThread:
		hints = []string{"j/k move", "r reply", "> jump", "tab write", "esc back", "[ ] history"}
	case m.ctrl.Kind() == route.KindBoard:
		hints = []string{"j/k move", "enter open", "n new thread", "H home", "[ ] history"}
	default:
		hints = []string{"j/k move", "enter open", "1-3 boards", "[ ] history"}
	}
	hints = append(hints, "? help", "q quit")
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}
