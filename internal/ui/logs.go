package ui

import "strings"

// renderLogs shows the tail of the client log file.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	title := styles.Title.Render("Client log")
	if m.logPath != "" {
		title += "  " + styles.FaintText.Render(m.logPath)
	}

	parts := []string{title}
	if m.logErr != nil {
		parts = append(parts, styles.DangerText.Render("! "+m.logErr.Error()))
	}
	parts = append(parts,
		m.logView.View(),
		styles.FaintText.Render("j/k scroll  esc close"),
	)

	return styles.PanelFocus.
		Width(max(m.width-2, 10)).
		Render(strings.Join(parts, "\n"))
}
