package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/threds/internal/threds"
)

// Theme defines the palette for one display mode.
type Theme struct {
	Name string
	Dark bool

	Background string
	Surface    string
	SurfaceAlt string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Per-board heading colors.
	BoardColors map[threds.BoardID]string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Text)).
			Foreground(lipgloss.Color(t.Surface)).
			Bold(true).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		PanelFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		boardColors: t.BoardColors,
		accent:      t.Accent,
	}
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header     lipgloss.Style
	Footer     lipgloss.Style
	Logo       lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Selected   lipgloss.Style
	Title      lipgloss.Style
	Panel      lipgloss.Style
	PanelFocus lipgloss.Style

	boardColors map[threds.BoardID]string
	accent      string
}

// Board returns the heading style for a board, falling back to the accent.
func (s Styles) Board(id threds.BoardID) lipgloss.Style {
	color := s.boardColors[id]
	if color == "" {
		color = s.accent
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func lightTheme() Theme {
	// Tailwind gray scale with the 600 accents.
	return Theme{
		Name: "Light",

		Background: "#f9fafb", // gray-50
		Surface:    "#ffffff",
		SurfaceAlt: "#f3f4f6", // gray-100

		SelectionBg:   "#dbeafe", // blue-100
		SelectionText: "#111827", // gray-900

		Border:      "#e5e7eb", // gray-200
		BorderFocus: "#2563eb", // blue-600

		Text:    "#111827", // gray-900
		Muted:   "#6b7280", // gray-500
		Faint:   "#9ca3af", // gray-400
		Accent:  "#2563eb", // blue-600
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600

		BoardColors: map[threds.BoardID]string{
			threds.BoardWork:   "#2563eb", // blue-600
			threds.BoardRandom: "#ea580c", // orange-600
			threds.BoardTravel: "#0d9488", // teal-600
		},
	}
}

func darkTheme() Theme {
	// Tailwind gray scale with the 400 accents.
	return Theme{
		Name: "Dark",
		Dark: true,

		Background: "#111827", // gray-900
		Surface:    "#1f2937", // gray-800
		SurfaceAlt: "#374151", // gray-700

		SelectionBg:   "#1e3a8a", // blue-900
		SelectionText: "#f9fafb", // gray-50

		Border:      "#374151", // gray-700
		BorderFocus: "#60a5fa", // blue-400

		Text:    "#f9fafb", // gray-50
		Muted:   "#9ca3af", // gray-400
		Faint:   "#4b5563", // gray-600
		Accent:  "#60a5fa", // blue-400
		Success: "#4ade80", // green-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400

		BoardColors: map[threds.BoardID]string{
			threds.BoardWork:   "#60a5fa", // blue-400
			threds.BoardRandom: "#fb923c", // orange-400
			threds.BoardTravel: "#2dd4bf", // teal-400
		},
	}
}
