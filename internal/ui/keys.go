package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	ForceQuit  key.Binding
	Quit       key.Binding
	Help       key.Binding
	Logs       key.Binding
	ToggleDark key.Binding
	Dismiss    key.Binding

	// Navigation
	Home     key.Binding
	Board1   key.Binding
	Board2   key.Binding
	Board3   key.Binding
	Open     key.Binding
	Close    key.Binding
	Back     key.Binding
	Forward  key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Threads
	NewThread key.Binding
	Reply     key.Binding
	JumpQuote key.Binding
	FocusForm key.Binding

	// Forms
	NextField   key.Binding
	PrevField   key.Binding
	Submit      key.Binding
	Cancel      key.Binding
	ClearTarget key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Client log"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Toggle dark mode"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Dismiss error"),
		),

		Home: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Home"),
		),
		Board1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Work"),
		),
		Board2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Random"),
		),
		Board3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Travel"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close thread"),
		),
		Back: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Forward"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),

		NewThread: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New thread"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reply to post"),
		),
		JumpQuote: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "Jump to quoted post"),
		),
		FocusForm: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus form"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		ClearTarget: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "Clear reply target"),
		),
	}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Board1, k.Board2, k.Board3, k.Open, k.Close, k.Back, k.Forward},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.NewThread, k.Reply, k.JumpQuote, k.FocusForm},
		{k.NextField, k.PrevField, k.Submit, k.Cancel, k.ClearTarget},
		{k.ToggleDark, k.Logs, k.Dismiss, k.Help, k.Quit},
	}
}
