package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the dashboard.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	FocusFilter key.Binding
	Escape      key.Binding

	// Roster actions
	AddUser      key.Binding
	RemoveUser   key.Binding
	ToggleActive key.Binding
	CycleRole    key.Binding

	// Sorting
	CycleSort key.Binding
	ToggleDir key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		FocusFilter: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "Focus filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / blur filter"),
		),

		AddUser: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add user"),
		),
		RemoveUser: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Remove user"),
		),
		ToggleActive: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle active"),
		),
		CycleRole: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Cycle role"),
		),

		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort field"),
		),
		ToggleDir: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Toggle sort direction"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// helpEntries returns the rows shown on the help overlay.
func (k keyMap) helpEntries() []key.Binding {
	return []key.Binding{
		k.FocusFilter, k.AddUser, k.RemoveUser, k.ToggleActive, k.CycleRole,
		k.CycleSort, k.ToggleDir, k.Up, k.Down,
		k.CycleTheme, k.Help, k.Escape, k.Quit,
	}
}
