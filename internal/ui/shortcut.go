package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// shortcutDispatcher owns the global focus-the-filter shortcut for the
// lifetime of the dashboard view. The binding is armed when the view
// activates and disarmed when it deactivates; while disarmed, matching key
// presses fall through untouched. The same dispatcher can be rebound after
// an unbind without stacking listeners.
type shortcutDispatcher struct {
	binding key.Binding
	bound   bool
	focus   func() tea.Cmd
}

// newShortcutDispatcher wires the binding to a focus command.
func newShortcutDispatcher(binding key.Binding, focus func() tea.Cmd) *shortcutDispatcher {
	return &shortcutDispatcher{binding: binding, focus: focus}
}

// bind arms the shortcut. Binding an armed dispatcher is a no-op.
func (d *shortcutDispatcher) bind() {
	d.bound = true
}

// unbind disarms the shortcut unconditionally.
func (d *shortcutDispatcher) unbind() {
	d.bound = false
}

// handle inspects a key press. On a match while bound it consumes the key,
// suppressing any further handling, and returns the focus command.
func (d *shortcutDispatcher) handle(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !d.bound || !key.Matches(msg, d.binding) {
		return nil, false
	}
	return d.focus(), true
}
