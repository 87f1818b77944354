package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func ctrlK() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlK}
}

func newTestDispatcher(fired *int) *shortcutDispatcher {
	binding := key.NewBinding(key.WithKeys("ctrl+k"))
	return newShortcutDispatcher(binding, func() tea.Cmd {
		*fired++
		return nil
	})
}

func TestHandle_UnboundLetsKeyFallThrough(t *testing.T) {
	fired := 0
	d := newTestDispatcher(&fired)

	if _, consumed := d.handle(ctrlK()); consumed {
		t.Fatalf("unbound dispatcher consumed the key")
	}
	if fired != 0 {
		t.Fatalf("focus fired %d times, want 0", fired)
	}
}

func TestHandle_BoundConsumesAndFocuses(t *testing.T) {
	fired := 0
	d := newTestDispatcher(&fired)
	d.bind()

	if _, consumed := d.handle(ctrlK()); !consumed {
		t.Fatalf("bound dispatcher did not consume the key")
	}
	if fired != 1 {
		t.Fatalf("focus fired %d times, want 1", fired)
	}

	// A non-matching key falls through.
	other := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	if _, consumed := d.handle(other); consumed {
		t.Fatalf("dispatcher consumed a non-matching key")
	}
}

func TestUnbind_StopsMatchingAndRebindDoesNotStack(t *testing.T) {
	fired := 0
	d := newTestDispatcher(&fired)

	d.bind()
	d.unbind()
	if _, consumed := d.handle(ctrlK()); consumed {
		t.Fatalf("unbound dispatcher still consumed the key")
	}

	// Rebinding after an unbind behaves like a single listener.
	d.bind()
	d.bind()
	d.handle(ctrlK())
	if fired != 1 {
		t.Fatalf("focus fired %d times after rebinds, want 1", fired)
	}
}
