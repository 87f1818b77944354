package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Variant selects a button's color treatment.
type Variant int

const (
	Primary Variant = iota
	Secondary
	Danger
)

// Size selects a button's padding.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

const busyLabel = "Working…"

// Button is a pressable control. Constructors hand back the *Button itself
// as the forwarded handle: callers keep it to focus, blur, or inspect the
// control without the button knowing why.
type Button struct {
	label   string
	variant Variant
	size    Size
	loading bool
	focused bool
	theme   Theme
}

// NewButton creates a button and returns its handle.
func NewButton(label string, variant Variant, size Size, theme Theme) *Button {
	return &Button{label: label, variant: variant, size: size, theme: theme}
}

// SetLoading toggles the busy presentation. A loading button is disabled
// and shows a fixed busy label regardless of its configured content.
func (b *Button) SetLoading(loading bool) {
	b.loading = loading
}

// Loading reports the busy presentation state.
func (b *Button) Loading() bool {
	return b.loading
}

// Disabled reports whether presses should be ignored.
func (b *Button) Disabled() bool {
	return b.loading
}

// Focus gives the button input focus.
func (b *Button) Focus() {
	b.focused = true
}

// Blur removes input focus.
func (b *Button) Blur() {
	b.focused = false
}

// Focused reports whether the button has input focus.
func (b *Button) Focused() bool {
	return b.focused
}

// Label returns the text the button currently displays.
func (b *Button) Label() string {
	if b.loading {
		return busyLabel
	}
	return b.label
}

// SetTheme swaps the palette the button renders with.
func (b *Button) SetTheme(theme Theme) {
	b.theme = theme
}

// View renders the button.
func (b *Button) View() string {
	style := lipgloss.NewStyle().Bold(true)

	switch b.size {
	case Small:
		style = style.Padding(0, 1)
	case Large:
		style = style.Padding(1, 4)
	default:
		style = style.Padding(0, 2)
	}

	var bg string
	switch b.variant {
	case Secondary:
		bg = b.theme.Faint
	case Danger:
		bg = b.theme.Danger
	default:
		bg = b.theme.Accent
	}

	fg := b.theme.Background
	if b.loading {
		bg = b.theme.Surface
		fg = b.theme.Muted
	}

	style = style.
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))

	if b.focused && !b.loading {
		style = style.Underline(true)
	}

	return style.Render(b.Label())
}
