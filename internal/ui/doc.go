// Package ui provides the Bubble Tea dashboard for rosterdeck.
//
// # Architecture
//
// The Model is the single state container driven by the program loop: key
// presses mutate view state (filter text, sort, cursor), roster operations
// go through the scope provider, and the derived view pipeline turns each
// provider snapshot into the visible row set. The only suspension point is
// the async add-user command; while it is pending the loop keeps processing
// input, but a second add is rejected by the action controller's busy gate.
//
// # Files
//
//   - app.go: Model, Init/Update/View, key routing, async add command
//   - keys.go: key bindings (bubbles/key)
//   - shortcut.go: lifecycle-scoped global ctrl+k dispatcher
//   - list.go: generic keyed list renderer with an incremental row cache
//   - button.go: styled pressable control with a forwarded handle
//   - theme.go: palettes and lipgloss styles
//   - header.go, footer.go: status bars and the help overlay
package ui
