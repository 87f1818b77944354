package ui

import (
	"fmt"
	"strings"
)

// renderFooter renders the bottom bar: sort state, busy/notice, key hints.
func (m Model) renderFooter() string {
	styles := m.styles

	parts := []string{
		styles.AccentText.Render(fmt.Sprintf("sort %s %s", m.sortField, m.sortDir)),
	}

	switch {
	case m.ctrl.Busy():
		parts = append(parts, styles.WarningText.Render("adding user…"))
	case m.notice != "":
		style := styles.MutedText
		if m.noticeIsError {
			style = styles.DangerText
		}
		parts = append(parts, style.Render(m.notice))
	default:
		parts = append(parts, styles.MutedText.Render("a add · x remove · ctrl+k filter · h help"))
	}

	sep := styles.FaintText.Render("  •  ")
	return styles.Footer.Width(m.width).Render(strings.Join(parts, sep))
}
