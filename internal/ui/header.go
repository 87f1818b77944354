package ui

import (
	"fmt"
	"strings"

	"github.com/kgrieve/rosterdeck/internal/roster"
)

// renderHeader renders the status bar: logo, roster counts, theme name.
func (m Model) renderHeader() string {
	styles := m.styles
	snap := m.provider.Snapshot()

	total := len(snap.Users)
	active, admins := 0, 0
	for _, u := range snap.Users {
		if u.Active {
			active++
		}
		if u.Role == roster.RoleAdmin {
			admins++
		}
	}

	parts := []string{
		styles.Logo.Render("rosterdeck"),
		styles.Text.Render(fmt.Sprintf("%d users", total)),
		styles.SuccessText.Render(fmt.Sprintf("%d active", active)),
		styles.AccentText.Render(fmt.Sprintf("%d admin", admins)),
	}
	if shown := len(m.visible); shown != total {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("showing %d", shown)))
	}
	parts = append(parts, styles.FaintText.Render(m.theme.Name))

	sep := styles.FaintText.Render("  •  ")
	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	styles := m.styles

	lines := []string{styles.Logo.Render("rosterdeck keys"), ""}
	for _, b := range m.keys.helpEntries() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%s  %s",
			styles.AccentText.Width(10).Render(h.Key),
			styles.MutedText.Render(h.Desc)))
	}
	lines = append(lines, "", styles.FaintText.Render("press any key to close"))

	return styles.Panel.Padding(1, 3).Render(strings.Join(lines, "\n"))
}
