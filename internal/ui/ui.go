package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run builds the dashboard model and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	var progOpts []tea.ProgramOption
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}

	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
