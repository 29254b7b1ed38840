package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the terminal console until the user quits or ctx is cancelled.
func Run(ctx context.Context, m *Model) error {
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal console: %w", err)
	}
	return nil
}
