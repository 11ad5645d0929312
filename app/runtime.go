package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the shell and drives it with a bubbletea program until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, s *Shell, opts ...tea.ProgramOption) error {
	m, err := s.Start()
	if err != nil {
		return err
	}
	defer s.Container().Close()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(*m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
