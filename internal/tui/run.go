package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/contractor-evaluation/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the evaluation form until the user quits or ctx is canceled.
func Run(ctx context.Context, backend service.Backend, opts ...Option) error {
	if backend == nil {
		return fmt.Errorf("backend is required")
	}

	m := New(ctx, backend, opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := final.(Model); ok {
		slog.Info("Evaluation session ended", "submitted", fm.Submitted())
	}
	return nil
}
