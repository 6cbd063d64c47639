package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// loadProject fetches the project snapshot.
func (m Model) loadProject() tea.Cmd {
	form, queue, parent, timeout := m.form, m.queue, m.ctx, m.config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		err := form.Load(ctx)
		return projectLoadedMsg{
			err:           err,
			notifications: queue.drain(),
		}
	}
}

// submitEvaluation validates and sends the evaluation.
func (m Model) submitEvaluation() tea.Cmd {
	form, queue, parent, timeout := m.form, m.queue, m.ctx, m.config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		result, err := form.Submit(ctx)
		return submittedMsg{
			err:           err,
			result:        result,
			notifications: queue.drain(),
		}
	}
}
