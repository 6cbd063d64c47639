package components

import (
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/service"
	"github.com/Veraticus/contractor-evaluation/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastExpiredMsg dismisses the toast it was scheduled for.
type ToastExpiredMsg struct {
	seq int
}

// ToastModel shows one notification at a time and hides it after its duration.
type ToastModel struct {
	theme   themes.Theme
	current *service.Notification
	seq     int
	width   int
}

// NewToastModel creates an empty toast.
func NewToastModel(theme themes.Theme) ToastModel {
	return ToastModel{theme: theme}
}

// Show displays n, replacing any visible toast, and schedules its dismissal.
func (m *ToastModel) Show(n service.Notification) tea.Cmd {
	m.seq++
	m.current = &n
	if n.Duration <= 0 {
		return nil
	}
	seq := m.seq
	return tea.Tick(n.Duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{seq: seq}
	})
}

// Update dismisses the toast when its timer fires. Timers from replaced
// toasts are ignored.
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	if expired, ok := msg.(ToastExpiredMsg); ok && expired.seq == m.seq {
		m.current = nil
	}
	return m, nil
}

// Dismiss hides the current toast. Its pending timer becomes stale.
func (m *ToastModel) Dismiss() {
	m.seq++
	m.current = nil
}

// Visible reports whether a toast is showing.
func (m ToastModel) Visible() bool {
	return m.current != nil
}

// Current returns the visible notification, if any.
func (m ToastModel) Current() (service.Notification, bool) {
	if m.current == nil {
		return service.Notification{}, false
	}
	return *m.current, true
}

// View renders the toast, or an empty string when hidden.
func (m ToastModel) View() string {
	if m.current == nil {
		return ""
	}

	var title lipgloss.Style
	var border lipgloss.Color
	switch m.current.Variant {
	case service.VariantError:
		title, border = m.theme.StatusError, m.theme.Error
	case service.VariantSuccess:
		title, border = m.theme.StatusSuccess, m.theme.Success
	default:
		title, border = m.theme.StatusInfo, m.theme.Info
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title.Render(m.current.Title),
		m.theme.Normal.Render(m.current.Message),
	)
	box := m.theme.RoundedBox.BorderForeground(border)
	if m.width > 4 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(content)
}

// Resize updates the maximum toast width.
func (m *ToastModel) Resize(width int) {
	m.width = width
}
