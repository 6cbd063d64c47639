// Package tui renders the contractor evaluation form in the terminal.
package tui

import (
	"context"
	"errors"

	"github.com/Veraticus/contractor-evaluation/internal/evaluation"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/service"
	"github.com/Veraticus/contractor-evaluation/internal/tui/components"
	"github.com/Veraticus/contractor-evaluation/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	lastError  error
	form       *evaluation.Form
	queue      *notificationQueue
	result     *model.SubmissionResult
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	comments   textarea.Model
	spinner    spinner.Model
	ratings    components.RatingListModel
	toast      components.ToastModel
	config     Config
	focus      focusArea
	submitted  int
	width      int
	height     int
	loading    bool
	submitting bool
	loaded     bool
	quitting   bool
}

// New builds the form model against backend.
func New(ctx context.Context, backend service.Backend, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	queue := &notificationQueue{}
	form := evaluation.New(backend,
		evaluation.WithProjectID(cfg.ProjectID),
		evaluation.WithDefaultProjectID(cfg.DefaultProjectID),
		evaluation.WithNotifier(queue),
		evaluation.WithToastDuration(cfg.ToastDuration),
	)
	return newModel(ctx, form, queue, cfg)
}

// newModel creates a model around an existing form.
func newModel(ctx context.Context, form *evaluation.Form, queue *notificationQueue, cfg Config) Model {
	comments := textarea.New()
	comments.Placeholder = "추가 의견을 입력해주세요"
	comments.ShowLineNumbers = false
	comments.CharLimit = 2000
	comments.SetHeight(4)
	comments.SetWidth(cfg.Width - 8)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:      ctx,
		form:     form,
		queue:    queue,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		comments: comments,
		spinner:  s,
		ratings:  components.NewRatingListModel(cfg.Theme),
		toast:    components.NewToastModel(cfg.Theme),
		config:   cfg,
		focus:    focusRatings,
		width:    cfg.Width,
		height:   cfg.Height,
		loading:  form.HasValidProjectID(),
	}
	m.ratings.SetRatings(form.Ratings())
	return m
}

// Init starts loading the project when an id is available.
func (m Model) Init() tea.Cmd {
	if !m.form.HasValidProjectID() {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadProject())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case components.RatingChangedMsg:
		if err := m.form.Rate(msg.Category, msg.Value); err != nil {
			m.lastError = err
		}
		m.ratings.SetRatings(m.form.Ratings())

	case projectLoadedMsg:
		m.loading = false
		m.lastError = msg.err
		m.loaded = msg.err == nil
		cmds = append(cmds, m.showNotifications(msg.notifications))

	case submittedMsg:
		m.submitting = false
		if errors.Is(msg.err, evaluation.ErrBusy) {
			return m, nil
		}
		m.lastError = msg.err
		if msg.err == nil {
			m.result = msg.result
			m.submitted++
			m.comments.Reset()
		}
		m.ratings.SetRatings(m.form.Ratings())
		cmds = append(cmds, m.showNotifications(msg.notifications))

	case components.ToastExpiredMsg:
		m.toast, _ = m.toast.Update(msg)

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if m.focus == focusComments {
			var cmd tea.Cmd
			m.comments, cmd = m.comments.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes key presses by focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Dismiss) && m.toast.Visible():
		m.toast.Dismiss()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m.startSubmit()

	case key.Matches(msg, m.keymap.Reload):
		if m.busy() || !m.form.HasValidProjectID() {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadProject())

	case key.Matches(msg, m.keymap.NextField):
		return m, m.setFocus((m.focus + 1) % numFocusAreas)

	case key.Matches(msg, m.keymap.PrevField):
		return m, m.setFocus((m.focus + numFocusAreas - 1) % numFocusAreas)
	}

	switch m.focus {
	case focusComments:
		if msg.Type == tea.KeyEsc {
			return m, m.setFocus(focusRatings)
		}
		var cmd tea.Cmd
		m.comments, cmd = m.comments.Update(msg)
		m.form.SetComments(m.comments.Value())
		return m, cmd

	case focusSubmit:
		switch {
		case key.Matches(msg, m.keymap.Press):
			return m.startSubmit()
		case key.Matches(msg, m.keymap.Up):
			return m, m.setFocus(focusComments)
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	default:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Down) && m.ratings.AtBottom():
			return m, m.setFocus(focusComments)
		}
		var cmd tea.Cmd
		m.ratings, cmd = m.ratings.Update(msg)
		return m, cmd
	}
}

// startSubmit dispatches a submission unless one is already running.
func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	if m.busy() {
		return m, nil
	}
	m.submitting = true
	return m, tea.Batch(m.submitEvaluation(), m.spinner.Tick)
}

// busy reports whether a backend call is in flight.
func (m Model) busy() bool {
	return m.loading || m.submitting
}

// setFocus moves keyboard focus to area.
func (m *Model) setFocus(area focusArea) tea.Cmd {
	m.focus = area
	m.ratings.Blur()
	m.comments.Blur()

	switch area {
	case focusRatings:
		m.ratings.Focus()
	case focusComments:
		return m.comments.Focus()
	}
	return nil
}

// showNotifications surfaces notifications as toasts; the last one wins.
func (m *Model) showNotifications(notes []service.Notification) tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range notes {
		cmds = append(cmds, m.toast.Show(n))
	}
	return tea.Batch(cmds...)
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	inner := m.width - 8
	if inner < 20 {
		inner = 20
	}
	m.comments.SetWidth(inner)
	m.ratings.Resize(inner)
	m.toast.Resize(inner)
	m.help.Width = m.width
}

// Submitted returns the number of evaluations submitted in this session.
func (m Model) Submitted() int {
	return m.submitted
}
