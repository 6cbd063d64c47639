package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/evaluation"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/service"
	"github.com/Veraticus/contractor-evaluation/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	project   *model.ProjectSnapshot
	fetchErr  error
	submitErr error
	submitted []model.SubmissionPayload
	mu        sync.Mutex
}

func (b *fakeBackend) FetchProject(_ context.Context, id string) (*model.ProjectSnapshot, error) {
	if b.fetchErr != nil {
		return nil, b.fetchErr
	}
	if b.project != nil {
		return b.project, nil
	}
	return &model.ProjectSnapshot{ID: id}, nil
}

func (b *fakeBackend) SubmitEvaluation(_ context.Context, p model.SubmissionPayload) (*model.SubmissionResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.submitErr != nil {
		return nil, b.submitErr
	}
	b.submitted = append(b.submitted, p)
	return &model.SubmissionResult{ID: "a0X1", Success: true}, nil
}

var _ service.Backend = (*fakeBackend)(nil)

func testProject() *model.ProjectSnapshot {
	return &model.ProjectSnapshot{
		ID:   "a01",
		Name: "욕실 리모델링",
		Contractor: &model.ContractorAccount{
			Name:          "Kim Construction",
			Phone:         "010-1234-5678",
			BillingStreet: "서울시 강남구",
			Description:   "김씨 인테리어",
		},
	}
}

func newTestModel(t *testing.T, backend *fakeBackend, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{WithProjectID("a01"), WithSize(100, 40), WithHelp(false)}, opts...)
	return New(context.Background(), backend, opts...)
}

// runUntil executes cmd, expanding batches, and returns the first message of type T.
func runUntil[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)

	found := make(chan T, 1)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, sub := range batch {
				go run(sub)
			}
			return
		}
		if typed, ok := msg.(T); ok {
			select {
			case found <- typed:
			default:
			}
		}
	}
	go run(cmd)

	select {
	case msg := <-found:
		return msg
	case <-time.After(2 * time.Second):
		var zero T
		t.Fatalf("no %T produced", zero)
		return zero
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func loadedModel(t *testing.T, backend *fakeBackend) Model {
	t.Helper()
	m := newTestModel(t, backend)
	msg := runUntil[projectLoadedMsg](t, m.Init())
	m, _ = update(t, m, msg)
	return m
}

func rateAll(t *testing.T, m Model, values map[model.Category]int) Model {
	t.Helper()
	for c, v := range values {
		m, _ = update(t, m, components.RatingChangedMsg{Category: c, Value: v})
	}
	return m
}

func TestModel_LoadShowsContractor(t *testing.T) {
	m := newTestModel(t, &fakeBackend{project: testProject()})
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), textLoading)

	msg := runUntil[projectLoadedMsg](t, m.Init())
	m, _ = update(t, m, msg)

	assert.False(t, m.loading)
	assert.True(t, m.loaded)
	view := m.View()
	assert.Contains(t, view, "김씨 인테리어")
	assert.Contains(t, view, "010-1234-5678")
	assert.Contains(t, view, "서울시 강남구")
	assert.Contains(t, view, "욕실 리모델링")
}

func TestModel_LoadFailureShowsToast(t *testing.T) {
	backend := &fakeBackend{fetchErr: &common.BackendError{Message: "Project not found"}}
	m := newTestModel(t, backend, WithToastDuration(time.Hour))

	msg := runUntil[projectLoadedMsg](t, m.Init())
	m, _ = update(t, m, msg)

	require.Error(t, m.lastError)
	assert.False(t, m.loaded)
	n, ok := m.toast.Current()
	require.True(t, ok)
	assert.Equal(t, service.VariantError, n.Variant)
	assert.Equal(t, evaluation.MessageLoadFailed+"Project not found", n.Message)
	assert.Contains(t, m.View(), model.NotAvailable)
}

func TestModel_NoProjectID(t *testing.T) {
	m := New(context.Background(), &fakeBackend{}, WithHelp(false))
	assert.Nil(t, m.Init())
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), textNoProject)
}

func TestModel_DefaultProjectIDUsed(t *testing.T) {
	m := New(context.Background(), &fakeBackend{}, WithDefaultProjectID("001gK00000CdBPhQAN"))
	assert.Equal(t, "001gK00000CdBPhQAN", m.form.ProjectID())
	assert.NotNil(t, m.Init())
}

func TestModel_RatingKeysUpdateForm(t *testing.T) {
	m := loadedModel(t, &fakeBackend{project: testProject()})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	msg := runUntil[components.RatingChangedMsg](t, cmd)
	m, _ = update(t, m, msg)

	assert.Equal(t, 4, m.form.Rating(model.CategoryWorkQuality))
	assert.Equal(t, [model.MaxStars]bool{true, true, true, true, false}, m.form.Stars(model.CategoryWorkQuality))
}

func TestModel_FocusCycle(t *testing.T) {
	m := loadedModel(t, &fakeBackend{project: testProject()})
	require.Equal(t, focusRatings, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusComments, m.focus)
	assert.False(t, m.ratings.Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, m.quitting, "q types into comments")
	assert.Equal(t, "q", m.form.Comments())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSubmit, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusRatings, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusSubmit, m.focus)
}

func TestModel_DownFromLastRatingFocusesComments(t *testing.T) {
	m := loadedModel(t, &fakeBackend{project: testProject()})
	for i := 0; i < model.NumCategories-1; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, focusRatings, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, focusComments, m.focus)
}

func TestModel_SubmitIncomplete(t *testing.T) {
	backend := &fakeBackend{project: testProject()}
	m := loadedModel(t, backend)
	m.toast = components.NewToastModel(m.theme)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.submitting)
	msg := runUntil[submittedMsg](t, cmd)
	m, _ = update(t, m, msg)

	assert.False(t, m.submitting)
	assert.ErrorIs(t, m.lastError, evaluation.ErrIncompleteRatings)
	assert.Empty(t, backend.submitted)
	n, ok := m.toast.Current()
	require.True(t, ok)
	assert.Equal(t, evaluation.TitleInputError, n.Title)
	assert.Equal(t, evaluation.MessageIncomplete, n.Message)
}

func TestModel_SubmitSuccessResetsForm(t *testing.T) {
	backend := &fakeBackend{project: testProject()}
	m := loadedModel(t, backend)
	m = rateAll(t, m, map[model.Category]int{
		model.CategoryWorkQuality:         5,
		model.CategoryFinishing:           4,
		model.CategoryCommunication:       3,
		model.CategoryServiceAttitude:     4,
		model.CategoryPricing:             3,
		model.CategoryOverallSatisfaction: 5,
	})
	assert.Contains(t, m.View(), textCostHintLabel)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("좋아요")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusSubmit, m.focus)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), textSubmitting)

	// A second press while the first is in flight is ignored.
	_, again := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)

	msg := runUntil[submittedMsg](t, cmd)
	m, _ = update(t, m, msg)

	require.NoError(t, m.lastError)
	require.Len(t, backend.submitted, 1)
	assert.Equal(t, model.SubmissionPayload{
		ProjectID:           "a01",
		Comments:            "좋아요",
		WorkQuality:         5,
		Timeliness:          4,
		Communication:       3,
		CostEffectiveness:   4,
		OverallSatisfaction: 5,
	}, backend.submitted[0])

	assert.Equal(t, 1, m.Submitted())
	assert.Equal(t, model.RatingSet{}, m.form.Ratings())
	assert.Empty(t, m.comments.Value())
	assert.Empty(t, m.form.Comments())
	n, ok := m.toast.Current()
	require.True(t, ok)
	assert.Equal(t, evaluation.TitleThanks, n.Title)
}

func TestModel_SubmitFailureKeepsState(t *testing.T) {
	backend := &fakeBackend{
		project:   testProject(),
		submitErr: &common.BackendError{Message: "Insert failed"},
	}
	m := loadedModel(t, backend)
	values := map[model.Category]int{
		model.CategoryWorkQuality:         2,
		model.CategoryFinishing:           2,
		model.CategoryCommunication:       2,
		model.CategoryServiceAttitude:     2,
		model.CategoryPricing:             2,
		model.CategoryOverallSatisfaction: 2,
	}
	m = rateAll(t, m, values)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	msg := runUntil[submittedMsg](t, cmd)
	m, _ = update(t, m, msg)

	require.Error(t, m.lastError)
	assert.Equal(t, 0, m.Submitted())
	for c, v := range values {
		assert.Equal(t, v, m.form.Rating(c))
	}
	n, ok := m.toast.Current()
	require.True(t, ok)
	assert.Equal(t, evaluation.MessageSubmitFail+"Insert failed", n.Message)
}

func TestModel_QuitKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyMsg
		focus focusArea
		quits bool
	}{
		{name: "q on ratings", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, focus: focusRatings, quits: true},
		{name: "esc on submit", key: tea.KeyMsg{Type: tea.KeyEsc}, focus: focusSubmit, quits: true},
		{name: "esc on comments returns to ratings", key: tea.KeyMsg{Type: tea.KeyEsc}, focus: focusComments, quits: false},
		{name: "ctrl+c anywhere", key: tea.KeyMsg{Type: tea.KeyCtrlC}, focus: focusComments, quits: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedModel(t, &fakeBackend{project: testProject()})
			m.setFocus(tt.focus)

			m, _ = update(t, m, tt.key)
			assert.Equal(t, tt.quits, m.quitting)
			if tt.quits {
				assert.Empty(t, m.View())
			}
		})
	}
}

func TestModel_EscDismissesToastBeforeQuitting(t *testing.T) {
	backend := &fakeBackend{fetchErr: &common.BackendError{Message: "Project not found"}}
	m := newTestModel(t, backend, WithToastDuration(time.Hour))
	msg := runUntil[projectLoadedMsg](t, m.Init())
	m, _ = update(t, m, msg)
	require.True(t, m.toast.Visible())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.toast.Visible())
	assert.False(t, m.quitting)
	assert.NotContains(t, m.View(), "Project not found")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.quitting)
}

func TestModel_BusyResultClearsSubmitting(t *testing.T) {
	m := loadedModel(t, &fakeBackend{project: testProject()})
	m.submitting = true

	m, cmd := update(t, m, submittedMsg{err: evaluation.ErrBusy})
	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.NotContains(t, m.View(), textSubmitting)
	assert.Equal(t, 0, m.Submitted())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.NotNil(t, cmd)
}

func TestModel_ReloadIgnoredWhileBusy(t *testing.T) {
	m := newTestModel(t, &fakeBackend{project: testProject()})
	require.True(t, m.loading)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, cmd)
}

func TestNotificationQueue_Drain(t *testing.T) {
	q := &notificationQueue{}
	q.Notify(service.Notification{Title: "a"})
	q.Notify(service.Notification{Title: "b"})

	items := q.drain()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Title)
	assert.Empty(t, q.drain())
}

func TestRun_RequiresBackend(t *testing.T) {
	err := Run(context.Background(), nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
