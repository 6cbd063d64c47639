// Package evaluation implements the contractor evaluation form: it loads the
// project being evaluated, collects star ratings and comments, and submits the
// result to the backend.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/service"
	"github.com/samber/lo"
)

// Form errors.
var (
	ErrBusy              = errors.New("a request is already in flight")
	ErrNoProjectID       = errors.New("no project id configured")
	ErrIncompleteRatings = errors.New("required ratings are missing")
)

// DefaultToastDuration is how long notifications stay on screen.
const DefaultToastDuration = 200 * time.Millisecond

// Form holds the state of one evaluation session. It is safe for concurrent
// use; remote calls run without the lock held.
type Form struct {
	backend       service.Backend
	notifier      service.Notifier
	project       *model.ProjectSnapshot
	projectID     string
	comments      string
	toastDuration time.Duration
	ratings       model.RatingSet
	mu            sync.Mutex
	loading       bool
}

// Option configures a Form.
type Option func(*options)

type options struct {
	notifier         service.Notifier
	projectID        string
	defaultProjectID string
	toastDuration    time.Duration
}

// WithProjectID sets the project being evaluated.
func WithProjectID(id string) Option {
	return func(o *options) {
		o.projectID = id
	}
}

// WithDefaultProjectID sets the project used when no project id is given.
func WithDefaultProjectID(id string) Option {
	return func(o *options) {
		o.defaultProjectID = id
	}
}

// WithNotifier sets where notifications are delivered.
func WithNotifier(n service.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithToastDuration sets the auto-dismiss duration of notifications.
func WithToastDuration(d time.Duration) Option {
	return func(o *options) {
		o.toastDuration = d
	}
}

// New creates a form bound to backend.
func New(backend service.Backend, opts ...Option) *Form {
	o := options{toastDuration: DefaultToastDuration}
	for _, opt := range opts {
		opt(&o)
	}
	if o.notifier == nil {
		o.notifier = service.NotifierFunc(func(service.Notification) {})
	}

	return &Form{
		backend:       backend,
		notifier:      o.notifier,
		projectID:     resolveProjectID(o.projectID, o.defaultProjectID),
		toastDuration: o.toastDuration,
	}
}

func resolveProjectID(id, fallback string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return strings.TrimSpace(fallback)
}

// ProjectID returns the resolved project id.
func (f *Form) ProjectID() string {
	return f.projectID
}

// HasValidProjectID reports whether a project id was resolved.
func (f *Form) HasValidProjectID() bool {
	return f.projectID != ""
}

// Loading reports whether a remote call is in flight.
func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// begin marks the form as loading, failing with ErrBusy if it already is.
func (f *Form) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return ErrBusy
	}
	f.loading = true
	return nil
}

func (f *Form) end() {
	f.mu.Lock()
	f.loading = false
	f.mu.Unlock()
}

// Load fetches the project snapshot. Failures are reported through the
// notifier and returned; the form stays usable either way.
func (f *Form) Load(ctx context.Context) error {
	if !f.HasValidProjectID() {
		return ErrNoProjectID
	}
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	slog.Debug("Loading project data", "project_id", f.projectID)

	project, err := f.backend.FetchProject(ctx, f.projectID)
	if err != nil {
		slog.Error("Failed to load project data",
			"project_id", f.projectID,
			"backend_message", common.MessageOf(err),
			"error", err)
		f.notify(service.VariantError, TitleError, MessageLoadFailed+failureDetail(err))
		return fmt.Errorf("failed to load project %s: %w", f.projectID, err)
	}

	f.mu.Lock()
	f.project = project
	f.mu.Unlock()

	slog.Info("Project data loaded", "project_id", f.projectID, "contractor", project.ContractorName())
	return nil
}

// Rate records a star rating for category c.
func (f *Form) Rate(c model.Category, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ratings.Set(c, value)
}

// Rating returns the current value for c; 0 means unrated.
func (f *Form) Rating(c model.Category) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ratings.Get(c)
}

// Ratings returns a copy of all ratings.
func (f *Form) Ratings() model.RatingSet {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ratings
}

// Stars returns which stars in c's row are selected.
func (f *Form) Stars(c model.Category) [model.MaxStars]bool {
	return model.Stars(f.Rating(c))
}

// SetComments replaces the free-text comments.
func (f *Form) SetComments(text string) {
	f.mu.Lock()
	f.comments = text
	f.mu.Unlock()
}

// Comments returns the current comments.
func (f *Form) Comments() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comments
}

// Validate checks that every required category has been rated.
func (f *Form) Validate() error {
	f.mu.Lock()
	missing := f.ratings.Missing()
	f.mu.Unlock()

	if len(missing) == 0 {
		return nil
	}
	keys := lo.Map(missing, func(c model.Category, _ int) string { return c.String() })
	return fmt.Errorf("%w: %s", ErrIncompleteRatings, strings.Join(keys, ", "))
}

// Payload builds the submission payload from the current state.
func (f *Form) Payload() model.SubmissionPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return model.NewSubmissionPayload(f.projectID, f.ratings, f.comments)
}

// Submit validates the form and sends the evaluation. A call made while
// another request is in flight returns ErrBusy without side effects. On
// success the form is reset.
func (f *Form) Submit(ctx context.Context) (*model.SubmissionResult, error) {
	if f.Loading() {
		slog.Debug("Ignoring submit while a request is in flight")
		return nil, ErrBusy
	}

	if err := f.Validate(); err != nil {
		slog.Debug("Evaluation incomplete", "error", err)
		f.notify(service.VariantError, TitleInputError, MessageIncomplete)
		return nil, err
	}

	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	payload := f.Payload()
	slog.Debug("Submitting evaluation",
		"project_id", payload.ProjectID,
		"work_quality", payload.WorkQuality,
		"timeliness", payload.Timeliness,
		"communication", payload.Communication,
		"cost_effectiveness", payload.CostEffectiveness,
		"overall_satisfaction", payload.OverallSatisfaction)

	result, err := f.backend.SubmitEvaluation(ctx, payload)
	if err != nil {
		slog.Error("Failed to submit evaluation",
			"project_id", payload.ProjectID,
			"backend_message", common.MessageOf(err),
			"error", err)
		f.notify(service.VariantError, TitleError, MessageSubmitFail+failureDetail(err))
		return nil, fmt.Errorf("failed to submit evaluation: %w", err)
	}

	f.notify(service.VariantSuccess, TitleThanks, MessageSubmitted)
	f.Reset()

	if result == nil {
		result = &model.SubmissionResult{Success: true}
	}
	if result.SubmittedAt.IsZero() {
		result.SubmittedAt = time.Now()
	}
	slog.Info("Evaluation submitted", "project_id", payload.ProjectID, "record_id", result.ID)
	return result, nil
}

// Reset clears all ratings and comments.
func (f *Form) Reset() {
	f.mu.Lock()
	f.ratings.Reset()
	f.comments = ""
	f.mu.Unlock()
}

// Project returns the loaded snapshot, or nil before a successful Load.
func (f *Form) Project() *model.ProjectSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.project
}

// ContractorInfo returns the contractor display name.
func (f *Form) ContractorInfo() string {
	return f.Project().ContractorName()
}

// ContractorPhone returns the contractor phone number.
func (f *Form) ContractorPhone() string {
	return f.Project().ContractorPhone()
}

// ContractorAddress returns the contractor address.
func (f *Form) ContractorAddress() string {
	return f.Project().ContractorAddress()
}

func (f *Form) notify(variant service.Variant, title, message string) {
	f.notifier.Notify(service.Notification{
		Variant:  variant,
		Title:    title,
		Message:  message,
		Duration: f.toastDuration,
	})
}

func failureDetail(err error) string {
	if msg := common.MessageOf(err); msg != "" {
		return msg
	}
	return MessageUnknown
}
