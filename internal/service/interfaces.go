// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/model"
)

// Backend is the record service behind the evaluation form.
type Backend interface {
	// FetchProject returns the project and its contractor display fields.
	FetchProject(ctx context.Context, projectID string) (*model.ProjectSnapshot, error)
	// SubmitEvaluation creates an evaluation record.
	SubmitEvaluation(ctx context.Context, payload model.SubmissionPayload) (*model.SubmissionResult, error)
}

// Variant is the severity of a notification.
type Variant string

// Notification variants.
const (
	VariantInfo    Variant = "info"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// Notification is a short, dismissible message shown to the user.
type Notification struct {
	Title    string
	Message  string
	Variant  Variant
	Duration time.Duration
}

// Notifier delivers notifications to whatever surface renders the form.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}
