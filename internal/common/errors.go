// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Backend errors.
	ErrNotFound       = errors.New("not found")
	ErrBackendFailure = errors.New("backend request failed")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// BackendError is returned by a backend that rejected a request. Message is
// the server-supplied explanation and may be empty.
type BackendError struct {
	Err        error
	Message    string
	Code       string
	StatusCode int
}

func (e *BackendError) Error() string {
	var b strings.Builder
	b.WriteString("backend error")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (%d)", e.StatusCode)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " %s", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *BackendError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrBackendFailure
}

// MessageOf returns the backend-supplied message carried by err, or "" when
// there is none.
func MessageOf(err error) string {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return strings.TrimSpace(backendErr.Message)
	}
	return ""
}
