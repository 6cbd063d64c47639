package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/contractor-evaluation/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidProject    = errors.New("invalid project")
	ErrInvalidEvaluation = errors.New("invalid evaluation")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateProject validates a project before it is saved.
func validateProject(project *model.ProjectSnapshot) error {
	if project == nil {
		return fmt.Errorf("%w: project", ErrNilParameter)
	}
	if strings.TrimSpace(project.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidProject)
	}
	return nil
}

// validateEvaluation validates a submission before it is stored.
func validateEvaluation(payload model.SubmissionPayload) error {
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvaluation, err)
	}
	return nil
}
