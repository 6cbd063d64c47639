package tui

import (
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/service"
)

// projectLoadedMsg reports the outcome of a project fetch.
type projectLoadedMsg struct {
	err           error
	notifications []service.Notification
}

// submittedMsg reports the outcome of a submission attempt.
type submittedMsg struct {
	err           error
	result        *model.SubmissionResult
	notifications []service.Notification
}

// focusArea identifies which part of the form receives keys.
type focusArea int

const (
	focusRatings focusArea = iota
	focusComments
	focusSubmit
	numFocusAreas
)
