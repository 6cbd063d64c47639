package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SubmissionPayload is the record sent to the backend. The finishing rating
// travels as "timeliness" because that is the backend field name.
type SubmissionPayload struct {
	ProjectID           string `json:"projectId" validate:"required"`
	Comments            string `json:"comments"`
	WorkQuality         int    `json:"workQuality" validate:"min=1,max=5"`
	Timeliness          int    `json:"timeliness" validate:"min=1,max=5"`
	Communication       int    `json:"communication" validate:"min=1,max=5"`
	CostEffectiveness   int    `json:"costEffectiveness" validate:"min=1,max=5"`
	OverallSatisfaction int    `json:"overallSatisfaction" validate:"min=1,max=5"`
}

// NewSubmissionPayload maps a rating set onto the backend schema.
func NewSubmissionPayload(projectID string, ratings RatingSet, comments string) SubmissionPayload {
	return SubmissionPayload{
		ProjectID:           projectID,
		WorkQuality:         ratings[CategoryWorkQuality],
		Timeliness:          ratings[CategoryFinishing],
		Communication:       ratings[CategoryCommunication],
		CostEffectiveness:   ratings.CostEffectiveness(),
		OverallSatisfaction: ratings[CategoryOverallSatisfaction],
		Comments:            comments,
	}
}

var payloadValidator = validator.New()

// Validate checks field ranges before the payload is sent or stored.
func (p SubmissionPayload) Validate() error {
	return payloadValidator.Struct(p)
}

// SubmissionResult is what the backend reports after creating the record.
type SubmissionResult struct {
	SubmittedAt time.Time `json:"-"`
	ID          string    `json:"id"`
	Success     bool      `json:"success"`
}

// Evaluation is a stored evaluation record.
type Evaluation struct {
	CreatedAt time.Time
	ID        string
	SubmissionPayload
}
