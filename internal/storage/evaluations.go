package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/rs/xid"
)

// Messages returned to the form when the local backend rejects a request.
const (
	msgProjectNotFound   = "프로젝트를 찾을 수 없습니다: "
	msgInvalidEvaluation = "평가 항목 값이 올바르지 않습니다"
)

// FetchProject implements service.Backend.
func (s *SQLiteStorage) FetchProject(ctx context.Context, projectID string) (*model.ProjectSnapshot, error) {
	project, err := s.GetProject(ctx, projectID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, &common.BackendError{Message: msgProjectNotFound + projectID, Err: err}
	}
	return project, err
}

// SubmitEvaluation implements service.Backend.
func (s *SQLiteStorage) SubmitEvaluation(ctx context.Context, payload model.SubmissionPayload) (*model.SubmissionResult, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateEvaluation(payload); err != nil {
		return nil, &common.BackendError{Message: msgInvalidEvaluation, Err: err}
	}

	if _, err := s.GetProject(ctx, payload.ProjectID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, &common.BackendError{Message: msgProjectNotFound + payload.ProjectID, Err: err}
		}
		return nil, err
	}

	id := xid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations (
			id, project_id, work_quality, timeliness, communication,
			cost_effectiveness, overall_satisfaction, comments, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, payload.ProjectID, payload.WorkQuality, payload.Timeliness, payload.Communication,
		payload.CostEffectiveness, payload.OverallSatisfaction, payload.Comments, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	return &model.SubmissionResult{
		ID:          id,
		Success:     true,
		SubmittedAt: now,
	}, nil
}

// ListEvaluations returns evaluations, newest first. An empty projectID
// lists every project.
func (s *SQLiteStorage) ListEvaluations(ctx context.Context, projectID string) ([]model.Evaluation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, project_id, work_quality, timeliness, communication,
			cost_effectiveness, overall_satisfaction, comments, created_at
		FROM evaluations`
	var args []any
	if projectID != "" {
		query += ` WHERE project_id = ?`
		args = append(args, projectID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var evaluations []model.Evaluation
	for rows.Next() {
		var e model.Evaluation
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.WorkQuality, &e.Timeliness, &e.Communication,
			&e.CostEffectiveness, &e.OverallSatisfaction, &e.Comments, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, rows.Err()
}
