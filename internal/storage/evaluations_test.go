package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload(projectID string) model.SubmissionPayload {
	return model.SubmissionPayload{
		ProjectID:           projectID,
		Comments:            "깔끔했습니다",
		WorkQuality:         5,
		Timeliness:          4,
		Communication:       3,
		CostEffectiveness:   4,
		OverallSatisfaction: 5,
	}
}

func TestSubmitEvaluation_Stores(t *testing.T) {
	store, cleanup := createTestStorageWithProjects(t, testProject("a01"))
	defer cleanup()
	ctx := context.Background()

	result, err := store.SubmitEvaluation(ctx, validPayload("a01"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.SubmittedAt.IsZero())

	evaluations, err := store.ListEvaluations(ctx, "a01")
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	assert.Equal(t, result.ID, evaluations[0].ID)
	assert.Equal(t, validPayload("a01"), evaluations[0].SubmissionPayload)
}

func TestSubmitEvaluation_UnknownProject(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.SubmitEvaluation(context.Background(), validPayload("nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, common.MessageOf(err), "nope")
}

func TestSubmitEvaluation_InvalidPayload(t *testing.T) {
	store, cleanup := createTestStorageWithProjects(t, testProject("a01"))
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.SubmissionPayload)
		name   string
	}{
		{name: "missing project id", mutate: func(p *model.SubmissionPayload) { p.ProjectID = "" }},
		{name: "zero rating", mutate: func(p *model.SubmissionPayload) { p.WorkQuality = 0 }},
		{name: "rating above five", mutate: func(p *model.SubmissionPayload) { p.OverallSatisfaction = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload("a01")
			tt.mutate(&payload)

			_, err := store.SubmitEvaluation(ctx, payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEvaluation)
			assert.NotEmpty(t, common.MessageOf(err))
		})
	}

	evaluations, err := store.ListEvaluations(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, evaluations)
}

func TestListEvaluations_FilterByProject(t *testing.T) {
	store, cleanup := createTestStorageWithProjects(t, testProject("a01"), testProject("a02"))
	defer cleanup()
	ctx := context.Background()

	for _, id := range []string{"a01", "a01", "a02"} {
		_, err := store.SubmitEvaluation(ctx, validPayload(id))
		require.NoError(t, err)
	}

	all, err := store.ListEvaluations(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	first, err := store.ListEvaluations(ctx, "a01")
	require.NoError(t, err)
	assert.Len(t, first, 2)

	none, err := store.ListEvaluations(ctx, "a03")
	require.NoError(t, err)
	assert.Empty(t, none)
}
