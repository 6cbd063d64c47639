package evaluation_test

import (
	"context"
	"testing"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/evaluation"
	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/service"
	"github.com/Veraticus/contractor-evaluation/internal/testutil"
	"github.com/Veraticus/contractor-evaluation/internal/testutil/projects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDB(t *testing.T) *testutil.TestDB {
	t.Helper()
	return testutil.SetupTestDB(t, func(b projects.Builder) projects.Builder {
		return b.WithFixture(projects.FixtureBasic).WithFixture(projects.FixtureEdgeCases)
	})
}

func TestForm_LocalBackend_RoundTrip(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	var notes []service.Notification
	form := evaluation.New(db.Storage,
		evaluation.WithProjectID(projects.ProjectComplete),
		evaluation.WithNotifier(service.NotifierFunc(func(n service.Notification) { notes = append(notes, n) })),
	)
	require.NoError(t, form.Load(ctx))
	assert.Equal(t, "김씨 인테리어", form.ContractorInfo())
	assert.Equal(t, "010-1234-5678", form.ContractorPhone())

	for c, v := range map[model.Category]int{
		model.CategoryWorkQuality:         4,
		model.CategoryFinishing:           5,
		model.CategoryTimeManagement:      1,
		model.CategoryCommunication:       4,
		model.CategoryServiceAttitude:     5,
		model.CategoryPricing:             4,
		model.CategoryOverallSatisfaction: 4,
	} {
		require.NoError(t, form.Rate(c, v))
	}
	form.SetComments("다음에도 맡기겠습니다")

	result, err := form.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, result.Success)

	stored := db.Evaluations(projects.ProjectComplete)
	require.Len(t, stored, 1)
	assert.Equal(t, result.ID, stored[0].ID)
	assert.Equal(t, 5, stored[0].Timeliness)
	assert.Equal(t, 5, stored[0].CostEffectiveness)
	assert.Equal(t, "다음에도 맡기겠습니다", stored[0].Comments)

	require.NotEmpty(t, notes)
	assert.Equal(t, evaluation.MessageSubmitted, notes[len(notes)-1].Message)
}

func TestForm_LocalBackend_ContractorFallbacks(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	tests := []struct {
		id        string
		wantName  string
		wantPhone string
	}{
		{id: projects.ProjectNoContractor, wantName: model.NotAvailable, wantPhone: model.NotAvailable},
		{id: projects.ProjectNameOnly, wantName: "Lee Windows", wantPhone: model.NotAvailable},
		{id: projects.ProjectBlankVendorID, wantName: "Choi Flooring", wantPhone: model.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			form := evaluation.New(db.Storage, evaluation.WithProjectID(tt.id))
			require.NoError(t, form.Load(ctx))
			assert.Equal(t, tt.wantName, form.ContractorInfo())
			assert.Equal(t, tt.wantPhone, form.ContractorPhone())
		})
	}
}

func TestForm_LocalBackend_UnknownProject(t *testing.T) {
	db := seededDB(t)

	var notes []service.Notification
	form := evaluation.New(db.Storage,
		evaluation.WithProjectID("nope"),
		evaluation.WithNotifier(service.NotifierFunc(func(n service.Notification) { notes = append(notes, n) })),
	)

	err := form.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "nope")
}
