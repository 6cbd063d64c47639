package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/stretchr/testify/require"
)

// createTestStorage creates a migrated store backed by a temp file.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	}

	return store, cleanup
}

// createTestStorageWithProjects creates a store pre-seeded with projects.
func createTestStorageWithProjects(t *testing.T, projects ...*model.ProjectSnapshot) (*SQLiteStorage, func()) {
	t.Helper()

	store, cleanup := createTestStorage(t)
	ctx := context.Background()
	for _, p := range projects {
		require.NoError(t, store.SaveProject(ctx, p))
	}
	return store, cleanup
}

func testProject(id string) *model.ProjectSnapshot {
	return &model.ProjectSnapshot{
		ID:   id,
		Name: "욕실 리모델링",
		Contractor: &model.ContractorAccount{
			Name:          "Kim Construction",
			Phone:         "010-1234-5678",
			BillingStreet: "서울시 강남구 테헤란로 1",
			Description:   "김씨 인테리어",
		},
	}
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates nested directory", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "a", "b", "eval.db")
		store, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		require.Equal(t, dbPath, store.Path())
	})

	t.Run("in memory", func(t *testing.T) {
		store, err := NewSQLiteStorage(":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		require.NoError(t, store.Migrate(context.Background()))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("  ")
		require.ErrorIs(t, err, ErrEmptyString)
	})
}
