// Package testutil provides test utilities backed by a real SQLite store.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/contractor-evaluation/internal/model"
	"github.com/Veraticus/contractor-evaluation/internal/storage"
	"github.com/Veraticus/contractor-evaluation/internal/testutil/projects"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage  *storage.SQLiteStorage
	t        *testing.T
	Projects projects.Projects
}

// SetupTestDB creates a migrated in-memory database seeded by the builder
// configuration. Cleanup is registered on t.
//
// Example:
//
//	db := testutil.SetupTestDB(t, func(b projects.Builder) projects.Builder {
//		return b.WithFixture(projects.FixtureBasic)
//	})
func SetupTestDB(t *testing.T, configure func(projects.Builder) projects.Builder) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	builder := projects.NewBuilder(t)
	if configure != nil {
		builder = configure(builder)
	}

	seeded, err := builder.Build(ctx, store)
	if err != nil {
		t.Fatalf("failed to seed projects: %v", err)
	}

	return &TestDB{
		Storage:  store,
		Projects: seeded,
		t:        t,
	}
}

// MustProject returns the seeded project with id or fails the test.
func (db *TestDB) MustProject(id string) *model.ProjectSnapshot {
	db.t.Helper()
	return db.Projects.MustFind(db.t, id)
}

// Evaluations lists stored evaluations for a project or fails the test.
func (db *TestDB) Evaluations(projectID string) []model.Evaluation {
	db.t.Helper()
	evaluations, err := db.Storage.ListEvaluations(context.Background(), projectID)
	if err != nil {
		db.t.Fatalf("failed to list evaluations: %v", err)
	}
	return evaluations
}
