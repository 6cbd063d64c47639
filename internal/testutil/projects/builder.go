// Package projects provides a fluent builder for seeding test projects.
package projects

import (
	"context"
	"fmt"
	"testing"

	"github.com/Veraticus/contractor-evaluation/internal/model"
)

// Saver stores projects.
type Saver interface {
	SaveProject(ctx context.Context, project *model.ProjectSnapshot) error
}

// Builder accumulates projects to seed.
type Builder interface {
	// WithProject adds a single project.
	WithProject(p *model.ProjectSnapshot) Builder

	// WithFixture adds every project in a predefined fixture.
	WithFixture(f Fixture) Builder

	// Build saves the projects and returns them.
	Build(ctx context.Context, store Saver) (Projects, error)
}

// Projects is a list of seeded projects.
type Projects []*model.ProjectSnapshot

// MustFind returns the project with id or fails the test.
func (ps Projects) MustFind(t *testing.T, id string) *model.ProjectSnapshot {
	t.Helper()
	for _, p := range ps {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("project %q not seeded", id)
	return nil
}

type builder struct {
	t        *testing.T
	seen     map[string]bool
	projects Projects
}

// NewBuilder returns an empty builder.
func NewBuilder(t *testing.T) Builder {
	return &builder{t: t, seen: make(map[string]bool)}
}

func (b *builder) WithProject(p *model.ProjectSnapshot) Builder {
	if p == nil {
		b.t.Fatalf("nil project")
	}
	if b.seen[p.ID] {
		b.t.Fatalf("project %q added twice", p.ID)
	}
	b.seen[p.ID] = true
	b.projects = append(b.projects, p)
	return b
}

func (b *builder) WithFixture(f Fixture) Builder {
	for _, p := range f.Projects() {
		b.WithProject(p)
	}
	return b
}

func (b *builder) Build(ctx context.Context, store Saver) (Projects, error) {
	for _, p := range b.projects {
		if err := store.SaveProject(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to save project %s: %w", p.ID, err)
		}
	}
	return b.projects, nil
}
