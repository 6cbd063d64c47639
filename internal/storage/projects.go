package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/model"
)

// SaveProject inserts or replaces a project and its contractor fields.
func (s *SQLiteStorage) SaveProject(ctx context.Context, project *model.ProjectSnapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProject(project); err != nil {
		return err
	}

	var contractor model.ContractorAccount
	if project.Contractor != nil {
		contractor = *project.Contractor
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, contractor_name, contractor_phone, contractor_street, contractor_description)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			contractor_name = excluded.contractor_name,
			contractor_phone = excluded.contractor_phone,
			contractor_street = excluded.contractor_street,
			contractor_description = excluded.contractor_description`,
		project.ID, project.Name,
		contractor.Name, contractor.Phone, contractor.BillingStreet, contractor.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// GetProject returns a project by id, or common.ErrNotFound.
func (s *SQLiteStorage) GetProject(ctx context.Context, id string) (*model.ProjectSnapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, contractor_name, contractor_phone, contractor_street, contractor_description
		FROM projects WHERE id = ?`, id)

	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects returns all projects ordered by id.
func (s *SQLiteStorage) ListProjects(ctx context.Context) ([]model.ProjectSnapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, contractor_name, contractor_phone, contractor_street, contractor_description
		FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []model.ProjectSnapshot
	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan project: %w", scanErr)
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*model.ProjectSnapshot, error) {
	var (
		project    model.ProjectSnapshot
		contractor model.ContractorAccount
	)
	if err := row.Scan(
		&project.ID, &project.Name,
		&contractor.Name, &contractor.Phone, &contractor.BillingStreet, &contractor.Description,
	); err != nil {
		return nil, err
	}
	if contractor != (model.ContractorAccount{}) {
		project.Contractor = &contractor
	}
	return &project, nil
}
