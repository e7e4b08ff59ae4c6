// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/taafevision/taafe-go/internal/model"
)

const projectColumns = "id, title, description, image_url, date, is_hidden"

// CreateProjectParams holds the fields for a new project.
type CreateProjectParams struct {
	Title       string
	Description string
	ImageURL    string
	Date        *string
	IsHidden    bool
}

// UpdateProjectParams replaces every mutable column. Callers merge
// partial updates into the current row before calling UpdateProject.
type UpdateProjectParams struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Date        *string
	IsHidden    bool
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (model.Project, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, description, image_url, date, is_hidden)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+projectColumns,
		arg.Title, arg.Description, arg.ImageURL, arg.Date, arg.IsHidden)
	return scanProject(row)
}

func (q *Queries) GetProjectByID(ctx context.Context, id int64) (model.Project, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// ListProjects returns all projects in insertion order, hidden included.
// Visibility filtering is the caller's concern.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (model.Project, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, image_url = ?, date = ?, is_hidden = ?
		WHERE id = ?
		RETURNING `+projectColumns,
		arg.Title, arg.Description, arg.ImageURL, arg.Date, arg.IsHidden, arg.ID)
	return scanProject(row)
}

// DeleteProject removes a project. Deleting a missing id is not an error.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

func (q *Queries) CountProjects(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Date, &p.IsHidden)
	return p, err
}
