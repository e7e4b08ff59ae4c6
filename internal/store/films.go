// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/taafevision/taafe-go/internal/model"
)

const filmColumns = "id, title, director, synopsis, year, image_url, video_url, is_hidden"

// CreateFilmParams holds the fields for a new film.
type CreateFilmParams struct {
	Title    string
	Director string
	Synopsis string
	Year     int64
	ImageURL string
	VideoURL *string
	IsHidden bool
}

// UpdateFilmParams replaces every mutable column. Callers merge
// partial updates into the current row before calling UpdateFilm.
type UpdateFilmParams struct {
	ID       int64
	Title    string
	Director string
	Synopsis string
	Year     int64
	ImageURL string
	VideoURL *string
	IsHidden bool
}

func (q *Queries) CreateFilm(ctx context.Context, arg CreateFilmParams) (model.Film, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO films (title, director, synopsis, year, image_url, video_url, is_hidden)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+filmColumns,
		arg.Title, arg.Director, arg.Synopsis, arg.Year, arg.ImageURL, arg.VideoURL, arg.IsHidden)
	return scanFilm(row)
}

func (q *Queries) GetFilmByID(ctx context.Context, id int64) (model.Film, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+filmColumns+` FROM films WHERE id = ?`, id)
	return scanFilm(row)
}

// ListFilms returns all films in insertion order, hidden included.
func (q *Queries) ListFilms(ctx context.Context) ([]model.Film, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+filmColumns+` FROM films ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	films := []model.Film{}
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, f)
	}
	return films, rows.Err()
}

func (q *Queries) UpdateFilm(ctx context.Context, arg UpdateFilmParams) (model.Film, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE films
		SET title = ?, director = ?, synopsis = ?, year = ?, image_url = ?, video_url = ?, is_hidden = ?
		WHERE id = ?
		RETURNING `+filmColumns,
		arg.Title, arg.Director, arg.Synopsis, arg.Year, arg.ImageURL, arg.VideoURL, arg.IsHidden, arg.ID)
	return scanFilm(row)
}

// DeleteFilm removes a film. Deleting a missing id is not an error.
func (q *Queries) DeleteFilm(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM films WHERE id = ?`, id)
	return err
}

func (q *Queries) CountFilms(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM films`).Scan(&n)
	return n, err
}

func scanFilm(row rowScanner) (model.Film, error) {
	var f model.Film
	err := row.Scan(&f.ID, &f.Title, &f.Director, &f.Synopsis, &f.Year,
		&f.ImageURL, &f.VideoURL, &f.IsHidden)
	return f, err
}
