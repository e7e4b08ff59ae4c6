// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/taafevision/taafe-go/internal/model"
)

const articleColumns = "id, title, content, image_url, category, source_url, created_at, is_hidden"

// CreateArticleParams holds the fields for a new article.
type CreateArticleParams struct {
	Title     string
	Content   string
	ImageURL  *string
	Category  string
	SourceURL *string
	CreatedAt time.Time
	IsHidden  bool
}

// UpdateArticleParams replaces every mutable column except created_at.
type UpdateArticleParams struct {
	ID        int64
	Title     string
	Content   string
	ImageURL  *string
	Category  string
	SourceURL *string
	IsHidden  bool
}

func (q *Queries) CreateArticle(ctx context.Context, arg CreateArticleParams) (model.Article, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO articles (title, content, image_url, category, source_url, created_at, is_hidden)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+articleColumns,
		arg.Title, arg.Content, arg.ImageURL, arg.Category, arg.SourceURL, arg.CreatedAt, arg.IsHidden)
	return scanArticle(row)
}

func (q *Queries) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

// ListArticles returns all articles newest first, hidden included.
func (q *Queries) ListArticles(ctx context.Context) ([]model.Article, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+articleColumns+` FROM articles ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (q *Queries) UpdateArticle(ctx context.Context, arg UpdateArticleParams) (model.Article, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE articles
		SET title = ?, content = ?, image_url = ?, category = ?, source_url = ?, is_hidden = ?
		WHERE id = ?
		RETURNING `+articleColumns,
		arg.Title, arg.Content, arg.ImageURL, arg.Category, arg.SourceURL, arg.IsHidden, arg.ID)
	return scanArticle(row)
}

// DeleteArticle removes an article. Deleting a missing id is not an error.
func (q *Queries) DeleteArticle(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	return err
}

func (q *Queries) CountArticles(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n)
	return n, err
}

func scanArticle(row rowScanner) (model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.ImageURL, &a.Category,
		&a.SourceURL, &a.CreatedAt, &a.IsHidden)
	return a, err
}
