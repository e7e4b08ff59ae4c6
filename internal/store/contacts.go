// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/taafevision/taafe-go/internal/model"
)

const contactColumns = "id, name, email, message, created_at"

// CreateContactParams holds the fields for an inbound contact message.
type CreateContactParams struct {
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (model.Contact, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO contacts (name, email, message, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+contactColumns,
		arg.Name, arg.Email, arg.Message, arg.CreatedAt)
	return scanContact(row)
}

// ListContacts returns all contact messages newest first.
func (q *Queries) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (q *Queries) CountContacts(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	return n, err
}

func scanContact(row rowScanner) (model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt)
	return c, err
}
