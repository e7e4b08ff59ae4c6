// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/taafevision/taafe-go/internal/model"
)

const partnerColumns = "id, name, logo_url, website"

// CreatePartnerParams holds the fields for a new partner.
type CreatePartnerParams struct {
	Name    string
	LogoURL string
	Website *string
}

func (q *Queries) CreatePartner(ctx context.Context, arg CreatePartnerParams) (model.Partner, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO partners (name, logo_url, website)
		VALUES (?, ?, ?)
		RETURNING `+partnerColumns,
		arg.Name, arg.LogoURL, arg.Website)
	return scanPartner(row)
}

func (q *Queries) GetPartnerByID(ctx context.Context, id int64) (model.Partner, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+partnerColumns+` FROM partners WHERE id = ?`, id)
	return scanPartner(row)
}

// ListPartners returns all partners in insertion order.
func (q *Queries) ListPartners(ctx context.Context) ([]model.Partner, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+partnerColumns+` FROM partners ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := []model.Partner{}
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

// DeletePartner removes a partner. Deleting a missing id is not an error.
func (q *Queries) DeletePartner(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM partners WHERE id = ?`, id)
	return err
}

func (q *Queries) CountPartners(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM partners`).Scan(&n)
	return n, err
}

func scanPartner(row rowScanner) (model.Partner, error) {
	var p model.Partner
	err := row.Scan(&p.ID, &p.Name, &p.LogoURL, &p.Website)
	return p, err
}
