// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/taafevision/taafe-go/internal/model"
)

const (
	settingColumns  = "id, key, value, updated_at"
	adminLogColumns = "id, admin_id, action, details, created_at"
)

// UpsertSettingParams holds a key/value pair to insert or replace.
type UpsertSettingParams struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) (model.AdminSetting, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO admin_settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		RETURNING `+settingColumns,
		arg.Key, arg.Value, arg.UpdatedAt)
	return scanSetting(row)
}

func (q *Queries) GetSetting(ctx context.Context, key string) (model.AdminSetting, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+settingColumns+` FROM admin_settings WHERE key = ?`, key)
	return scanSetting(row)
}

// ListSettings returns all settings ordered by key.
func (q *Queries) ListSettings(ctx context.Context) ([]model.AdminSetting, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+settingColumns+` FROM admin_settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []model.AdminSetting{}
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// CreateAdminLogParams holds the fields for an audit record.
type CreateAdminLogParams struct {
	AdminID   *int64
	Action    string
	Details   *string
	CreatedAt time.Time
}

func (q *Queries) CreateAdminLog(ctx context.Context, arg CreateAdminLogParams) (model.AdminLog, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO admin_logs (admin_id, action, details, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+adminLogColumns,
		arg.AdminID, arg.Action, arg.Details, arg.CreatedAt)
	return scanAdminLog(row)
}

// ListAdminLogsParams bounds a page of audit records.
type ListAdminLogsParams struct {
	Limit  int64
	Offset int64
}

// ListAdminLogs returns a page of audit records, newest first.
func (q *Queries) ListAdminLogs(ctx context.Context, arg ListAdminLogsParams) ([]model.AdminLog, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+adminLogColumns+` FROM admin_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []model.AdminLog{}
	for rows.Next() {
		l, err := scanAdminLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (q *Queries) CountAdminLogs(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_logs`).Scan(&n)
	return n, err
}

func scanSetting(row rowScanner) (model.AdminSetting, error) {
	var s model.AdminSetting
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt)
	return s, err
}

func scanAdminLog(row rowScanner) (model.AdminLog, error) {
	var l model.AdminLog
	err := row.Scan(&l.ID, &l.AdminID, &l.Action, &l.Details, &l.CreatedAt)
	return l, err
}
