// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the audit trail recorded in admin_logs.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

// AuditService records admin actions in the admin_logs table.
type AuditService struct {
	queries *store.Queries
}

// NewAuditService creates an AuditService backed by db.
func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{
		queries: store.New(db),
	}
}

// LogAction records an admin action. details may be nil; otherwise it is
// stored as a JSON object. Audit failures are logged, never fatal: the
// action itself already succeeded.
func (s *AuditService) LogAction(ctx context.Context, adminID *int64, action string, details map[string]any) error {
	var detailsJSON *string
	if len(details) > 0 {
		b, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling audit details: %w", err)
		}
		str := string(b)
		detailsJSON = &str
	}

	_, err := s.queries.CreateAdminLog(ctx, store.CreateAdminLogParams{
		AdminID:   adminID,
		Action:    action,
		Details:   detailsJSON,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to write audit log", "action", action, "error", err)
		return err
	}

	return nil
}

// LogLogin records a successful login.
func (s *AuditService) LogLogin(ctx context.Context, adminID int64, username string) error {
	return s.LogAction(ctx, &adminID, model.ActionLogin, map[string]any{"username": username})
}

// LogLogout records a logout.
func (s *AuditService) LogLogout(ctx context.Context, adminID int64) error {
	return s.LogAction(ctx, &adminID, model.ActionLogout, nil)
}

// LogResourceAction records a create, update or delete of an API resource.
func (s *AuditService) LogResourceAction(ctx context.Context, adminID *int64, action, resource string, id int64) error {
	return s.LogAction(ctx, adminID, action, map[string]any{
		"resource": resource,
		"id":       id,
	})
}

// ListLogs returns a page of audit records, newest first, plus the total count.
func (s *AuditService) ListLogs(ctx context.Context, limit, offset int64) ([]model.AdminLog, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.queries.ListAdminLogs(ctx, store.ListAdminLogsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.queries.CountAdminLogs(ctx)
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
