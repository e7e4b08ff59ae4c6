// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that mirrors WARN and ERROR
// records into the admin_logs table so operational problems show up in
// the admin panel.
package logging

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

// AuditLogHandler wraps another slog.Handler and additionally writes
// records at or above a threshold level to admin_logs.
type AuditLogHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level
}

// NewAuditLogHandler wraps inner so that WARN and ERROR records are also
// persisted to the database.
func NewAuditLogHandler(inner slog.Handler, db *sql.DB) *AuditLogHandler {
	return &AuditLogHandler{
		inner:   inner,
		queries: store.New(db),
		level:   slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *AuditLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *AuditLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.writeToAuditLog(r)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *AuditLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AuditLogHandler{
		inner:   h.inner.WithAttrs(attrs),
		queries: h.queries,
		level:   h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *AuditLogHandler) WithGroup(name string) slog.Handler {
	return &AuditLogHandler{
		inner:   h.inner.WithGroup(name),
		queries: h.queries,
		level:   h.level,
	}
}

func (h *AuditLogHandler) writeToAuditLog(r slog.Record) {
	action := model.ActionWarning
	if r.Level >= slog.LevelError {
		action = model.ActionError
	}

	details := map[string]any{"message": r.Message}
	r.Attrs(func(a slog.Attr) bool {
		details[a.Key] = a.Value.String()
		return true
	})

	var detailsJSON *string
	if b, err := json.Marshal(details); err == nil {
		str := string(b)
		detailsJSON = &str
	}

	// Background context: the record must be persisted even when the
	// originating request context is already cancelled.
	_, _ = h.queries.CreateAdminLog(context.Background(), store.CreateAdminLogParams{
		AdminID:   nil,
		Action:    action,
		Details:   detailsJSON,
		CreatedAt: r.Time,
	})
}
