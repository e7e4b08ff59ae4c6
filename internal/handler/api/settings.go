// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taafevision/taafe-go/internal/middleware"
	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

// UpdateSettingRequest is the body of PUT /api/admin/settings/{key}.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// AdminLogsResponse is the body of GET /api/admin/logs.
type AdminLogsResponse struct {
	Logs   []model.AdminLog `json:"logs"`
	Total  int64            `json:"total"`
	Limit  int64            `json:"limit"`
	Offset int64            `json:"offset"`
}

// ListSettings handles GET /api/admin/settings. Admin only.
func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, settings)
}

// UpdateSetting handles PUT /api/admin/settings/{key}. Upserts the
// setting; there is no delete path, settings only change value.
func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		WriteError(w, http.StatusBadRequest, "Invalid setting key")
		return
	}

	var req UpdateSettingRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	setting, err := h.queries.UpsertSetting(r.Context(), store.UpsertSettingParams{
		Key:       key,
		Value:     req.Value,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	if h.audit != nil {
		_ = h.audit.LogAction(r.Context(), middleware.GetUserIDPtr(r), model.ActionSettings,
			map[string]any{"key": key})
	}

	WriteJSON(w, http.StatusOK, setting)
}

// ListAdminLogs handles GET /api/admin/logs. Admin only; paginated
// newest first via limit and offset query parameters.
func (h *Handler) ListAdminLogs(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50)
	offset := parseQueryInt(r, "offset", 0)

	logs, total, err := h.audit.ListLogs(r.Context(), limit, offset)
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	WriteJSON(w, http.StatusOK, AdminLogsResponse{
		Logs:   logs,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func parseQueryInt(r *http.Request, name string, fallback int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
