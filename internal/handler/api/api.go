// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api implements the JSON API handlers. All responses are JSON:
// entities are returned as plain objects, errors as {"message": ...} with
// an optional "errors" map for field-level validation failures.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/taafevision/taafe-go/internal/cache"
	"github.com/taafevision/taafe-go/internal/middleware"
	"github.com/taafevision/taafe-go/internal/service"
	"github.com/taafevision/taafe-go/internal/store"
)

// Cache keys for the public list endpoints.
const (
	cacheKeyProjects = "list:projects"
	cacheKeyFilms    = "list:films"
	cacheKeyArticles = "list:articles"
	cacheKeyPartners = "list:partners"
)

// Handler holds dependencies for the API handlers.
type Handler struct {
	db       *sql.DB
	queries  *store.Queries
	sessions *scs.SessionManager
	audit    *service.AuditService
	cache    cache.Cache
	cacheTTL time.Duration
	logins   *middleware.LoginProtection
}

// Config holds the dependencies for NewHandler. Cache and
// LoginProtection are optional.
type Config struct {
	DB              *sql.DB
	Sessions        *scs.SessionManager
	Audit           *service.AuditService
	Cache           cache.Cache
	CacheTTL        time.Duration
	LoginProtection *middleware.LoginProtection
}

// NewHandler creates the API handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		db:       cfg.DB,
		queries:  store.New(cfg.DB),
		sessions: cfg.Sessions,
		audit:    cfg.Audit,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
		logins:   cfg.LoginProtection,
	}
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response as {"message": ...}.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, map[string]string{"message": message})
}

// WriteValidationError writes a 400 with per-field error messages.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{
		"message": "Validation failed",
		"errors":  fieldErrors,
	})
}

// WriteNotFound writes a 404 error response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError logs the error and writes a generic 500. The real
// error never reaches the client.
func WriteInternalError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}

// ParseIDParam extracts and validates the {id} URL parameter.
func ParseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid ID")
	}
	return id, nil
}

// decodeJSON decodes the request body into dst. Unknown fields are
// ignored; clients may send more than the handler reads.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// serveList serves a public list endpoint through the cache. On a miss
// the rows are fetched, stored and written. Cache failures degrade to
// direct reads.
func (h *Handler) serveList(w http.ResponseWriter, r *http.Request, key string, fetch func() (any, error)) {
	if h.cache != nil {
		if body, err := h.cache.Get(r.Context(), key); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(body)
			return
		}
	}

	rows, err := fetch()
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	body, err := json.Marshal(rows)
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(r.Context(), key, body, h.cacheTTL); err != nil &&
			!errors.Is(err, cache.ErrCacheClosed) {
			slog.Warn("failed to cache list response", "key", key, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// invalidateList drops a cached list after a mutation.
func (h *Handler) invalidateList(r *http.Request, key string) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(r.Context(), key); err != nil &&
		!errors.Is(err, cache.ErrCacheClosed) {
		slog.Warn("failed to invalidate list cache", "key", key, "error", err)
	}
}

// logResourceAction records an audit entry for a mutation. Audit
// failures are already logged by the service.
func (h *Handler) logResourceAction(r *http.Request, action, resource string, id int64) {
	if h.audit == nil {
		return
	}
	_ = h.audit.LogResourceAction(r.Context(), middleware.GetUserIDPtr(r), action, resource, id)
}
