// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taafevision/taafe-go/internal/auth"
	"github.com/taafevision/taafe-go/internal/middleware"
	"github.com/taafevision/taafe-go/internal/session"
)

// invalidCredentialsMessage is returned for every credential failure.
// Unknown usernames and wrong passwords are indistinguishable on the wire.
const invalidCredentialsMessage = "Invalid credentials"

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	fieldErrors := make(map[string]string)
	if req.Username == "" {
		fieldErrors["username"] = "Username is required"
	}
	if req.Password == "" {
		fieldErrors["password"] = "Password is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	if h.logins != nil {
		if locked, _ := h.logins.IsAccountLocked(req.Username); locked {
			WriteError(w, http.StatusTooManyRequests,
				"Too many failed login attempts. Please try again later.")
			return
		}
	}

	user, err := h.queries.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.recordLoginFailure(req.Username)
			WriteError(w, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		WriteInternalError(w, err)
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.recordLoginFailure(req.Username)
		WriteError(w, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	if h.logins != nil {
		h.logins.RecordSuccessfulLogin(req.Username)
	}

	// Session fixation protection: new token on privilege change.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		WriteInternalError(w, err)
		return
	}
	h.sessions.Put(r.Context(), session.KeyUserID, user.ID)

	// Transparently upgrade hashes created with older parameters.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(req.Password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash); err != nil {
				slog.Warn("failed to upgrade password hash", "user_id", user.ID, "error", err)
			}
		}
	}

	if h.audit != nil {
		_ = h.audit.LogLogin(r.Context(), user.ID, user.Username)
	}

	WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) recordLoginFailure(username string) {
	if h.logins == nil {
		return
	}
	if locked, duration := h.logins.RecordFailedAttempt(username); locked {
		slog.Warn("login failures locked account", "username", username, "duration", duration)
	}
}

// Logout handles POST /api/logout. Logging out without a session is a no-op.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := h.sessions.GetInt64(r.Context(), session.KeyUserID)

	if err := h.sessions.Destroy(r.Context()); err != nil {
		WriteInternalError(w, err)
		return
	}

	if userID != 0 && h.audit != nil {
		_ = h.audit.LogLogout(r.Context(), userID)
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CurrentUser handles GET /api/user. Wrapped by LoadUser, so an
// authenticated request carries the user in context.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	WriteJSON(w, http.StatusOK, user)
}
