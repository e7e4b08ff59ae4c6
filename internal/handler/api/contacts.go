// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/taafevision/taafe-go/internal/store"
)

// CreateContactRequest is the body of POST /api/contact.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContact handles POST /api/contact. This is the one public
// write endpoint: the site's contact form posts here.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	fieldErrors := make(map[string]string)
	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	switch {
	case req.Email == "":
		fieldErrors["email"] = "Email is required"
	case !validEmail(req.Email):
		fieldErrors["email"] = "Email address is not valid"
	}
	if strings.TrimSpace(req.Message) == "" {
		fieldErrors["message"] = "Message is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	contact, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, contact)
}

// ListContacts handles GET /api/contacts. Admin only: contact
// submissions carry personal data.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.queries.ListContacts(r.Context())
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, contacts)
}

// validEmail accepts plain addresses only, no display names.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
