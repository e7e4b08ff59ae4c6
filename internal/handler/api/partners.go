// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

// CreatePartnerRequest is the body of POST /api/partners.
type CreatePartnerRequest struct {
	Name    string  `json:"name"`
	LogoURL string  `json:"logoUrl"`
	Website *string `json:"website"`
}

// ListPartners handles GET /api/partners. Public.
func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, cacheKeyPartners, func() (any, error) {
		return h.queries.ListPartners(r.Context())
	})
}

// CreatePartner handles POST /api/partners.
func (h *Handler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req CreatePartnerRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		fieldErrors["name"] = "Name is required"
	}
	if strings.TrimSpace(req.LogoURL) == "" {
		fieldErrors["logoUrl"] = "Logo URL is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	partner, err := h.queries.CreatePartner(r.Context(), store.CreatePartnerParams{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Website: req.Website,
	})
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyPartners)
	h.logResourceAction(r, model.ActionCreate, "partner", partner.ID)

	WriteJSON(w, http.StatusCreated, partner)
}

// DeletePartner handles DELETE /api/partners/{id}. Idempotent.
func (h *Handler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	if err := h.queries.DeletePartner(r.Context(), id); err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyPartners)
	h.logResourceAction(r, model.ActionDelete, "partner", id)

	w.WriteHeader(http.StatusNoContent)
}
