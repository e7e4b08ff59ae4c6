// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

// CreateProjectRequest is the body of POST /api/projects.
type CreateProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Date        *string `json:"date"`
	IsHidden    *bool   `json:"isHidden"`
}

// UpdateProjectRequest is the body of PATCH /api/projects/{id}.
// Nil fields keep their current value.
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Date        *string `json:"date"`
	IsHidden    *bool   `json:"isHidden"`
}

// ListProjects handles GET /api/projects. Public; hidden rows are
// included, visibility filtering is a client concern.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, cacheKeyProjects, func() (any, error) {
		return h.queries.ListProjects(r.Context())
	})
}

// CreateProject handles POST /api/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Description) == "" {
		fieldErrors["description"] = "Description is required"
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		fieldErrors["imageUrl"] = "Image URL is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	isHidden := false
	if req.IsHidden != nil {
		isHidden = *req.IsHidden
	}

	project, err := h.queries.CreateProject(r.Context(), store.CreateProjectParams{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Date:        req.Date,
		IsHidden:    isHidden,
	})
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyProjects)
	h.logResourceAction(r, model.ActionCreate, "project", project.ID)

	WriteJSON(w, http.StatusCreated, project)
}

// UpdateProject handles PATCH /api/projects/{id}. Only the supplied
// fields change; the rest of the row is carried over.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req UpdateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	current, err := h.queries.GetProjectByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
			return
		}
		WriteInternalError(w, err)
		return
	}

	params := store.UpdateProjectParams{
		ID:          current.ID,
		Title:       current.Title,
		Description: current.Description,
		ImageURL:    current.ImageURL,
		Date:        current.Date,
		IsHidden:    current.IsHidden,
	}
	if req.Title != nil {
		params.Title = *req.Title
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.ImageURL != nil {
		params.ImageURL = *req.ImageURL
	}
	if req.Date != nil {
		params.Date = req.Date
	}
	if req.IsHidden != nil {
		params.IsHidden = *req.IsHidden
	}

	project, err := h.queries.UpdateProject(r.Context(), params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
			return
		}
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyProjects)
	h.logResourceAction(r, model.ActionUpdate, "project", project.ID)

	WriteJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/{id}. Idempotent: deleting
// a missing row is still a 204.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.queries.DeleteProject(r.Context(), id); err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyProjects)
	h.logResourceAction(r, model.ActionDelete, "project", id)

	w.WriteHeader(http.StatusNoContent)
}
