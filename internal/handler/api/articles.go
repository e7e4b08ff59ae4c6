// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

// articlePolicy sanitizes article HTML before it is stored.
var articlePolicy = bluemonday.UGCPolicy()

// CreateArticleRequest is the body of POST /api/articles.
type CreateArticleRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Category  string  `json:"category"`
	SourceURL *string `json:"sourceUrl"`
	IsHidden  *bool   `json:"isHidden"`
}

// UpdateArticleRequest is the body of PATCH /api/articles/{id}.
// Nil fields keep their current value. createdAt never changes.
type UpdateArticleRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Category  *string `json:"category"`
	SourceURL *string `json:"sourceUrl"`
	IsHidden  *bool   `json:"isHidden"`
}

// ListArticles handles GET /api/articles. Public, newest first; hidden
// rows are included.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, cacheKeyArticles, func() (any, error) {
		return h.queries.ListArticles(r.Context())
	})
}

// CreateArticle handles POST /api/articles.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		fieldErrors["content"] = "Content is required"
	}
	if !model.ValidCategory(req.Category) {
		fieldErrors["category"] = "Category must be news, event or training"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	isHidden := false
	if req.IsHidden != nil {
		isHidden = *req.IsHidden
	}

	article, err := h.queries.CreateArticle(r.Context(), store.CreateArticleParams{
		Title:     req.Title,
		Content:   articlePolicy.Sanitize(req.Content),
		ImageURL:  req.ImageURL,
		Category:  req.Category,
		SourceURL: req.SourceURL,
		CreatedAt: time.Now(),
		IsHidden:  isHidden,
	})
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyArticles)
	h.logResourceAction(r, model.ActionCreate, "article", article.ID)

	WriteJSON(w, http.StatusCreated, article)
}

// UpdateArticle handles PATCH /api/articles/{id}. Only the supplied
// fields change; the rest of the row is carried over.
func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	var req UpdateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Category != nil && !model.ValidCategory(*req.Category) {
		WriteValidationError(w, map[string]string{
			"category": "Category must be news, event or training",
		})
		return
	}

	current, err := h.queries.GetArticleByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Article not found")
			return
		}
		WriteInternalError(w, err)
		return
	}

	params := store.UpdateArticleParams{
		ID:        current.ID,
		Title:     current.Title,
		Content:   current.Content,
		ImageURL:  current.ImageURL,
		Category:  current.Category,
		SourceURL: current.SourceURL,
		IsHidden:  current.IsHidden,
	}
	if req.Title != nil {
		params.Title = *req.Title
	}
	if req.Content != nil {
		params.Content = articlePolicy.Sanitize(*req.Content)
	}
	if req.ImageURL != nil {
		params.ImageURL = req.ImageURL
	}
	if req.Category != nil {
		params.Category = *req.Category
	}
	if req.SourceURL != nil {
		params.SourceURL = req.SourceURL
	}
	if req.IsHidden != nil {
		params.IsHidden = *req.IsHidden
	}

	article, err := h.queries.UpdateArticle(r.Context(), params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Article not found")
			return
		}
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyArticles)
	h.logResourceAction(r, model.ActionUpdate, "article", article.ID)

	WriteJSON(w, http.StatusOK, article)
}

// DeleteArticle handles DELETE /api/articles/{id}. Idempotent.
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	if err := h.queries.DeleteArticle(r.Context(), id); err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyArticles)
	h.logResourceAction(r, model.ActionDelete, "article", id)

	w.WriteHeader(http.StatusNoContent)
}
