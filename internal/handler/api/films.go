// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

// FilmYear accepts a JSON number or a numeric string, so clients may
// send year as 2024 or "2024".
type FilmYear int64

// UnmarshalJSON implements json.Unmarshaler.
func (y *FilmYear) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return errors.New("year must be an integer")
		}
		*y = FilmYear(v)
		return nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.New("year must be a number")
		}
		*y = FilmYear(n)
		return nil
	default:
		return errors.New("year must be a number")
	}
}

// CreateFilmRequest is the body of POST /api/films.
type CreateFilmRequest struct {
	Title    string   `json:"title"`
	Director string   `json:"director"`
	Synopsis string   `json:"synopsis"`
	Year     FilmYear `json:"year"`
	ImageURL string   `json:"imageUrl"`
	VideoURL *string  `json:"videoUrl"`
	IsHidden *bool    `json:"isHidden"`
}

// UpdateFilmRequest is the body of PATCH /api/films/{id}.
// Nil fields keep their current value.
type UpdateFilmRequest struct {
	Title    *string   `json:"title"`
	Director *string   `json:"director"`
	Synopsis *string   `json:"synopsis"`
	Year     *FilmYear `json:"year"`
	ImageURL *string   `json:"imageUrl"`
	VideoURL *string   `json:"videoUrl"`
	IsHidden *bool     `json:"isHidden"`
}

// ListFilms handles GET /api/films. Public; hidden rows are included.
func (h *Handler) ListFilms(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, cacheKeyFilms, func() (any, error) {
		return h.queries.ListFilms(r.Context())
	})
}

// GetFilm handles GET /api/films/{id}. Public.
func (h *Handler) GetFilm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid film ID")
		return
	}

	film, err := h.queries.GetFilmByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Film not found")
			return
		}
		WriteInternalError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, film)
}

// CreateFilm handles POST /api/films.
func (h *Handler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req CreateFilmRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = "Title is required"
	}
	if strings.TrimSpace(req.Director) == "" {
		fieldErrors["director"] = "Director is required"
	}
	if strings.TrimSpace(req.Synopsis) == "" {
		fieldErrors["synopsis"] = "Synopsis is required"
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		fieldErrors["imageUrl"] = "Image URL is required"
	}
	if req.Year <= 0 {
		fieldErrors["year"] = "Year is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	isHidden := false
	if req.IsHidden != nil {
		isHidden = *req.IsHidden
	}

	film, err := h.queries.CreateFilm(r.Context(), store.CreateFilmParams{
		Title:    req.Title,
		Director: req.Director,
		Synopsis: req.Synopsis,
		Year:     int64(req.Year),
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
		IsHidden: isHidden,
	})
	if err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyFilms)
	h.logResourceAction(r, model.ActionCreate, "film", film.ID)

	WriteJSON(w, http.StatusCreated, film)
}

// UpdateFilm handles PATCH /api/films/{id}. Only the supplied fields
// change; the rest of the row is carried over.
func (h *Handler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid film ID")
		return
	}

	var req UpdateFilmRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	current, err := h.queries.GetFilmByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Film not found")
			return
		}
		WriteInternalError(w, err)
		return
	}

	params := store.UpdateFilmParams{
		ID:       current.ID,
		Title:    current.Title,
		Director: current.Director,
		Synopsis: current.Synopsis,
		Year:     current.Year,
		ImageURL: current.ImageURL,
		VideoURL: current.VideoURL,
		IsHidden: current.IsHidden,
	}
	if req.Title != nil {
		params.Title = *req.Title
	}
	if req.Director != nil {
		params.Director = *req.Director
	}
	if req.Synopsis != nil {
		params.Synopsis = *req.Synopsis
	}
	if req.Year != nil {
		params.Year = int64(*req.Year)
	}
	if req.ImageURL != nil {
		params.ImageURL = *req.ImageURL
	}
	if req.VideoURL != nil {
		params.VideoURL = req.VideoURL
	}
	if req.IsHidden != nil {
		params.IsHidden = *req.IsHidden
	}

	film, err := h.queries.UpdateFilm(r.Context(), params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Film not found")
			return
		}
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyFilms)
	h.logResourceAction(r, model.ActionUpdate, "film", film.ID)

	WriteJSON(w, http.StatusOK, film)
}

// DeleteFilm handles DELETE /api/films/{id}. Idempotent.
func (h *Handler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid film ID")
		return
	}

	if err := h.queries.DeleteFilm(r.Context(), id); err != nil {
		WriteInternalError(w, err)
		return
	}

	h.invalidateList(r, cacheKeyFilms)
	h.logResourceAction(r, model.ActionDelete, "film", id)

	w.WriteHeader(http.StatusNoContent)
}
