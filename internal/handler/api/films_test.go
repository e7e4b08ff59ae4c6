// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

func createFilmRow(t *testing.T, h *Handler, title string) model.Film {
	t.Helper()

	film, err := h.queries.CreateFilm(context.Background(), store.CreateFilmParams{
		Title:    title,
		Director: "Someone",
		Synopsis: "A film",
		Year:     2024,
		ImageURL: "/images/film.jpg",
	})
	if err != nil {
		t.Fatalf("failed to create film: %v", err)
	}
	return film
}

func TestFilmYearUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FilmYear
		wantErr bool
	}{
		{"number", `2024`, 2024, false},
		{"string", `"2024"`, 2024, false},
		{"padded string", `" 2024 "`, 2024, false},
		{"fractional number", `2024.5`, 0, true},
		{"non-numeric string", `"abc"`, 0, true},
		{"boolean", `true`, 0, true},
		{"null", `null`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y FilmYear
			err := json.Unmarshal([]byte(tt.input), &y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && y != tt.want {
				t.Errorf("year = %d, want %d", y, tt.want)
			}
		})
	}
}

func TestCreateFilmCoercesYearString(t *testing.T) {
	_, h := testSetup(t)

	body := `{"title":"KANU","director":"Someone","synopsis":"Drame","year":"2024","imageUrl":"/images/kanu.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/films", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateFilm(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var film model.Film
	if err := json.NewDecoder(rec.Body).Decode(&film); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if film.Year != 2024 {
		t.Errorf("year = %d, want 2024", film.Year)
	}
}

func TestCreateFilmRejectsBadYear(t *testing.T) {
	_, h := testSetup(t)

	body := `{"title":"x","director":"y","synopsis":"z","year":"soon","imageUrl":"/i.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/films", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateFilm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateFilmValidation(t *testing.T) {
	_, h := testSetup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/films", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()
	h.CreateFilm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, field := range []string{"director", "synopsis", "imageUrl", "year"} {
		if resp.Errors[field] == "" {
			t.Errorf("missing field error for %s", field)
		}
	}
}

func TestGetFilm(t *testing.T) {
	_, h := testSetup(t)
	createFilmRow(t, h, "AFFRANCHIE")

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/films/1", nil), "1")
	rec := httptest.NewRecorder()
	h.GetFilm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var film model.Film
	if err := json.NewDecoder(rec.Body).Decode(&film); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if film.Title != "AFFRANCHIE" {
		t.Errorf("title = %q", film.Title)
	}
}

func TestGetFilmNotFound(t *testing.T) {
	_, h := testSetup(t)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/films/5", nil), "5")
	rec := httptest.NewRecorder()
	h.GetFilm(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateFilmPartial(t *testing.T) {
	_, h := testSetup(t)
	film := createFilmRow(t, h, "TERMINUS")

	body := `{"synopsis":"Updated synopsis","isHidden":true}`
	req := withIDParam(httptest.NewRequest(http.MethodPatch, "/api/films/1", strings.NewReader(body)), "1")
	rec := httptest.NewRecorder()
	h.UpdateFilm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var updated model.Film
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.Synopsis != "Updated synopsis" {
		t.Errorf("synopsis = %q", updated.Synopsis)
	}
	if !updated.IsHidden {
		t.Error("isHidden = false, want true")
	}
	if updated.Title != film.Title || updated.Year != film.Year {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestDeleteFilmIdempotent(t *testing.T) {
	_, h := testSetup(t)
	createFilmRow(t, h, "Doomed")

	for _, id := range []string{"1", "999999"} {
		req := withIDParam(httptest.NewRequest(http.MethodDelete, "/api/films/"+id, nil), id)
		rec := httptest.NewRecorder()
		h.DeleteFilm(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("delete %s status = %d, want 204", id, rec.Code)
		}
	}
}
