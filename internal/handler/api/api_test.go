// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    int64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"one", "1", 1, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"garbage", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withIDParam(httptest.NewRequest(http.MethodGet, "/", nil), tt.id)
			got, err := ParseIDParam(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("id = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusTeapot, "short and stout")

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "short and stout" {
		t.Errorf("message = %q", resp["message"])
	}
	if len(resp) != 1 {
		t.Errorf("unexpected extra fields: %v", resp)
	}
}

func TestWriteValidationErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationError(rec, map[string]string{"email": "Email is required"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected a top-level message")
	}
	if resp.Errors["email"] != "Email is required" {
		t.Errorf("errors = %v", resp.Errors)
	}
}

func TestServeListUsesCache(t *testing.T) {
	_, h := testSetup(t)
	createProjectRow(t, h, "Cached")

	// First call fills the cache.
	rec := httptest.NewRecorder()
	h.ListProjects(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	firstBody := rec.Body.String()

	// A direct store write bypasses invalidation, so the second read
	// still serves the cached payload.
	createProjectRow(t, h, "Uncached")

	rec = httptest.NewRecorder()
	h.ListProjects(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	if rec.Body.String() != firstBody {
		t.Errorf("expected the cached body, got %q", rec.Body.String())
	}
}
