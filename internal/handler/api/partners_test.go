// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taafevision/taafe-go/internal/model"
)

func TestCreatePartner(t *testing.T) {
	_, h := testSetup(t)

	body := `{"name":"FESPACO","logoUrl":"/images/fespaco.jpg","website":"https://fespaco.org"}`
	req := httptest.NewRequest(http.MethodPost, "/api/partners", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePartner(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var partner model.Partner
	if err := json.NewDecoder(rec.Body).Decode(&partner); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if partner.Name != "FESPACO" {
		t.Errorf("name = %q", partner.Name)
	}
	if partner.Website == nil || *partner.Website != "https://fespaco.org" {
		t.Errorf("website = %v", partner.Website)
	}
}

func TestCreatePartnerValidation(t *testing.T) {
	_, h := testSetup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/partners", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.CreatePartner(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Errors["name"] == "" || resp.Errors["logoUrl"] == "" {
		t.Errorf("expected field errors, got %v", resp.Errors)
	}
}

func TestListPartnersEmpty(t *testing.T) {
	_, h := testSetup(t)

	rec := httptest.NewRecorder()
	h.ListPartners(rec, httptest.NewRequest(http.MethodGet, "/api/partners", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// An empty table serializes as [], never null.
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", rec.Body.String())
	}
}

func TestDeletePartnerIdempotent(t *testing.T) {
	_, h := testSetup(t)

	body := `{"name":"Equipop","logoUrl":"/images/equipop.jpg"}`
	createRec := httptest.NewRecorder()
	h.CreatePartner(createRec, httptest.NewRequest(http.MethodPost, "/api/partners", strings.NewReader(body)))

	for _, id := range []string{"1", "999999"} {
		req := withIDParam(httptest.NewRequest(http.MethodDelete, "/api/partners/"+id, nil), id)
		rec := httptest.NewRecorder()
		h.DeletePartner(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("delete %s status = %d, want 204", id, rec.Code)
		}
	}
}
