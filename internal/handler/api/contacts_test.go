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
	"time"

	"github.com/taafevision/taafe-go/internal/model"
	"github.com/taafevision/taafe-go/internal/store"
)

func TestCreateContact(t *testing.T) {
	_, h := testSetup(t)

	body := `{"name":"Awa","email":"awa@example.org","message":"Bonjour"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateContact(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var contact model.Contact
	if err := json.NewDecoder(rec.Body).Decode(&contact); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if contact.ID == 0 {
		t.Error("expected a generated ID")
	}
	if contact.Email != "awa@example.org" {
		t.Errorf("email = %q", contact.Email)
	}
}

func TestCreateContactMissingEmail(t *testing.T) {
	_, h := testSetup(t)

	body := `{"name":"Awa","message":"Bonjour"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateContact(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Errors["email"] == "" {
		t.Errorf("expected an email error, got %v", resp.Errors)
	}

	// No row was written.
	count, err := h.queries.CountContacts(context.Background())
	if err != nil {
		t.Fatalf("failed to count contacts: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestCreateContactRejectsBadEmail(t *testing.T) {
	_, h := testSetup(t)

	body := `{"name":"Awa","email":"not-an-email","message":"Bonjour"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateContact(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"awa@example.org", true},
		{"a.b+c@sub.example.org", true},
		{"not-an-email", false},
		{"@example.org", false},
		{"Awa <awa@example.org>", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := validEmail(tt.email); got != tt.want {
			t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestListContactsNewestFirstHandler(t *testing.T) {
	_, h := testSetup(t)

	queries := store.New(h.db)
	older, err := queries.CreateContact(context.Background(), store.CreateContactParams{
		Name:      "First",
		Email:     "first@example.org",
		Message:   "m",
		CreatedAt: time.Now().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("failed to create contact: %v", err)
	}
	newer, err := queries.CreateContact(context.Background(), store.CreateContactParams{
		Name:      "Second",
		Email:     "second@example.org",
		Message:   "m",
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to create contact: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ListContacts(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var contacts []model.Contact
	if err := json.NewDecoder(rec.Body).Decode(&contacts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("len = %d, want 2", len(contacts))
	}
	if contacts[0].ID != newer.ID || contacts[1].ID != older.ID {
		t.Errorf("order = [%d, %d], want newest first", contacts[0].ID, contacts[1].ID)
	}
}
