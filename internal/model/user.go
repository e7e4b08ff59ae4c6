// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain entities stored in the database:
// users, projects, films, articles, partners, contact messages and the
// admin settings/audit tables.
package model

// User represents an admin account. Accounts are created only by the
// seeding step, never through a public endpoint.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
	IsAdmin      bool   `json:"isAdmin"`
}
