// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Partner represents a partner organization shown on the site.
type Partner struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	LogoURL string  `json:"logoUrl"`
	Website *string `json:"website"`
}
