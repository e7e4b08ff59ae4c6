// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Project represents an association project or program.
type Project struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Date        *string `json:"date"` // free-form period label, e.g. "2023-2024"
	IsHidden    bool    `json:"isHidden"`
}
