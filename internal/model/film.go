// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Film represents a produced short film.
type Film struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Synopsis string  `json:"synopsis"`
	Year     int64   `json:"year"`
	ImageURL string  `json:"imageUrl"`
	VideoURL *string `json:"videoUrl"`
	IsHidden bool    `json:"isHidden"`
}
