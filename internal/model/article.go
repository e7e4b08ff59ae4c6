// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Article categories
const (
	CategoryNews     = "news"
	CategoryEvent    = "event"
	CategoryTraining = "training"
)

// ValidCategory reports whether s is a recognized article category.
func ValidCategory(s string) bool {
	switch s {
	case CategoryNews, CategoryEvent, CategoryTraining:
		return true
	}
	return false
}

// Article represents a news or event post.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	Category  string    `json:"category"`
	SourceURL *string   `json:"sourceUrl"`
	CreatedAt time.Time `json:"createdAt"`
	IsHidden  bool      `json:"isHidden"`
}
