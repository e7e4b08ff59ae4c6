// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Audit actions recorded in admin_logs.
const (
	ActionLogin    = "auth.login"
	ActionLogout   = "auth.logout"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionSettings = "settings.update"
	ActionWarning  = "log.warning"
	ActionError    = "log.error"
)

// AdminSetting is a key/value configuration row. Settings are upserted
// by key; there is no delete path.
type AdminSetting struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminLog is an append-only audit record of an admin action.
type AdminLog struct {
	ID        int64     `json:"id"`
	AdminID   *int64    `json:"adminId"`
	Action    string    `json:"action"`
	Details   *string   `json:"details"` // JSON string
	CreatedAt time.Time `json:"createdAt"`
}
