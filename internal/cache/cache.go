// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the response cache for the public list
// endpoints, with in-memory and Redis backends.
package cache

import (
	"context"
	"time"
)

// Cache is implemented by all backends. Values are raw bytes so the
// same backend serves JSON payloads and anything else. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key, or ErrCacheMiss when absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// Error is the error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)
