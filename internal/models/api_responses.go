// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

import "time"

// ErrorResponse is the body of every failed request. Detail carries the
// human readable message, Code one of NOT_FOUND, EMPTY_RESULT, UNEXPECTED,
// VALIDATION_ERROR, TOO_MANY_REQUESTS or SERVICE_UNAVAILABLE.
//
//	{"detail": "genre \"Puzzle\" not found", "code": "NOT_FOUND", "request_id": "..."}
type ErrorResponse struct {
	Detail    string `json:"detail"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// TableStats describes one loaded snapshot table.
type TableStats struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// HealthStatus is returned by /health and /health/ready.
type HealthStatus struct {
	Status         string       `json:"status"`
	Version        string       `json:"version"`
	SnapshotLoaded bool         `json:"snapshot_loaded"`
	LoadedAt       time.Time    `json:"loaded_at,omitempty"`
	LoadDurationMS int64        `json:"load_duration_ms"`
	Uptime         float64      `json:"uptime_seconds"`
	Tables         []TableStats `json:"tables,omitempty"`
}

// GenreList is returned by /genres.
type GenreList struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}
