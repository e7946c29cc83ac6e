// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package snapshot holds the immutable in-memory copy of the analytics
// snapshot.
//
// Load reads the six tables concurrently from a Source (the DuckDB parquet
// reader in production), then New builds the read-only secondary indexes
// once:
//
//   - catalog item_id -> app names (first-seen order, deduplicated)
//   - interactions item_id -> app names (first-seen order, deduplicated)
//   - similarity matrix label -> column position
//
// After construction nothing in a Store changes, so one *Store is shared by
// pointer across all request goroutines without locking.
package snapshot
