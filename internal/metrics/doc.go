// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package metrics defines the Prometheus metrics exported by SteamLens.
//
// All collectors are registered on the default registry through promauto
// and exposed at /metrics:
//
//   - api_requests_total, api_request_duration_seconds, api_active_requests:
//     HTTP traffic, labelled by chi route pattern
//   - snapshot_table_rows, snapshot_load_duration_seconds,
//     snapshot_loaded_timestamp_seconds: startup load of the parquet snapshots
//   - query_duration_seconds, query_errors_total: analytics queries, errors
//     labelled by kind (not_found, empty_result, unexpected)
//   - app_info: running version
//
// Use the Record* helpers rather than touching the collectors directly.
package metrics
