// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package main is the entry point for the SteamLens API server.
//
// SteamLens answers read-only questions about a game platform's players,
// reviews and catalog from six parquet snapshots loaded once at startup.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, environment (koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Snapshot: every parquet file is read through an in-memory DuckDB, the
//     tables and lookup indexes are built, and DuckDB is closed. A missing or
//     unreadable file is fatal and the server never listens.
//  4. HTTP: chi router served by a suture-supervised http.Server
//
// # Configuration
//
// Common environment variables:
//
//	SNAPSHOT_DIR=/data          directory holding the parquet files
//	HTTP_PORT=8000              listen port
//	LOG_LEVEL=info              trace|debug|info|warn|error
//	LOG_FORMAT=json             json|console
//	CORS_ORIGINS=*              comma separated
//	RATE_LIMIT_REQS=100         per RATE_LIMIT_WINDOW per IP
//
// # Signal Handling
//
// SIGINT and SIGTERM stop accepting connections and wait up to
// HTTP_SHUTDOWN_TIMEOUT for in-flight requests.
//
// # Example
//
//	SNAPSHOT_DIR=./data LOG_FORMAT=console ./steamlens
//	curl localhost:8000/users_recommend/2015
package main
