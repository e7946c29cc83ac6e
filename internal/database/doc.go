// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package database reads the parquet snapshots produced by the offline
// pipeline through an in-memory DuckDB instance.
//
// # Overview
//
// DuckDB is only used as a parquet reader: every loader runs one
// read_parquet query, converts the rows into the models package types and
// hands them to the caller. Nothing is written, and the DB can be closed once
// the snapshot store has been built.
//
//   - database.go: connection lifecycle (New, Ping, Close)
//   - parquet.go: column discovery (DESCRIBE), quoting and id normalization
//   - loaders.go: one loader per snapshot table
//
// # Id normalization
//
// user_id and item_id values are always returned as strings. Integer columns
// are formatted in base 10; floating point columns (pandas upcasts integer
// ids when a column contains NaN) are rounded to integers first. Similarity
// matrix column names go through NormalizeID so "10.0" and "10" match.
//
// # Errors
//
// A missing file yields an error wrapping fs.ErrNotExist; a file without a
// required column yields ErrMissingColumn. Both are meant to be fatal at
// startup.
//
// # Thread Safety
//
// DB is safe for concurrent use; the snapshot store loads tables in parallel.
package database
