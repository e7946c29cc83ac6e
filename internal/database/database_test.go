// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tomtom215/steamlens/internal/config"
)

// testDBSemaphore serializes DuckDB usage across tests. Concurrent CGO
// connections under CI pressure have been observed to hang.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB opens an in-memory reader held for the whole test.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := New(&config.SnapshotConfig{MaxMemory: "512MB", Threads: 1})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

// writeParquet materializes selectSQL as a parquet file in a temp dir.
func writeParquet(t *testing.T, db *DB, name, selectSQL string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	query := "COPY (" + selectSQL + ") TO " + quoteLiteral(path) + " (FORMAT PARQUET)"
	if _, err := db.Conn().ExecContext(context.Background(), query); err != nil {
		t.Fatalf("write parquet fixture %s: %v", name, err)
	}
	return path
}

func TestNew_Ping(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}

func TestClose_NilConn(t *testing.T) {
	t.Parallel()

	db := &DB{}
	if err := db.Close(); err != nil {
		t.Errorf("Close() on empty DB error = %v", err)
	}
	if err := db.Ping(context.Background()); err == nil {
		t.Error("Ping() on empty DB should fail")
	}
}
