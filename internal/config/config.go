// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config holds all application configuration.
//
// Configuration is loaded in layers (see LoadWithKoanf): built-in defaults,
// then an optional YAML file, then environment variables.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	paths := cfg.Snapshot.Paths()
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Snapshot SnapshotConfig `koanf:"snapshot"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SnapshotConfig describes where the precomputed parquet snapshots live and
// how the DuckDB reader is tuned while loading them.
//
// File names are resolved against Dir unless they are absolute.
//
// Environment Variables:
//   - SNAPSHOT_DIR: directory holding the parquet files (default: ./data)
//   - GENRE_PLAYTIME_PATH, RECOMMENDATIONS_PATH, GAME_SIMILARITY_PATH,
//     USER_SIMILARITY_PATH, INTERACTIONS_PATH, CATALOG_PATH: per-table file names
//   - GAME_INDEX_COLUMN / USER_INDEX_COLUMN: row label column of the similarity matrices
//   - DUCKDB_MAX_MEMORY, DUCKDB_THREADS: DuckDB tuning
//   - SNAPSHOT_LOAD_TIMEOUT: upper bound for loading all tables (default: 5m)
type SnapshotConfig struct {
	Dir             string `koanf:"dir" validate:"required"`
	GenrePlaytime   string `koanf:"genre_playtime" validate:"required"`
	Recommendations string `koanf:"recommendations" validate:"required"`
	GameSimilarity  string `koanf:"game_similarity" validate:"required"`
	UserSimilarity  string `koanf:"user_similarity" validate:"required"`
	Interactions    string `koanf:"interactions" validate:"required"`
	Catalog         string `koanf:"catalog" validate:"required"`

	// GameIndexColumn and UserIndexColumn name the column holding the row
	// labels of each similarity matrix. Empty means auto-detect.
	GameIndexColumn string `koanf:"game_index_column"`
	UserIndexColumn string `koanf:"user_index_column"`

	MaxMemory   string        `koanf:"max_memory" validate:"required"`
	Threads     int           `koanf:"threads" validate:"gte=0"` // 0 = use runtime.NumCPU()
	LoadTimeout time.Duration `koanf:"load_timeout" validate:"gt=0"`
}

// SnapshotPaths is the set of resolved parquet file locations.
type SnapshotPaths struct {
	GenrePlaytime   string
	Recommendations string
	GameSimilarity  string
	UserSimilarity  string
	Interactions    string
	Catalog         string
}

// Paths resolves every snapshot file against Dir.
func (s SnapshotConfig) Paths() SnapshotPaths {
	return SnapshotPaths{
		GenrePlaytime:   s.resolve(s.GenrePlaytime),
		Recommendations: s.resolve(s.Recommendations),
		GameSimilarity:  s.resolve(s.GameSimilarity),
		UserSimilarity:  s.resolve(s.UserSimilarity),
		Interactions:    s.resolve(s.Interactions),
		Catalog:         s.resolve(s.Catalog),
	}
}

func (s SnapshotConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds the HTTP edge protections. The API is public and
// read-only, so there is no authentication section.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if it exists, or the path in CONFIG_PATH)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
