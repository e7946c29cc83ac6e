// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package config provides centralized configuration management for SteamLens.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, or config.yaml / /etc/steamlens/config.yaml
 3. Environment variables, mapped explicitly (unknown variables are ignored)

# Configuration Structure

  - SnapshotConfig: location of the parquet snapshots and DuckDB tuning
  - ServerConfig: HTTP listen address, timeouts, environment
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level, format and caller info

# Environment Variables

Snapshot:
  - SNAPSHOT_DIR: directory holding the parquet files (default: ./data)
  - GENRE_PLAYTIME_PATH: default genre_playtime.parquet
  - RECOMMENDATIONS_PATH: default recommendations.parquet
  - GAME_SIMILARITY_PATH: default recomendacion_juego.parquet
  - USER_SIMILARITY_PATH: default recomendacion_usuario.parquet
  - INTERACTIONS_PATH: default merge.parquet
  - CATALOG_PATH: default reduced_df.parquet
  - GAME_INDEX_COLUMN, USER_INDEX_COLUMN: similarity matrix label column (default: auto-detect)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit while loading (default: 1GB)
  - DUCKDB_THREADS: DuckDB threads (default: 0, all CPUs)
  - SNAPSHOT_LOAD_TIMEOUT: default 5m

HTTP Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8000)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQS: requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: default 1m
  - DISABLE_RATE_LIMIT: true to turn the limiter off

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	paths := cfg.Snapshot.Paths()

Config is immutable after Load() and safe for concurrent reads.
*/
package config
