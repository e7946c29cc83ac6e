// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/steamlens/docs" // Import generated swagger docs
	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/api"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/snapshot"
	"github.com/tomtom215/steamlens/internal/supervisor"
	"github.com/tomtom215/steamlens/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "steamlens",
		Version:   version,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("snapshot_dir", cfg.Snapshot.Dir).
		Str("environment", cfg.Server.Environment).
		Msg("Starting SteamLens")

	store, err := loadSnapshot(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load snapshot")
	}

	svc := analytics.NewService(store)
	handler := api.NewHandler(svc, version)
	router := api.NewRouter(handler, &cfg.Security)

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, unstopped := range report {
			logging.Warn().Str("service", unstopped.Name).Msg("Service did not stop within timeout")
		}
	}

	logging.Info().Msg("SteamLens stopped")
}

// loadSnapshot reads every snapshot table through a temporary in-memory
// DuckDB and closes it once the tables are materialised.
func loadSnapshot(cfg *config.Config) (*snapshot.Store, error) {
	db, err := database.New(&cfg.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing snapshot reader")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Snapshot.LoadTimeout)
	defer cancel()

	return snapshot.Load(ctx, db, snapshot.OptionsFromConfig(&cfg.Snapshot))
}
