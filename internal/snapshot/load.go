// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package snapshot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

// Source reads snapshot tables. *database.DB implements it.
type Source interface {
	LoadGenrePlaytime(ctx context.Context, path string) (*models.GenrePlaytimeTable, error)
	LoadRecommendations(ctx context.Context, path string) (*models.RecommendationsTable, error)
	LoadSimilarityMatrix(ctx context.Context, path, indexColumn string) (*models.SimilarityMatrix, error)
	LoadInteractions(ctx context.Context, path string) (*models.InteractionsTable, error)
	LoadCatalog(ctx context.Context, path string) (*models.CatalogTable, error)
}

// Options selects the files to load.
type Options struct {
	Paths           config.SnapshotPaths
	GameIndexColumn string
	UserIndexColumn string
}

// OptionsFromConfig resolves Options from the snapshot configuration.
func OptionsFromConfig(cfg *config.SnapshotConfig) Options {
	return Options{
		Paths:           cfg.Paths(),
		GameIndexColumn: cfg.GameIndexColumn,
		UserIndexColumn: cfg.UserIndexColumn,
	}
}

// Load reads every snapshot table concurrently and builds the Store.
// The first failing table cancels the others and is returned; a partially
// loaded store is never returned.
func Load(ctx context.Context, src Source, opts Options) (*Store, error) {
	start := time.Now()
	logger := logging.WithComponent("snapshot")

	var tables Tables
	paths := map[string]string{
		TableGenrePlaytime:   opts.Paths.GenrePlaytime,
		TableRecommendations: opts.Paths.Recommendations,
		TableGameSimilarity:  opts.Paths.GameSimilarity,
		TableUserSimilarity:  opts.Paths.UserSimilarity,
		TableInteractions:    opts.Paths.Interactions,
		TableCatalog:         opts.Paths.Catalog,
	}
	durations := make(map[string]time.Duration, len(paths))
	durationCh := make(chan tableTiming, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	run := func(name string, load func(ctx context.Context, path string) error) {
		path := paths[name]
		g.Go(func() error {
			t0 := time.Now()
			if err := load(gctx, path); err != nil {
				return fmt.Errorf("load %s: %w", name, err)
			}
			durationCh <- tableTiming{name: name, elapsed: time.Since(t0)}
			return nil
		})
	}

	run(TableGenrePlaytime, func(ctx context.Context, path string) (err error) {
		tables.GenrePlaytime, err = src.LoadGenrePlaytime(ctx, path)
		return err
	})
	run(TableRecommendations, func(ctx context.Context, path string) (err error) {
		tables.Recommendations, err = src.LoadRecommendations(ctx, path)
		return err
	})
	run(TableGameSimilarity, func(ctx context.Context, path string) (err error) {
		tables.GameSimilarity, err = src.LoadSimilarityMatrix(ctx, path, opts.GameIndexColumn)
		return err
	})
	run(TableUserSimilarity, func(ctx context.Context, path string) (err error) {
		tables.UserSimilarity, err = src.LoadSimilarityMatrix(ctx, path, opts.UserIndexColumn)
		return err
	})
	run(TableInteractions, func(ctx context.Context, path string) (err error) {
		tables.Interactions, err = src.LoadInteractions(ctx, path)
		return err
	})
	run(TableCatalog, func(ctx context.Context, path string) (err error) {
		tables.Catalog, err = src.LoadCatalog(ctx, path)
		return err
	})

	err := g.Wait()
	close(durationCh)
	if err != nil {
		return nil, err
	}
	for timing := range durationCh {
		durations[timing.name] = timing.elapsed
	}

	store := New(tables)
	store.loadDuration = time.Since(start)
	for i := range store.stats {
		st := &store.stats[i]
		st.Path = paths[st.Name]
		metrics.RecordSnapshotTable(st.Name, st.Rows, durations[st.Name])
		logger.Info().
			Str("table", st.Name).
			Str("path", st.Path).
			Int("rows", st.Rows).
			Int("columns", st.Columns).
			Dur("elapsed", durations[st.Name]).
			Msg("Snapshot table loaded")
	}
	metrics.RecordSnapshotLoaded(store.loadedAt)

	logger.Info().
		Int("genres", len(tables.GenrePlaytime.Genres)).
		Int("catalog_items", store.catalogNames.Len()).
		Dur("elapsed", store.loadDuration).
		Msg("Snapshot store ready")

	return store, nil
}

type tableTiming struct {
	name    string
	elapsed time.Duration
}
