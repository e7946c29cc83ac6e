// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package snapshot

import (
	"time"

	"github.com/tomtom215/steamlens/internal/models"
)

// Table names used in logs, metrics and health output.
const (
	TableGenrePlaytime   = "genre_playtime"
	TableRecommendations = "recommendations"
	TableGameSimilarity  = "game_similarity"
	TableUserSimilarity  = "user_similarity"
	TableInteractions    = "interactions"
	TableCatalog         = "catalog"
)

// Tables groups the raw snapshot tables before indexing.
type Tables struct {
	GenrePlaytime   *models.GenrePlaytimeTable
	Recommendations *models.RecommendationsTable
	GameSimilarity  *models.SimilarityMatrix
	UserSimilarity  *models.SimilarityMatrix
	Interactions    *models.InteractionsTable
	Catalog         *models.CatalogTable
}

// Store owns the loaded snapshot tables and the secondary indexes built over
// them. It is immutable after construction and safe for unlimited concurrent
// readers; accessors hand out shared slices that callers must not modify.
type Store struct {
	genrePlaytime   *models.GenrePlaytimeTable
	recommendations *models.RecommendationsTable
	gameSimilarity  *Matrix
	userSimilarity  *Matrix
	interactions    *models.InteractionsTable
	catalog         *models.CatalogTable

	catalogNames     *NameIndex
	interactionNames *NameIndex

	stats        []models.TableStats
	loadedAt     time.Time
	loadDuration time.Duration
}

// New builds a Store over already loaded tables. Nil tables are replaced by
// empty ones so queries never dereference nil.
func New(t Tables) *Store {
	if t.GenrePlaytime == nil {
		t.GenrePlaytime = &models.GenrePlaytimeTable{}
	}
	if t.Recommendations == nil {
		t.Recommendations = &models.RecommendationsTable{}
	}
	if t.GameSimilarity == nil {
		t.GameSimilarity = &models.SimilarityMatrix{}
	}
	if t.UserSimilarity == nil {
		t.UserSimilarity = &models.SimilarityMatrix{}
	}
	if t.Interactions == nil {
		t.Interactions = &models.InteractionsTable{}
	}
	if t.Catalog == nil {
		t.Catalog = &models.CatalogTable{}
	}

	catalogNames := newNameIndexBuilder()
	for _, r := range t.Catalog.Rows {
		catalogNames.add(r.ItemID, r.AppName)
	}
	interactionNames := newNameIndexBuilder()
	for _, r := range t.Interactions.Rows {
		interactionNames.add(r.ItemID, r.AppName)
	}

	s := &Store{
		genrePlaytime:    t.GenrePlaytime,
		recommendations:  t.Recommendations,
		gameSimilarity:   NewMatrix(t.GameSimilarity),
		userSimilarity:   NewMatrix(t.UserSimilarity),
		interactions:     t.Interactions,
		catalog:          t.Catalog,
		catalogNames:     catalogNames.build(),
		interactionNames: interactionNames.build(),
		loadedAt:         time.Now(),
	}
	s.stats = []models.TableStats{
		{Name: TableGenrePlaytime, Rows: len(t.GenrePlaytime.Rows), Columns: 3 + len(t.GenrePlaytime.Genres)},
		{Name: TableRecommendations, Rows: len(t.Recommendations.Rows), Columns: 4},
		{Name: TableGameSimilarity, Rows: len(t.GameSimilarity.Labels), Columns: len(t.GameSimilarity.Columns)},
		{Name: TableUserSimilarity, Rows: len(t.UserSimilarity.Labels), Columns: len(t.UserSimilarity.Columns)},
		{Name: TableInteractions, Rows: len(t.Interactions.Rows), Columns: 3},
		{Name: TableCatalog, Rows: len(t.Catalog.Rows), Columns: 2},
	}
	return s
}

// GenrePlaytime returns the genre playtime table.
func (s *Store) GenrePlaytime() *models.GenrePlaytimeTable { return s.genrePlaytime }

// Recommendations returns the recommendations table.
func (s *Store) Recommendations() *models.RecommendationsTable { return s.recommendations }

// GameSimilarity returns the item-item similarity matrix.
func (s *Store) GameSimilarity() *Matrix { return s.gameSimilarity }

// UserSimilarity returns the user-user similarity matrix.
func (s *Store) UserSimilarity() *Matrix { return s.userSimilarity }

// Interactions returns the merged interactions table.
func (s *Store) Interactions() *models.InteractionsTable { return s.interactions }

// Catalog returns the reduced catalog table.
func (s *Store) Catalog() *models.CatalogTable { return s.catalog }

// CatalogNames maps item ids to app names from the catalog.
func (s *Store) CatalogNames() *NameIndex { return s.catalogNames }

// InteractionNames maps item ids to app names from the interactions table.
func (s *Store) InteractionNames() *NameIndex { return s.interactionNames }

// Genres returns the genre indicator columns in file order.
func (s *Store) Genres() []string {
	out := make([]string, len(s.genrePlaytime.Genres))
	copy(out, s.genrePlaytime.Genres)
	return out
}

// Stats returns per-table sizes, with file paths when loaded from disk.
func (s *Store) Stats() []models.TableStats {
	out := make([]models.TableStats, len(s.stats))
	copy(out, s.stats)
	return out
}

// LoadedAt returns when the store was built.
func (s *Store) LoadedAt() time.Time { return s.loadedAt }

// LoadDuration returns how long Load took; zero for stores built with New.
func (s *Store) LoadDuration() time.Duration { return s.loadDuration }
