// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

// GenrePlaytimeRow is one (user, release year) playtime record.
// Genres is aligned with GenrePlaytimeTable.Genres.
type GenrePlaytimeRow struct {
	UserID      string
	ReleaseYear int
	Playtime    float64
	Genres      []bool
}

// GenrePlaytimeTable holds genre_playtime. Genres lists the indicator columns
// in file order.
type GenrePlaytimeTable struct {
	Genres []string
	Rows   []GenrePlaytimeRow
}

// GenreIndex returns the position of genre in Genres, or -1.
func (t *GenrePlaytimeTable) GenreIndex(genre string) int {
	for i, g := range t.Genres {
		if g == genre {
			return i
		}
	}
	return -1
}

// Sentiment codes as written by the offline sentiment model.
const (
	SentimentNegative = 0
	SentimentNeutral  = 1
	SentimentPositive = 2
)

// RecommendationRow is one user review. RecommendUnknown marks a review whose
// recommend flag was null; it still counts towards sentiment.
type RecommendationRow struct {
	AppName          string
	ReleaseYear      int
	Recommend        bool
	RecommendUnknown bool
	Sentiment        int
}

// RecommendationsTable holds recommendations in file order.
type RecommendationsTable struct {
	Rows []RecommendationRow
}

// SimilarityMatrix is a square similarity matrix stored column-major:
// Values[j][i] is the score between column label Columns[j] and row label
// Labels[i]. Missing cells hold NaN.
type SimilarityMatrix struct {
	Labels  []string
	Columns []string
	Values  [][]float64
}

// InteractionRow links a user to an item they own or played.
type InteractionRow struct {
	UserID  string
	ItemID  string
	AppName string
}

// InteractionsTable holds merge in file order.
type InteractionsTable struct {
	Rows []InteractionRow
}

// CatalogRow maps an item to an app name. Item ids may repeat.
type CatalogRow struct {
	ItemID  string
	AppName string
}

// CatalogTable holds reduced_df in file order.
type CatalogTable struct {
	Rows []CatalogRow
}
