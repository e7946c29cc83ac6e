// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package models defines the data structures shared across SteamLens.

Model Categories:

1. Snapshot tables (snapshot.go), loaded once from parquet by the database
package and owned by the snapshot store:
  - GenrePlaytimeTable: per user/year playtime with one indicator column per genre
  - RecommendationsTable: per review recommend flag and sentiment code
  - SimilarityMatrix: square cosine similarity matrix (games or users)
  - InteractionsTable: user to item interactions with app names
  - CatalogTable: item to app name catalog

2. Query results (analytics.go). Their JSON encodings are the public wire
format and keep the labelled keys clients already depend on, for example
{"Juegos recomendados": [...]} or [{"Puesto 1": "..."}, ...].

3. API envelopes (api_responses.go): error body, health and listing responses.

All snapshot tables are treated as immutable once loaded. Nothing in this
package mutates them.
*/
package models
