// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package analytics answers the seven SteamLens queries against a loaded
snapshot.

Genre queries:
  - PlayTimeGenre: release year with the most total playtime for a genre
  - UserForGenre: top user for a genre with hours per release year

Review queries:
  - UsersRecommend: top three games by positive recommendations in a year
  - UsersNotRecommend: bottom three games by negative recommendations in a year
  - SentimentAnalysis: negative, neutral and positive review counts for a year

Recommendation queries:
  - RecommendGame: five games most similar to a game
  - RecommendUser: five games played by the users most similar to a user

Every method returns either a result or a *QueryError whose Kind maps to the
API error code. Panics inside a query are recovered and reported as
KindUnexpected so a single bad row never takes the process down.

The Service never mutates the snapshot and can be shared by all request
goroutines.
*/
package analytics
