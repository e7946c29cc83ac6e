// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

// General API information for swag. Regenerate docs/ with:
//
//	swag init -g cmd/server/docs.go -o docs
//
// @title SteamLens API
// @version 1.0
// @description Read-only analytics over a game platform snapshot: genre playtime leaders,
// @description yearly recommendation rankings, review sentiment and item/user based game recommendations.
// @description
// @description ## Error Responses
// @description
// @description Every failure is HTTP 400 with
// @description ```json
// @description {"detail": "genre \"Racing\" not found", "code": "NOT_FOUND", "request_id": "..."}
// @description ```
// @description where code is NOT_FOUND, EMPTY_RESULT, UNEXPECTED or VALIDATION_ERROR.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/steamlens/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Genres
// @tag.description Playtime leaders per genre
//
// @tag.name Reviews
// @tag.description Recommendation rankings and sentiment per release year
//
// @tag.name Recommendations
// @tag.description Similar games by item or by user
//
// @tag.name Core
// @tag.description Health and readiness
