// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package api exposes the SteamLens analytics queries over HTTP using the chi
router.

Endpoints:

	GET /play_time_genre/{genero}         release year with most playtime
	GET /user_for_genre/{genero}          top user with hours per year
	GET /users_recommend/{year}           top three recommended games
	GET /users_not_recommend/{year}       three least recommended games
	GET /sentiment_analysis/{year}        review sentiment counts
	GET /recomendacion_juego/{item_id}    five similar games
	GET /recomendacion_usuario/{user_id}  five games from similar users
	GET /genres                           known genre names
	GET /health, /health/live, /health/ready
	GET /metrics                          Prometheus exposition
	GET /swagger/*                        OpenAPI UI

Success bodies keep their labelled shapes, for example

	[{"Puesto 1": "AppA"}, {"Puesto 2": "AppB"}, {"Puesto 3": "AppC"}]

Every query or parameter failure is HTTP 400 with

	{"detail": "...", "code": "NOT_FOUND", "request_id": "..."}

where code is one of NOT_FOUND, EMPTY_RESULT, UNEXPECTED or VALIDATION_ERROR.

Middleware order: request id, real IP, access log, metrics, panic recovery,
CORS and gzip globally; rate limiting and security headers per route group.
*/
package api
