// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package middleware provides HTTP middleware for the SteamLens API.

Key Components:

  - RequestID: reuses or generates X-Request-ID and seeds the logging context
  - AccessLog: one zerolog line per request with route, status and duration
  - PrometheusMetrics: request count, latency and in-flight instrumentation

All three use the func(http.HandlerFunc) http.HandlerFunc shape. The api
package adapts them to chi's r.Use():

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Metrics are labelled with the chi route pattern, so /users_recommend/2015 and
/users_recommend/2016 share the /users_recommend/{year} series. Requests that
match no route are labelled "unmatched".
*/
package middleware
