// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package logging

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// QueryLogger records the outcome of analytics queries with a fixed field set
// (query, duration_ms, error_kind) so dashboards can aggregate on them.
type QueryLogger struct {
	logger zerolog.Logger
}

// NewQueryLogger creates a QueryLogger on top of the global logger.
func NewQueryLogger() *QueryLogger {
	return &QueryLogger{logger: WithComponent("analytics")}
}

// NewQueryLoggerWithLogger creates a QueryLogger writing to logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewQueryLoggerWithLogger(logger zerolog.Logger) *QueryLogger {
	return &QueryLogger{logger: logger.With().Str("component", "analytics").Logger()}
}

func (q *QueryLogger) forContext(ctx context.Context) *zerolog.Logger {
	l := withRequestFields(ctx, q.logger.With()).Logger()
	return &l
}

// Served logs a successful query at debug level.
func (q *QueryLogger) Served(ctx context.Context, query string, elapsed time.Duration) {
	q.forContext(ctx).Debug().
		Str("query", query).
		Float64("duration_ms", float64(elapsed.Microseconds())/1000).
		Msg("Query served")
}

// Failed logs a failed query. Client-caused kinds log at info, everything
// else at error.
func (q *QueryLogger) Failed(ctx context.Context, query, kind string, err error, elapsed time.Duration) {
	l := q.forContext(ctx)
	event := l.Info()
	if kind == "unexpected" {
		event = l.Error()
	}
	event.
		Str("query", query).
		Str("error_kind", kind).
		Float64("duration_ms", float64(elapsed.Microseconds())/1000).
		Err(err).
		Msg("Query failed")
}
