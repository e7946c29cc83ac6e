// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Field names shared by every request scoped log line.
const (
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
	loggerKey        struct{}
)

// GenerateRequestID returns a new random UUID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateCorrelationID returns a short id for grepping one request's lines.
func GenerateCorrelationID() string {
	return uuid.NewString()[:8]
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id, or "" when none was set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// ContextWithNewCorrelationID attaches a freshly generated correlation id.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext returns the correlation id, or "" when none was set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// ContextWithLogger overrides the logger Ctx starts from. Tests use it to
// capture output without replacing the global logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext returns the logger stored in ctx or the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return l
	}
	return Logger()
}

// CtxWith starts a child of LoggerFromContext(ctx) carrying the request and
// correlation ids present in ctx.
func CtxWith(ctx context.Context) zerolog.Context {
	return withRequestFields(ctx, LoggerFromContext(ctx).With())
}

func withRequestFields(ctx context.Context, lc zerolog.Context) zerolog.Context {
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str(FieldRequestID, id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		lc = lc.Str(FieldCorrelationID, id)
	}
	return lc
}

// Ctx is CtxWith(ctx).Logger() for one-off events.
//
//	logging.Ctx(r.Context()).Debug().Str("genre", genre).Msg("Query served")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := CtxWith(ctx).Logger()
	return &l
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
