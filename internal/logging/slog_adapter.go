// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
)

// SlogHandler implements slog.Handler on top of zerolog so that slog-only
// libraries (sutureslog) end up in the same log stream.
//
// Attributes given to WithAttrs are rendered into the wrapped logger at
// once. Groups become dotted key prefixes: WithGroup("event") followed by
// attempt=3 logs "event.attempt":3.
type SlogHandler struct {
	logger zerolog.Logger
	prefix string
}

// NewSlogHandler wraps the global zerolog logger.
func NewSlogHandler() *SlogHandler {
	return NewSlogHandlerWithLogger(Logger())
}

// NewSlogHandlerWithLogger wraps the given zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandlerWithLogger(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := slogToZerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))
	record.Attrs(func(attr slog.Attr) bool {
		event = appendAttr(event, h.prefix, attr)
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	lc := h.logger.With()
	for _, attr := range attrs {
		lc = appendAttr(lc, h.prefix, attr)
	}
	return &SlogHandler{logger: lc.Logger(), prefix: h.prefix}
}

func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, prefix: h.prefix + name + "."}
}

// fieldWriter is the typed field API shared by *zerolog.Event and
// zerolog.Context.
type fieldWriter[T any] interface {
	Str(key, val string) T
	Int64(key string, i int64) T
	Uint64(key string, i uint64) T
	Float64(key string, f float64) T
	Bool(key string, b bool) T
	Dur(key string, d time.Duration) T
	Time(key string, t time.Time) T
	Interface(key string, i interface{}) T
}

func appendAttr[T fieldWriter[T]](w T, prefix string, attr slog.Attr) T {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return w
	}

	key := prefix + attr.Key
	v := attr.Value
	switch v.Kind() {
	case slog.KindString:
		return w.Str(key, v.String())
	case slog.KindInt64:
		return w.Int64(key, v.Int64())
	case slog.KindUint64:
		return w.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		return w.Float64(key, v.Float64())
	case slog.KindBool:
		return w.Bool(key, v.Bool())
	case slog.KindDuration:
		return w.Dur(key, v.Duration())
	case slog.KindTime:
		return w.Time(key, v.Time())
	case slog.KindGroup:
		// An inline group (empty key) adds its members at the current level.
		nested := prefix
		if attr.Key != "" {
			nested = key + "."
		}
		for _, member := range v.Group() {
			w = appendAttr(w, nested, member)
		}
		return w
	default:
		return w.Interface(key, v.Any())
	}
}

func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// NewSlogLogger returns an slog.Logger on the global zerolog logger, tagged
// with component when it is not empty.
//
//	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), cfg)
func NewSlogLogger(component string) *slog.Logger {
	logger := Logger()
	if component != "" {
		logger = logger.With().Str("component", component).Logger()
	}
	return slog.New(NewSlogHandlerWithLogger(logger))
}
