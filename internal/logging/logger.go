// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level. See ValidLevel for accepted names.
	// Default: info
	Level string

	// Format is json or console.
	// Default: json
	Format string

	Caller    bool
	Timestamp bool

	// Service and Version, when set, are attached to every line so logs
	// from several deployments can share one sink.
	Service string
	Version string

	// Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns the configuration used before Init is called.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// global holds the process logger. Readers never block writers.
var (
	global     atomic.Pointer[zerolog.Logger]
	fieldNames sync.Once
)

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	Init(DefaultConfig())
}

// Init builds a logger from cfg and installs it as the global logger.
// It may be called again, for example once configuration is loaded.
func Init(cfg Config) {
	fieldNames.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		zerolog.TimestampFieldName = "time"
		zerolog.MessageFieldName = "message"
	})
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	l := New(cfg)
	global.Store(&l)
}

// New builds a logger from cfg without touching the global one.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	if cfg.Version != "" {
		ctx = ctx.Str("version", cfg.Version)
	}
	return ctx.Logger()
}

var levelAliases = map[string]zerolog.Level{
	"warning": zerolog.WarnLevel,
}

func lookupLevel(level string) (zerolog.Level, bool) {
	name := strings.ToLower(strings.TrimSpace(level))
	if l, ok := levelAliases[name]; ok {
		return l, true
	}
	if name == "" {
		return zerolog.InfoLevel, false
	}
	l, err := zerolog.ParseLevel(name)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel, false
	}
	return l, true
}

// parseLevel maps a level name to zerolog; unknown names fall back to info.
func parseLevel(level string) zerolog.Level {
	l, _ := lookupLevel(level)
	return l
}

// ValidLevel reports whether level is trace, debug, info, warn (or warning),
// error, fatal, panic or disabled, ignoring case.
func ValidLevel(level string) bool {
	_, ok := lookupLevel(level)
	return ok
}

func current() *zerolog.Logger {
	return global.Load()
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger { return *current() }

// SetLogger replaces the global logger. Mostly useful in tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) { global.Store(&l) }

// With starts a child logger of the global logger.
//
//	loaderLogger := logging.With().Str("table", name).Logger()
func With() zerolog.Context { return current().With() }

func Debug() *zerolog.Event { return current().Debug() }

// Info starts an info level event on the global logger.
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
func Info() *zerolog.Event { return current().Info() }

func Warn() *zerolog.Event { return current().Warn() }

func Error() *zerolog.Event { return current().Error() }

// Fatal logs and then calls os.Exit(1). Only main should use it.
func Fatal() *zerolog.Event { return current().Fatal() }

// Err starts an error level event carrying err, or an info event when err is nil.
func Err(err error) *zerolog.Event { return current().Err(err) }

// GetLevel returns the process wide minimum level.
func GetLevel() zerolog.Level { return zerolog.GlobalLevel() }

// SetLevelString changes the process wide minimum level.
func SetLevelString(level string) { zerolog.SetGlobalLevel(parseLevel(level)) }

// NewTestLogger creates a JSON logger writing to w.
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
