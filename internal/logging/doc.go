// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package logging provides centralized zerolog-based logging for SteamLens.
//
// A single global zerolog logger is configured once from main:
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	    Caller: cfg.Logging.Caller,
//	})
//
//	logging.Info().Int("rows", n).Msg("Snapshot loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Query failed")
//
// Request and correlation IDs travel in the context (see ContextWithRequestID)
// and are added automatically by Ctx. SlogHandler bridges slog-only libraries
// such as sutureslog into the same output, and QueryLogger gives analytics
// queries a uniform set of fields.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
