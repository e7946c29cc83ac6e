// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService translates http.Server's blocking ListenAndServe into
// suture's context-aware Serve: cancelling the context performs a graceful
// Shutdown, and an unexpected listener failure is returned so the
// supervisor restarts the server with backoff.
package services
