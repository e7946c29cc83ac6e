// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package supervisor runs SteamLens services under a suture v4 tree.

Services implement suture.Service (Serve(ctx) error). A service that returns
an error is restarted; after FailureThreshold failures within the decay
window the supervisor backs off for FailureBackoff. Cancelling the context
passed to Serve stops every service, each bounded by ShutdownTimeout.

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog using the zerolog-backed slog handler from internal/logging:

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, addr, timeout))
	err := tree.Serve(ctx)
*/
package supervisor
