// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package command provides the steamlens-cli command definitions.
//
// The CLI loads the parquet snapshot directly, with the same configuration
// sources as the server, and runs one analytics query per invocation. Each
// query prints the JSON body the HTTP API would return for the same input,
// so it doubles as a quick way to check a new snapshot before deploying it.
//
//	steamlens-cli --snapshot-dir ./data users-recommend 2015
//	steamlens-cli --pretty recommend-user 76561197970982479
//	steamlens-cli tables
//
// Failures print {"detail", "code"} to stderr and exit with status 1.
package command
