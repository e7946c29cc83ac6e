// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package main provides the entry point for steamlens-cli, the offline
// query tool for SteamLens snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/steamlens/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
