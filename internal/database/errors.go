// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/steamlens/internal/logging"
)

// ErrMissingColumn is returned when a snapshot file lacks a column the
// loader needs.
var ErrMissingColumn = errors.New("missing column")

// missingColumn wraps ErrMissingColumn with the file and column name.
func missingColumn(path, column string) error {
	return fmt.Errorf("%s: %w %q", path, ErrMissingColumn, column)
}

// closeWithLog closes a resource and logs any error.
// Use this for cleanup where errors should be acknowledged but not fail the operation.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
