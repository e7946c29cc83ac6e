// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package validation checks request input with go-playground/validator v10.
//
// The API only takes path parameters, so the package exposes one parser per
// parameter kind:
//
//	year, verr := validation.ParseYear(chi.URLParam(r, "year"))
//	if verr != nil {
//	    respondError(w, r, verr.Code(), verr.Error())
//	    return
//	}
//
// Field names in messages come from the `param` struct tag, so a bad year
// reads "year must be a non-negative integer" rather than naming the Go field.
//
// The validator is a process-wide singleton. validator.Validate caches struct
// metadata and is safe for concurrent use.
package validation
