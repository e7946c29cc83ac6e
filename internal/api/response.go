// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/validation"
)

// Error codes outside the query error kinds.
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeNotReady         = "SERVICE_UNAVAILABLE"
)

// respondJSON writes v as JSON. Successful bodies carry an ETag so clients
// can revalidate with If-None-Match; the snapshot never changes while the
// process runs.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusOK {
		etag := `"` + generateETag(data) + `"`
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=60")
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag hashes data with FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError writes the uniform error body.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondJSON(w, r, status, models.ErrorResponse{
		Detail:    message,
		Code:      code,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

// respondQueryError maps any query failure to 400 with the kind's code.
// The message of unexpected failures is generic; the cause is only logged.
func respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	var qe *analytics.QueryError
	if !errors.As(err, &qe) {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Untyped query error")
		respondError(w, r, http.StatusBadRequest, analytics.KindUnexpected.Code(), "unexpected error")
		return
	}
	respondError(w, r, http.StatusBadRequest, qe.Kind.Code(), qe.Message)
}

// respondValidationError writes a 400 VALIDATION_ERROR for bad path input.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	logging.Ctx(r.Context()).Debug().
		Str("path", sanitizeLogValue(r.URL.Path)).
		Str("error", sanitizeLogValue(verr.Error())).
		Msg("Rejected request parameters")
	respondError(w, r, http.StatusBadRequest, verr.Code(), verr.Error())
}

// sanitizeLogValue escapes control characters to prevent log injection.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
