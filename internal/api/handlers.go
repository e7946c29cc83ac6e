// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/steamlens/internal/analytics"
)

// Handler serves the SteamLens endpoints.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, shared helpers (this file)
//   - handlers_analytics.go: the seven query endpoints and /genres
//   - handlers_health.go: health and readiness probes
type Handler struct {
	svc       *analytics.Service
	version   string
	startTime time.Time
}

// NewHandler creates a Handler answering queries with svc. A nil svc is
// accepted and reported as not ready by the health endpoints.
//
//	handler := api.NewHandler(svc, version)
//	router := api.NewRouter(handler, &cfg.Security)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(svc *analytics.Service, version string) *Handler {
	return &Handler{
		svc:       svc,
		version:   version,
		startTime: time.Now(),
	}
}

// pathParam returns the decoded value of a chi URL parameter. chi reads
// RawPath when the request carried escapes it could not round-trip, in which
// case the segment is still percent-encoded.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// writeResult writes result on success and the mapped query error otherwise.
func writeResult(w http.ResponseWriter, r *http.Request, result any, err error) {
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

// requireSnapshot rejects query requests with 503 while no service is attached.
func (h *Handler) requireSnapshot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.svc == nil {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotReady, "snapshot not loaded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
