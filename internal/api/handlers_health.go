// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/steamlens/internal/models"
)

// Health handles GET /health
//
// @Summary Service health
// @Description Returns version, uptime, snapshot load time and per-table row and column counts.
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.healthStatus())
}

// HealthLive handles GET /health/live. It answers 200 while the process runs.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /health/ready. It answers 503 until a snapshot is
// attached.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.ErrorResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.healthStatus()
	if !status.SnapshotLoaded {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotReady, "snapshot not loaded")
		return
	}
	respondJSON(w, r, http.StatusOK, status)
}

func (h *Handler) healthStatus() models.HealthStatus {
	status := models.HealthStatus{
		Status:  "starting",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if h.svc == nil || h.svc.Store() == nil {
		return status
	}

	store := h.svc.Store()
	status.Status = "healthy"
	status.SnapshotLoaded = true
	status.LoadedAt = store.LoadedAt()
	status.LoadDurationMS = store.LoadDuration().Milliseconds()
	status.Tables = store.Stats()
	return status
}
