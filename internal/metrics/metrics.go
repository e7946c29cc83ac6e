// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// Snapshot Metrics
	SnapshotTableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "snapshot_table_rows",
			Help: "Number of rows loaded per snapshot table",
		},
		[]string{"table"},
	)

	SnapshotLoadDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "snapshot_load_duration_seconds",
			Help: "Time spent reading each snapshot table at startup",
		},
		[]string{"table"},
	)

	SnapshotLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_loaded_timestamp_seconds",
			Help: "Unix time at which the snapshot store finished loading",
		},
	)

	// Query Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "query_duration_seconds",
			Help:    "Duration of analytics queries over the snapshot store",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"query"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_errors_total",
			Help: "Total number of failed analytics queries by error kind",
		},
		[]string{"query", "kind"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSnapshotTable records the size and read time of one snapshot table.
func RecordSnapshotTable(table string, rows int, duration time.Duration) {
	SnapshotTableRows.WithLabelValues(table).Set(float64(rows))
	SnapshotLoadDuration.WithLabelValues(table).Set(duration.Seconds())
}

// RecordSnapshotLoaded marks the time the store became ready.
func RecordSnapshotLoaded(at time.Time) {
	SnapshotLoadedTimestamp.Set(float64(at.Unix()))
}

// RecordQuery records an analytics query. kind is empty on success.
func RecordQuery(query, kind string, duration time.Duration) {
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if kind != "" {
		QueryErrors.WithLabelValues(query, kind).Inc()
	}
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
