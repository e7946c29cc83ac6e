// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/steamlens/internal/metrics"
)

func chiAdapt(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chiAdapt(PrometheusMetrics))
	r.Get("/sentiment_analysis/{year}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/sentiment_analysis/{year}", "400")
	before := testutil.ToFloat64(counter)

	for _, year := range []string{"2015", "2016"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sentiment_analysis/"+year, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("requests recorded under route pattern = %v, want 2", got)
	}
}

func TestPrometheusMetrics_Unmatched(t *testing.T) {
	counter := metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/router", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched requests recorded = %v, want 1", got)
	}
}

func TestPrometheusMetrics_ActiveRequestsReturnToZero(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	before := testutil.ToFloat64(metrics.APIActiveRequests)

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	if after := testutil.ToFloat64(metrics.APIActiveRequests); after != before {
		t.Errorf("active requests = %v after request, want %v", after, before)
	}
}

func TestStatusRecorder_FirstWriteHeaderWins(t *testing.T) {
	t.Parallel()

	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
	rec.WriteHeader(http.StatusBadRequest)
	rec.WriteHeader(http.StatusInternalServerError)

	if rec.statusCode != http.StatusBadRequest {
		t.Errorf("statusCode = %d, want 400", rec.statusCode)
	}
	if rec.Unwrap() == nil {
		t.Error("Unwrap() returned nil")
	}
}
