// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package metrics

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/users_recommend/{year}", "200"))

	RecordAPIRequest("GET", "/users_recommend/{year}", "200", 3*time.Millisecond)
	RecordAPIRequest("GET", "/users_recommend/{year}", "200", 7*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/users_recommend/{year}", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total increased by %v, want 2", after-before)
	}
	if n := testutil.CollectAndCount(APIRequestDuration); n == 0 {
		t.Error("expected api_request_duration_seconds series")
	}
}

// TestTrackActiveRequest tests the active request gauge
func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 2 {
		t.Errorf("active requests = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active requests = %v, want %v", got, start)
	}
}

func TestRecordSnapshotTable(t *testing.T) {
	RecordSnapshotTable("catalog", 1234, 1500*time.Millisecond)

	if got := testutil.ToFloat64(SnapshotTableRows.WithLabelValues("catalog")); got != 1234 {
		t.Errorf("snapshot_table_rows = %v, want 1234", got)
	}
	if got := testutil.ToFloat64(SnapshotLoadDuration.WithLabelValues("catalog")); got != 1.5 {
		t.Errorf("snapshot_load_duration_seconds = %v, want 1.5", got)
	}
}

func TestRecordSnapshotLoaded(t *testing.T) {
	at := time.Unix(1700000000, 0)
	RecordSnapshotLoaded(at)

	if got := testutil.ToFloat64(SnapshotLoadedTimestamp); got != 1700000000 {
		t.Errorf("snapshot_loaded_timestamp_seconds = %v", got)
	}
}

func TestRecordQuery(t *testing.T) {
	before := testutil.ToFloat64(QueryErrors.WithLabelValues("recommend_game", "not_found"))

	RecordQuery("recommend_game", "", time.Millisecond)
	RecordQuery("recommend_game", "not_found", time.Millisecond)

	after := testutil.ToFloat64(QueryErrors.WithLabelValues("recommend_game", "not_found"))
	if after-before != 1 {
		t.Errorf("query_errors_total increased by %v, want 1", after-before)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("v1.2.3")

	if got := testutil.ToFloat64(AppInfo.WithLabelValues("v1.2.3", runtime.Version())); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}
}

// TestConcurrentMetricRecording checks the recorders are safe to call from many goroutines
func TestConcurrentMetricRecording(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/concurrent", "200"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			RecordAPIRequest("GET", "/concurrent", "200", time.Millisecond)
			RecordQuery("sentiment_analysis", "", time.Microsecond)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/concurrent", "200"))
	if after-before != 50 {
		t.Errorf("api_requests_total increased by %v, want 50", after-before)
	}
}
