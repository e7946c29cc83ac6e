// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/snapshot"
)

func testStore() *snapshot.Store {
	rec := func(app string, year int, ok bool, s int) models.RecommendationRow {
		return models.RecommendationRow{AppName: app, ReleaseYear: year, Recommend: ok, Sentiment: s}
	}
	labels := []string{"10", "20", "30"}
	users := []string{"alice", "bob"}
	return snapshot.New(snapshot.Tables{
		GenrePlaytime: &models.GenrePlaytimeTable{
			Genres: []string{"Action", "Free to Play"},
			Rows: []models.GenrePlaytimeRow{
				{UserID: "u1", ReleaseYear: 2010, Playtime: 5, Genres: []bool{true, false}},
				{UserID: "u2", ReleaseYear: 2012, Playtime: 9, Genres: []bool{true, true}},
			},
		},
		Recommendations: &models.RecommendationsTable{Rows: []models.RecommendationRow{
			rec("AppA", 2015, true, 2),
			rec("AppA", 2015, true, 2),
			rec("AppB", 2015, true, 1),
			rec("AppC", 2015, true, 0),
			rec("AppA", 2016, true, 2),
		}},
		GameSimilarity: &models.SimilarityMatrix{
			Labels:  labels,
			Columns: labels,
			Values:  [][]float64{{1, 0.2, 0.9}, {0.2, 1, 0.1}, {0.9, 0.1, 1}},
		},
		UserSimilarity: &models.SimilarityMatrix{
			Labels:  users,
			Columns: users,
			Values:  [][]float64{{1, 0.5}, {0.5, 1}},
		},
		Interactions: &models.InteractionsTable{Rows: []models.InteractionRow{
			{UserID: "bob", ItemID: "30", AppName: "Thirty"},
		}},
		Catalog: &models.CatalogTable{Rows: []models.CatalogRow{
			{ItemID: "20", AppName: "Twenty"},
			{ItemID: "30", AppName: "Thirty"},
		}},
	})
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	handler := NewHandler(analytics.NewService(testStore()), "test")
	return NewRouter(handler, &config.SecurityConfig{
		CORSOrigins:       []string{"*"},
		RateLimitDisabled: true,
	}).SetupChi()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestQueryEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		path string
		want string
	}{
		{"/play_time_genre/Action", `{"Año de lanzamiento con más horas jugadas para Género Action":2012}`},
		{"/play_time_genre/Free%20to%20Play", `{"Año de lanzamiento con más horas jugadas para Género Free to Play":2012}`},
		{"/user_for_genre/Action", `{"Usuario con más horas jugadas para Género Action":"u2","Horas jugadas":[{"release_year":2012,"playtime_forever":9}]}`},
		{"/users_recommend/2015", `[{"Puesto 1":"AppA"},{"Puesto 2":"AppB"},{"Puesto 3":"AppC"}]`},
		{"/sentiment_analysis/2015", `{"Negative":1,"Neutral":1,"Positive":2}`},
		{"/sentiment_analysis/1980", `{"Negative":0,"Neutral":0,"Positive":0}`},
		{"/recomendacion_juego/10", `{"Juegos recomendados":["Thirty","Twenty"]}`},
		{"/recomendacion_usuario/alice", `{"Juegos recomendados":["Thirty"]}`},
		{"/recomendacion_usuario/bob", `{"Juegos recomendados":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := get(t, router, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.want {
				t.Errorf("body = %s\nwant   %s", got, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestQueryEndpoints_Errors(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		path string
		code string
	}{
		{"/play_time_genre/Racing", "NOT_FOUND"},
		{"/user_for_genre/Racing", "NOT_FOUND"},
		{"/users_recommend/2016", "EMPTY_RESULT"},
		{"/users_not_recommend/2015", "EMPTY_RESULT"},
		{"/users_recommend/20x5", "VALIDATION_ERROR"},
		{"/sentiment_analysis/abc", "VALIDATION_ERROR"},
		{"/recomendacion_juego/abc", "VALIDATION_ERROR"},
		{"/recomendacion_juego/999", "NOT_FOUND"},
		{"/recomendacion_usuario/mallory", "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("X-Request-ID", "req-"+tt.code)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
			var body models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid error body: %v", err)
			}
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if body.Detail == "" {
				t.Error("detail must not be empty")
			}
			if body.RequestID != "req-"+tt.code {
				t.Errorf("request_id = %q", body.RequestID)
			}
		})
	}
}

func TestGenres(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/genres")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list models.GenreList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 2 || list.Genres[1] != "Free to Play" {
		t.Errorf("genres = %+v", list)
	}
}

func TestETagRevalidation(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	first := get(t, router, "/users_recommend/2015")
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag on success")
	}

	req := httptest.NewRequest(http.MethodGet, "/users_recommend/2015", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Error("304 must have no body")
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := get(t, router, "/nope")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), ErrCodeNotFound) {
		t.Errorf("unknown route: %d %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/genres", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /genres status = %d, want 405", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/genres")
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}
