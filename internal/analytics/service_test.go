// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/snapshot"
)

func genreTable() *models.GenrePlaytimeTable {
	return &models.GenrePlaytimeTable{
		Genres: []string{"Action", "Indie", "Casual"},
		Rows: []models.GenrePlaytimeRow{
			{UserID: "u1", ReleaseYear: 2010, Playtime: 5, Genres: []bool{true, false, false}},
			{UserID: "u2", ReleaseYear: 2012, Playtime: 9, Genres: []bool{true, true, false}},
			{UserID: "u1", ReleaseYear: 2012, Playtime: 3, Genres: []bool{true, false, false}},
			{UserID: "u3", ReleaseYear: 2011, Playtime: 4, Genres: []bool{false, true, false}},
		},
	}
}

func recommendationsTable() *models.RecommendationsTable {
	row := func(app string, year int, rec bool, sentiment int) models.RecommendationRow {
		return models.RecommendationRow{AppName: app, ReleaseYear: year, Recommend: rec, Sentiment: sentiment}
	}
	return &models.RecommendationsTable{Rows: []models.RecommendationRow{
		row("AppA", 2015, true, 2),
		row("AppB", 2015, true, 1),
		row("AppA", 2015, true, 2),
		row("AppC", 2015, true, 0),
		row("AppD", 2015, false, 0),
		row("AppE", 2015, false, 0),
		row("AppD", 2015, false, 2),
		row("AppF", 2015, false, -1),
		row("AppA", 2016, true, 2),
		row("", 2016, true, 2),
		row("AppB", 2016, true, 7),
	}}
}

func gameMatrix() *models.SimilarityMatrix {
	labels := []string{"10", "20", "30", "40", "50", "60", "70"}
	// Column "10": self 1, then 20 and 30 tie, 40 is NaN.
	col10 := []float64{1, 0.8, 0.8, math.NaN(), 0.5, 0.4, 0.3}
	identity := func(i int) []float64 {
		c := make([]float64, len(labels))
		c[i] = 1
		return c
	}
	values := [][]float64{col10}
	for i := 1; i < len(labels); i++ {
		values = append(values, identity(i))
	}
	return &models.SimilarityMatrix{Labels: labels, Columns: labels, Values: values}
}

func userMatrix() *models.SimilarityMatrix {
	labels := []string{"alice", "bob", "carol", "dave"}
	return &models.SimilarityMatrix{
		Labels:  labels,
		Columns: labels,
		Values: [][]float64{
			{1, 0.9, 0.2, 0.5},
			{0.9, 1, 0.1, 0.1},
			{0.2, 0.1, 1, 0.1},
			{0.5, 0.1, 0.1, 1},
		},
	}
}

func newTestService() *Service {
	return NewService(snapshot.New(snapshot.Tables{
		GenrePlaytime:   genreTable(),
		Recommendations: recommendationsTable(),
		GameSimilarity:  gameMatrix(),
		UserSimilarity:  userMatrix(),
		Interactions: &models.InteractionsTable{Rows: []models.InteractionRow{
			{UserID: "dave", ItemID: "300", AppName: "Terraria"},
			{UserID: "bob", ItemID: "100", AppName: "Portal"},
			{UserID: "alice", ItemID: "999", AppName: "Own Game"},
			{UserID: "bob", ItemID: "200", AppName: "Dota 2"},
			{UserID: "dave", ItemID: "100", AppName: "Portal"},
		}},
		Catalog: &models.CatalogTable{Rows: []models.CatalogRow{
			{ItemID: "20", AppName: "Twenty"},
			{ItemID: "30", AppName: "Thirty"},
			{ItemID: "30", AppName: "Twenty"},
			{ItemID: "50", AppName: "Fifty"},
			{ItemID: "60", AppName: "Sixty"},
		}},
	}))
}

func TestPlayTimeGenre(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.PlayTimeGenre(context.Background(), "Action")
	if err != nil {
		t.Fatalf("PlayTimeGenre() error = %v", err)
	}
	if got.Year != 2012 || got.Genre != "Action" {
		t.Errorf("PlayTimeGenre(Action) = %+v, want year 2012", got)
	}
}

func TestPlayTimeGenre_Errors(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	_, err := svc.PlayTimeGenre(context.Background(), "Racing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown genre: err = %v, want ErrNotFound", err)
	}

	_, err = svc.PlayTimeGenre(context.Background(), "Casual")
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("genre without rows: err = %v, want ErrEmptyResult", err)
	}
}

func TestPlayTimeGenre_TieGoesToEarliestYear(t *testing.T) {
	t.Parallel()
	svc := NewService(snapshot.New(snapshot.Tables{GenrePlaytime: &models.GenrePlaytimeTable{
		Genres: []string{"Action"},
		Rows: []models.GenrePlaytimeRow{
			{UserID: "u1", ReleaseYear: 2014, Playtime: 7, Genres: []bool{true}},
			{UserID: "u2", ReleaseYear: 2009, Playtime: 7, Genres: []bool{true}},
		},
	}}))

	got, err := svc.PlayTimeGenre(context.Background(), "Action")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year != 2009 {
		t.Errorf("Year = %d, want 2009", got.Year)
	}
}

func TestUserForGenre(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.UserForGenre(context.Background(), "Action")
	if err != nil {
		t.Fatalf("UserForGenre() error = %v", err)
	}
	if got.UserID != "u2" {
		t.Errorf("UserID = %q, want u2", got.UserID)
	}
	want := []models.YearPlaytime{{ReleaseYear: 2012, Playtime: 9}}
	if !reflect.DeepEqual(got.Hours, want) {
		t.Errorf("Hours = %+v, want %+v", got.Hours, want)
	}
}

func TestUserForGenre_HoursSortedByYear(t *testing.T) {
	t.Parallel()
	svc := NewService(snapshot.New(snapshot.Tables{GenrePlaytime: &models.GenrePlaytimeTable{
		Genres: []string{"Indie"},
		Rows: []models.GenrePlaytimeRow{
			{UserID: "b", ReleaseYear: 2015, Playtime: 2, Genres: []bool{true}},
			{UserID: "b", ReleaseYear: 2011, Playtime: 3, Genres: []bool{true}},
			{UserID: "a", ReleaseYear: 2011, Playtime: 5, Genres: []bool{true}},
			{UserID: "b", ReleaseYear: 2015, Playtime: math.NaN(), Genres: []bool{true}},
		},
	}}))

	got, err := svc.UserForGenre(context.Background(), "Indie")
	if err != nil {
		t.Fatal(err)
	}
	// a and b tie at 5; the lexically smaller id wins.
	if got.UserID != "a" {
		t.Errorf("UserID = %q, want a", got.UserID)
	}

	svc = NewService(snapshot.New(snapshot.Tables{GenrePlaytime: &models.GenrePlaytimeTable{
		Genres: []string{"Indie"},
		Rows: []models.GenrePlaytimeRow{
			{UserID: "b", ReleaseYear: 2015, Playtime: 2, Genres: []bool{true}},
			{UserID: "b", ReleaseYear: 2011, Playtime: 3, Genres: []bool{true}},
			{UserID: "b", ReleaseYear: 2015, Playtime: 1, Genres: []bool{true}},
		},
	}}))
	got, err = svc.UserForGenre(context.Background(), "Indie")
	if err != nil {
		t.Fatal(err)
	}
	want := []models.YearPlaytime{{ReleaseYear: 2011, Playtime: 3}, {ReleaseYear: 2015, Playtime: 3}}
	if !reflect.DeepEqual(got.Hours, want) {
		t.Errorf("Hours = %+v, want %+v", got.Hours, want)
	}
}

func TestUsersRecommend(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.UsersRecommend(context.Background(), 2015)
	if err != nil {
		t.Fatalf("UsersRecommend() error = %v", err)
	}
	want := models.Podium{"AppA", "AppB", "AppC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UsersRecommend(2015) = %v, want %v", got, want)
	}
}

func TestUsersRecommend_FewerThanThreeGames(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// 2016 has AppA, AppB and an empty name which does not count.
	for _, year := range []int{2016, 1999} {
		_, err := svc.UsersRecommend(context.Background(), year)
		if KindOf(err) != KindEmptyResult {
			t.Errorf("UsersRecommend(%d) kind = %v, want empty_result", year, KindOf(err))
		}
	}
}

func TestUsersNotRecommend(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.UsersNotRecommend(context.Background(), 2015)
	if err != nil {
		t.Fatalf("UsersNotRecommend() error = %v", err)
	}
	// E and F have one each (first-seen order), D has two.
	want := models.Podium{"AppE", "AppF", "AppD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UsersNotRecommend(2015) = %v, want %v", got, want)
	}
}

func TestSentimentAnalysis(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.SentimentAnalysis(context.Background(), 2015)
	if err != nil {
		t.Fatal(err)
	}
	want := models.SentimentTally{Negative: 3, Neutral: 1, Positive: 3}
	if got != want {
		t.Errorf("SentimentAnalysis(2015) = %+v, want %+v", got, want)
	}

	// Unknown code 7 is ignored.
	got, _ = svc.SentimentAnalysis(context.Background(), 2016)
	if got.Total() != 2 || got.Positive != 2 {
		t.Errorf("SentimentAnalysis(2016) = %+v", got)
	}

	got, err = svc.SentimentAnalysis(context.Background(), 1990)
	if err != nil || got.Total() != 0 {
		t.Errorf("year without reviews = %+v, %v; want zeros", got, err)
	}
}

func TestReviews_NullRecommendCountsOnlyTowardsSentiment(t *testing.T) {
	t.Parallel()

	rows := []models.RecommendationRow{
		{AppName: "AppA", ReleaseYear: 2015, Recommend: true, Sentiment: 2},
		{AppName: "AppB", ReleaseYear: 2015, Recommend: true, Sentiment: 1},
		{AppName: "AppC", ReleaseYear: 2015, Recommend: true, Sentiment: 0},
		{AppName: "AppX", ReleaseYear: 2015, RecommendUnknown: true, Sentiment: 2},
		{AppName: "AppX", ReleaseYear: 2015, RecommendUnknown: true, Sentiment: 2},
		{AppName: "AppY", ReleaseYear: 2015, RecommendUnknown: true, Sentiment: 0},
	}
	svc := NewService(snapshot.New(snapshot.Tables{
		Recommendations: &models.RecommendationsTable{Rows: rows},
	}))

	tally, err := svc.SentimentAnalysis(context.Background(), 2015)
	if err != nil {
		t.Fatal(err)
	}
	if tally.Total() != len(rows) {
		t.Errorf("sentiment total = %d, want %d rows", tally.Total(), len(rows))
	}
	if want := (models.SentimentTally{Negative: 2, Neutral: 1, Positive: 3}); tally != want {
		t.Errorf("SentimentAnalysis(2015) = %+v, want %+v", tally, want)
	}

	got, err := svc.UsersRecommend(context.Background(), 2015)
	if err != nil {
		t.Fatalf("UsersRecommend() error = %v", err)
	}
	if want := (models.Podium{"AppA", "AppB", "AppC"}); !reflect.DeepEqual(got, want) {
		t.Errorf("UsersRecommend(2015) = %v, want %v", got, want)
	}

	// Unknown flags are not negative reviews either.
	_, err = svc.UsersNotRecommend(context.Background(), 2015)
	if KindOf(err) != KindEmptyResult {
		t.Errorf("UsersNotRecommend(2015) kind = %v, want empty_result", KindOf(err))
	}
}

func TestRecommendGame(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.RecommendGame(context.Background(), "10")
	if err != nil {
		t.Fatalf("RecommendGame() error = %v", err)
	}
	// Ranked ids: 20, 30 (tie, row order), 50, 60, 70, then NaN 40.
	// Top five: 20 30 50 60 70; 30 adds Thirty and a duplicate Twenty; 70 has no name.
	want := []string{"Twenty", "Thirty", "Fifty", "Sixty"}
	if !reflect.DeepEqual(got.Games, want) {
		t.Errorf("RecommendGame(10) = %v, want %v", got.Games, want)
	}
	if len(got.Games) > maxRecommendations {
		t.Errorf("got %d games, want at most %d", len(got.Games), maxRecommendations)
	}
}

func TestRecommendGame_NotFound(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	_, err := svc.RecommendGame(context.Background(), "12345")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecommendGame_CapsNamesWhenIDsShareNames(t *testing.T) {
	t.Parallel()

	labels := []string{"1", "2", "3", "4", "5", "6"}
	values := make([][]float64, len(labels))
	for j := range values {
		values[j] = make([]float64, len(labels))
		for i := range values[j] {
			values[j][i] = 1 / float64(1+i)
		}
	}
	var catalog []models.CatalogRow
	for _, id := range labels[1:] {
		catalog = append(catalog,
			models.CatalogRow{ItemID: id, AppName: "G" + id},
			models.CatalogRow{ItemID: id, AppName: "G" + id + " (Deluxe)"},
		)
	}
	svc := NewService(snapshot.New(snapshot.Tables{
		GameSimilarity: &models.SimilarityMatrix{Labels: labels, Columns: labels, Values: values},
		Catalog:        &models.CatalogTable{Rows: catalog},
	}))

	got, err := svc.RecommendGame(context.Background(), "1")
	if err != nil {
		t.Fatalf("RecommendGame() error = %v", err)
	}
	want := []string{"G2", "G2 (Deluxe)", "G3", "G3 (Deluxe)", "G4"}
	if !reflect.DeepEqual(got.Games, want) {
		t.Errorf("RecommendGame(1) = %v, want %v", got.Games, want)
	}
}

func TestCollectNames_Limit(t *testing.T) {
	t.Parallel()

	idx := snapshot.New(snapshot.Tables{Catalog: &models.CatalogTable{Rows: []models.CatalogRow{
		{ItemID: "a", AppName: "A1"}, {ItemID: "a", AppName: "A2"}, {ItemID: "b", AppName: "B"},
	}}}).CatalogNames()
	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 0, want: []string{}},
		{limit: 1, want: []string{"A1"}},
		{limit: 2, want: []string{"A1", "A2"}},
		{limit: 5, want: []string{"A1", "A2", "B"}},
	}
	for _, tt := range tests {
		if got := collectNames(idx, []string{"a", "b"}, tt.limit); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("collectNames(limit=%d) = %v, want %v", tt.limit, got, tt.want)
		}
	}
}

func TestRankSimilar_NaNLastAndSelfExcluded(t *testing.T) {
	t.Parallel()

	m := snapshot.NewMatrix(gameMatrix())
	got, err := rankSimilar(OpRecommendGame, "item", m, "10")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"20", "30", "50", "60", "70", "40"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rankSimilar() = %v, want %v", got, want)
	}
}

func TestRankSimilar_SelfExcludedByIdentityNotRank(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "c", "d"}
	tests := []struct {
		name   string
		column []float64
		want   []string
	}{
		{"other label outranks self", []float64{0.9, 0.5, 0.95, 0.1}, []string{"c", "a", "d"}},
		{"tie with self", []float64{0.7, 0.7, 0.7, 0.2}, []string{"a", "c", "d"}},
		{"self scores NaN", []float64{0.3, math.NaN(), 0.6, 0.1}, []string{"c", "a", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([][]float64, len(labels))
			for j := range values {
				values[j] = make([]float64, len(labels))
			}
			values[1] = tt.column
			m := snapshot.NewMatrix(&models.SimilarityMatrix{Labels: labels, Columns: labels, Values: values})

			got, err := rankSimilar(OpRecommendGame, "item", m, "b")
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rankSimilar(b) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommendUser(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got, err := svc.RecommendUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("RecommendUser() error = %v", err)
	}
	// Ranking: bob (0), dave (1), carol (2). Item 100 is first seen on
	// bob's row, so it takes bob's rank ahead of dave's item 300.
	want := []string{"Portal", "Dota 2", "Terraria"}
	if !reflect.DeepEqual(got.Games, want) {
		t.Errorf("RecommendUser(alice) = %v, want %v", got.Games, want)
	}
	for _, g := range got.Games {
		if g == "Own Game" {
			t.Error("user's own interactions must not be recommended")
		}
	}
}

func TestRecommendUser_NoInteractionsIsEmptyList(t *testing.T) {
	t.Parallel()
	svc := NewService(snapshot.New(snapshot.Tables{UserSimilarity: userMatrix()}))

	got, err := svc.RecommendUser(context.Background(), "carol")
	if err != nil {
		t.Fatalf("RecommendUser() error = %v", err)
	}
	if got.Games == nil || len(got.Games) != 0 {
		t.Errorf("Games = %#v, want empty non-nil list", got.Games)
	}
}

func TestRecommendUser_NotFound(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	_, err := svc.RecommendUser(context.Background(), "mallory")
	if KindOf(err) != KindNotFound {
		t.Errorf("kind = %v, want not_found", KindOf(err))
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	_, err := run(context.Background(), svc, "panicky", func() (int, error) {
		var m map[string]int
		m["boom"]++
		panic("unreachable")
	})
	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("err = %v, want *QueryError", err)
	}
	if qe.Kind != KindUnexpected || qe.Op != "panicky" {
		t.Errorf("QueryError = %+v", qe)
	}
}

func TestRun_WrapsPlainErrors(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	cause := errors.New("disk on fire")
	_, err := run(context.Background(), svc, "plain", func() (int, error) { return 0, cause })
	if !errors.Is(err, ErrUnexpected) || !errors.Is(err, cause) {
		t.Errorf("err = %v, want unexpected wrapping cause", err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := run(ctx, svc, "cancelled", func() (int, error) { called = true; return 1, nil })
	if called {
		t.Error("fn must not run after cancellation")
	}
	if KindOf(err) != KindUnexpected {
		t.Errorf("kind = %v, want unexpected", KindOf(err))
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		str  string
		code string
	}{
		{KindNotFound, "not_found", "NOT_FOUND"},
		{KindEmptyResult, "empty_result", "EMPTY_RESULT"},
		{KindUnexpected, "unexpected", "UNEXPECTED"},
	}
	for _, tt := range tests {
		if tt.kind.String() != tt.str || tt.kind.Code() != tt.code {
			t.Errorf("Kind %d = %q/%q, want %q/%q", tt.kind, tt.kind.String(), tt.kind.Code(), tt.str, tt.code)
		}
	}
	if KindOf(errors.New("x")) != KindUnexpected {
		t.Error("plain errors should be unexpected")
	}
}

func TestQueriesDoNotMutateSnapshot(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	before := append([]models.InteractionRow(nil), svc.Store().Interactions().Rows...)

	_, _ = svc.RecommendUser(context.Background(), "alice")
	_, _ = svc.RecommendGame(context.Background(), "10")

	if !reflect.DeepEqual(before, svc.Store().Interactions().Rows) {
		t.Error("interactions table changed after queries")
	}
}
