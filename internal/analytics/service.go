// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/snapshot"
)

// Query names, shared by metrics labels, logs and routes.
const (
	OpPlayTimeGenre     = "play_time_genre"
	OpUserForGenre      = "user_for_genre"
	OpUsersRecommend    = "users_recommend"
	OpUsersNotRecommend = "users_not_recommend"
	OpSentimentAnalysis = "sentiment_analysis"
	OpRecommendGame     = "recomendacion_juego"
	OpRecommendUser     = "recomendacion_usuario"
)

// Service answers analytics queries over an immutable snapshot store.
// It is safe for concurrent use.
type Service struct {
	store *snapshot.Store
	log   *logging.QueryLogger
}

// NewService creates a Service reading from store.
func NewService(store *snapshot.Store) *Service {
	return &Service{store: store, log: logging.NewQueryLogger()}
}

// Store returns the snapshot the service reads from.
func (s *Service) Store() *snapshot.Store {
	return s.store
}

// Genres lists the genre names accepted by the genre queries.
func (s *Service) Genres() []string {
	return s.store.Genres()
}

// run executes fn with timing, panic recovery, metrics and logging. Every
// error leaving run is a *QueryError.
func run[T any](ctx context.Context, s *Service, op string, fn func() (T, error)) (result T, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = &QueryError{Op: op, Kind: KindUnexpected, Message: "internal error", Err: fmt.Errorf("panic: %v", r)}
		}

		elapsed := time.Since(start)
		if err == nil {
			metrics.RecordQuery(op, "", elapsed)
			s.log.Served(ctx, op, elapsed)
			return
		}

		var qe *QueryError
		if !errors.As(err, &qe) {
			qe = &QueryError{Op: op, Kind: KindUnexpected, Message: "query failed", Err: err}
			err = qe
		}
		metrics.RecordQuery(op, qe.Kind.String(), elapsed)
		s.log.Failed(ctx, op, qe.Kind.String(), err, elapsed)
	}()

	if cerr := ctx.Err(); cerr != nil {
		var zero T
		return zero, &QueryError{Op: op, Kind: KindUnexpected, Message: "request cancelled", Err: cerr}
	}

	return fn()
}
