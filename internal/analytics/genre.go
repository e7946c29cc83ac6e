// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"math"
	"sort"

	"github.com/tomtom215/steamlens/internal/models"
)

// PlayTimeGenre returns the release year with the highest total playtime
// among rows tagged with genre. Ties go to the earliest year.
func (s *Service) PlayTimeGenre(ctx context.Context, genre string) (models.GenreYearLeader, error) {
	return run(ctx, s, OpPlayTimeGenre, func() (models.GenreYearLeader, error) {
		rows, err := s.genreRows(OpPlayTimeGenre, genre)
		if err != nil {
			return models.GenreYearLeader{}, err
		}

		byYear := sumByYear(rows)
		years := sortedKeys(byYear)
		best := years[0]
		for _, y := range years[1:] {
			if byYear[y] > byYear[best] {
				best = y
			}
		}
		return models.GenreYearLeader{Genre: genre, Year: best}, nil
	})
}

// UserForGenre returns the user with the highest total playtime in genre,
// with that user's playtime per release year in ascending year order. Ties
// go to the lexically smallest user id.
func (s *Service) UserForGenre(ctx context.Context, genre string) (models.GenreUserLeader, error) {
	return run(ctx, s, OpUserForGenre, func() (models.GenreUserLeader, error) {
		rows, err := s.genreRows(OpUserForGenre, genre)
		if err != nil {
			return models.GenreUserLeader{}, err
		}

		byUser := make(map[string]float64)
		for _, r := range rows {
			byUser[r.UserID] += playtime(r)
		}
		users := sortedKeys(byUser)
		best := users[0]
		for _, u := range users[1:] {
			if byUser[u] > byUser[best] {
				best = u
			}
		}

		var mine []models.GenrePlaytimeRow
		for _, r := range rows {
			if r.UserID == best {
				mine = append(mine, r)
			}
		}
		byYear := sumByYear(mine)
		hours := make([]models.YearPlaytime, 0, len(byYear))
		for _, y := range sortedKeys(byYear) {
			hours = append(hours, models.YearPlaytime{ReleaseYear: y, Playtime: byYear[y]})
		}

		return models.GenreUserLeader{Genre: genre, UserID: best, Hours: hours}, nil
	})
}

// genreRows returns the rows with genre set, or NotFound / EmptyResult.
func (s *Service) genreRows(op, genre string) ([]models.GenrePlaytimeRow, error) {
	table := s.store.GenrePlaytime()
	idx := table.GenreIndex(genre)
	if idx < 0 {
		return nil, notFound(op, "genre %q not found", genre)
	}

	var rows []models.GenrePlaytimeRow
	for _, r := range table.Rows {
		if idx < len(r.Genres) && r.Genres[idx] {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, emptyResult(op, "no playtime recorded for genre %q", genre)
	}
	return rows, nil
}

// playtime treats NaN as zero.
func playtime(r models.GenrePlaytimeRow) float64 {
	if math.IsNaN(r.Playtime) {
		return 0
	}
	return r.Playtime
}

func sumByYear(rows []models.GenrePlaytimeRow) map[int]float64 {
	out := make(map[int]float64)
	for _, r := range rows {
		out[r.ReleaseYear] += playtime(r)
	}
	return out
}

func sortedKeys[K int | string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
