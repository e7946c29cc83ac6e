// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package analytics

import (
	"context"
	"sort"

	"github.com/tomtom215/steamlens/internal/models"
)

// podiumSize is the number of games a ranking must return.
const podiumSize = 3

// UsersRecommend returns the three games with the most positive
// recommendations for year. Equal counts keep first-seen order.
func (s *Service) UsersRecommend(ctx context.Context, year int) (models.Podium, error) {
	return run(ctx, s, OpUsersRecommend, func() (models.Podium, error) {
		return s.podium(OpUsersRecommend, year, true)
	})
}

// UsersNotRecommend returns the three games with the fewest negative
// recommendations for year, fewest first. Equal counts keep first-seen order.
func (s *Service) UsersNotRecommend(ctx context.Context, year int) (models.Podium, error) {
	return run(ctx, s, OpUsersNotRecommend, func() (models.Podium, error) {
		return s.podium(OpUsersNotRecommend, year, false)
	})
}

type appCount struct {
	name  string
	count int
}

// podium counts rows per app for (year, recommend) and ranks them: most
// first for positive recommendations, fewest first for negative ones.
func (s *Service) podium(op string, year int, recommend bool) (models.Podium, error) {
	var counts []appCount
	pos := make(map[string]int)
	for _, r := range s.store.Recommendations().Rows {
		if r.ReleaseYear != year || r.RecommendUnknown || r.Recommend != recommend || r.AppName == "" {
			continue
		}
		i, ok := pos[r.AppName]
		if !ok {
			i = len(counts)
			pos[r.AppName] = i
			counts = append(counts, appCount{name: r.AppName})
		}
		counts[i].count++
	}

	if len(counts) < podiumSize {
		return nil, emptyResult(op, "need at least %d games for year %d, found %d", podiumSize, year, len(counts))
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if recommend {
			return counts[i].count > counts[j].count
		}
		return counts[i].count < counts[j].count
	})

	out := make(models.Podium, podiumSize)
	for i := range out {
		out[i] = counts[i].name
	}
	return out, nil
}

// SentimentAnalysis counts reviews per sentiment category for year. Missing
// categories count as zero and unknown codes are ignored, so a year without
// reviews yields all zeros.
func (s *Service) SentimentAnalysis(ctx context.Context, year int) (models.SentimentTally, error) {
	return run(ctx, s, OpSentimentAnalysis, func() (models.SentimentTally, error) {
		var tally models.SentimentTally
		for _, r := range s.store.Recommendations().Rows {
			if r.ReleaseYear != year {
				continue
			}
			switch r.Sentiment {
			case models.SentimentNegative:
				tally.Negative++
			case models.SentimentNeutral:
				tally.Neutral++
			case models.SentimentPositive:
				tally.Positive++
			}
		}
		return tally, nil
	})
}
