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
	"github.com/tomtom215/steamlens/internal/snapshot"
)

// maxRecommendations caps both recommendation lists.
const maxRecommendations = 5

// RecommendGame returns up to five game names most similar to itemID. The
// item itself is excluded by id; ids missing from the catalog contribute no
// name and names are deduplicated in rank order. An id listed under several
// names may fill more than one slot, but never past the cap.
func (s *Service) RecommendGame(ctx context.Context, itemID string) (models.GameRecommendations, error) {
	return run(ctx, s, OpRecommendGame, func() (models.GameRecommendations, error) {
		ranked, err := rankSimilar(OpRecommendGame, "item", s.store.GameSimilarity(), itemID)
		if err != nil {
			return models.GameRecommendations{}, err
		}
		if len(ranked) > maxRecommendations {
			ranked = ranked[:maxRecommendations]
		}
		return models.GameRecommendations{Games: collectNames(s.store.CatalogNames(), ranked, maxRecommendations)}, nil
	})
}

// RecommendUser returns up to five game names played by the users most
// similar to userID. Items are ordered by the rank of the similar user on
// the first interaction row that mentions them. A user whose neighbours
// have no interactions gets an empty list.
func (s *Service) RecommendUser(ctx context.Context, userID string) (models.GameRecommendations, error) {
	return run(ctx, s, OpRecommendUser, func() (models.GameRecommendations, error) {
		similar, err := rankSimilar(OpRecommendUser, "user", s.store.UserSimilarity(), userID)
		if err != nil {
			return models.GameRecommendations{}, err
		}

		rank := make(map[string]int, len(similar))
		for i, u := range similar {
			if _, dup := rank[u]; !dup {
				rank[u] = i
			}
		}

		type rankedItem struct {
			itemID string
			rank   int
		}
		var items []rankedItem
		seen := make(map[string]struct{})
		for _, row := range s.store.Interactions().Rows {
			r, ok := rank[row.UserID]
			if !ok {
				continue
			}
			if _, dup := seen[row.ItemID]; dup {
				continue
			}
			seen[row.ItemID] = struct{}{}
			items = append(items, rankedItem{itemID: row.ItemID, rank: r})
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].rank < items[j].rank })

		if len(items) > maxRecommendations {
			items = items[:maxRecommendations]
		}
		ids := make([]string, len(items))
		for i, it := range items {
			ids[i] = it.itemID
		}
		return models.GameRecommendations{Games: collectNames(s.store.InteractionNames(), ids, maxRecommendations)}, nil
	})
}

// rankSimilar orders the labels of m by their score against id, highest
// first, NaN last, ties in matrix row order, and drops id itself.
func rankSimilar(op, entity string, m *snapshot.Matrix, id string) ([]string, error) {
	scores, ok := m.Column(id)
	if !ok {
		return nil, notFound(op, "%s %q not found in similarity matrix", entity, id)
	}
	labels := m.Labels()
	if len(scores) != len(labels) {
		return nil, &QueryError{Op: op, Kind: KindUnexpected, Message: "similarity matrix is malformed"}
	}

	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		x, y := scores[order[a]], scores[order[b]]
		if math.IsNaN(x) {
			return false
		}
		return math.IsNaN(y) || x > y
	})

	out := make([]string, 0, len(order))
	for _, i := range order {
		if labels[i] != id {
			out = append(out, labels[i])
		}
	}
	return out, nil
}

// collectNames maps ids to names through idx, keeping the first occurrence
// of each name and stopping at limit names.
func collectNames(idx *snapshot.NameIndex, ids []string, limit int) []string {
	names := make([]string, 0, min(len(ids), limit))
	seen := make(map[string]struct{})
	for _, id := range ids {
		for _, n := range idx.Names(id) {
			if len(names) == limit {
				return names
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	return names
}
