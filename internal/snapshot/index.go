// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package snapshot

import "github.com/tomtom215/steamlens/internal/models"

// NameIndex maps an item id to its distinct app names in first-seen order.
// It replaces reindexing the source table by item_id on every request.
type NameIndex struct {
	names map[string][]string
}

// Names returns the app names recorded for itemID, or nil.
func (n *NameIndex) Names(itemID string) []string {
	return n.names[itemID]
}

// Len returns the number of distinct item ids.
func (n *NameIndex) Len() int {
	return len(n.names)
}

type nameIndexBuilder struct {
	names map[string][]string
	seen  map[string]map[string]struct{}
}

func newNameIndexBuilder() *nameIndexBuilder {
	return &nameIndexBuilder{
		names: make(map[string][]string),
		seen:  make(map[string]map[string]struct{}),
	}
}

func (b *nameIndexBuilder) add(itemID, name string) {
	seen, ok := b.seen[itemID]
	if !ok {
		seen = make(map[string]struct{})
		b.seen[itemID] = seen
	}
	if _, dup := seen[name]; dup {
		return
	}
	seen[name] = struct{}{}
	b.names[itemID] = append(b.names[itemID], name)
}

func (b *nameIndexBuilder) build() *NameIndex {
	return &NameIndex{names: b.names}
}

// Matrix wraps a SimilarityMatrix with a column lookup by label.
type Matrix struct {
	m      *models.SimilarityMatrix
	column map[string]int
}

// NewMatrix indexes m's columns. When a label repeats, the first column wins.
func NewMatrix(m *models.SimilarityMatrix) *Matrix {
	column := make(map[string]int, len(m.Columns))
	for j, label := range m.Columns {
		if _, dup := column[label]; !dup {
			column[label] = j
		}
	}
	return &Matrix{m: m, column: column}
}

// Column returns the scores of every row against label, aligned with Labels.
func (x *Matrix) Column(label string) ([]float64, bool) {
	j, ok := x.column[label]
	if !ok {
		return nil, false
	}
	return x.m.Values[j], true
}

// Labels returns the row labels.
func (x *Matrix) Labels() []string {
	return x.m.Labels
}

// Size returns the number of rows and columns.
func (x *Matrix) Size() (rows, columns int) {
	return len(x.m.Labels), len(x.m.Columns)
}
