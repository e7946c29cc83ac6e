// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Wire labels. Clients key on these exact strings.
const (
	LabelTopYearForGenre  = "Año de lanzamiento con más horas jugadas para Género "
	LabelTopUserForGenre  = "Usuario con más horas jugadas para Género "
	LabelHoursPlayed      = "Horas jugadas"
	LabelRankPrefix       = "Puesto "
	LabelRecommendedGames = "Juegos recomendados"
)

// GenreYearLeader is the release year with the most total playtime for a genre.
type GenreYearLeader struct {
	Genre string
	Year  int
}

// MarshalJSON encodes {"Año de lanzamiento con más horas jugadas para Género <genre>": year}.
func (r GenreYearLeader) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeKey(&buf, LabelTopYearForGenre+r.Genre); err != nil {
		return nil, err
	}
	buf.WriteString(strconv.Itoa(r.Year))
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// YearPlaytime is one entry of a user's per-year playtime breakdown.
type YearPlaytime struct {
	ReleaseYear int     `json:"release_year"`
	Playtime    float64 `json:"playtime_forever"`
}

// GenreUserLeader is the user with the most playtime in a genre and that
// user's playtime per release year, years ascending.
type GenreUserLeader struct {
	Genre  string
	UserID string
	Hours  []YearPlaytime
}

// MarshalJSON encodes the leader key first, then "Horas jugadas".
func (r GenreUserLeader) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeKey(&buf, LabelTopUserForGenre+r.Genre); err != nil {
		return nil, err
	}
	if err := writeValue(&buf, r.UserID); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeKey(&buf, LabelHoursPlayed); err != nil {
		return nil, err
	}
	hours := r.Hours
	if hours == nil {
		hours = []YearPlaytime{}
	}
	if err := writeValue(&buf, hours); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Podium is an ordered top-3 list of app names.
type Podium []string

// MarshalJSON encodes [{"Puesto 1": a}, {"Puesto 2": b}, {"Puesto 3": c}].
func (p Podium) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, name := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		if err := writeKey(&buf, LabelRankPrefix+strconv.Itoa(i+1)); err != nil {
			return nil, err
		}
		if err := writeValue(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// SentimentTally counts reviews per sentiment category for a year.
type SentimentTally struct {
	Negative int `json:"Negative"`
	Neutral  int `json:"Neutral"`
	Positive int `json:"Positive"`
}

// Total returns the number of reviews counted.
func (s SentimentTally) Total() int {
	return s.Negative + s.Neutral + s.Positive
}

// GameRecommendations is the body of both recommendation lookups.
type GameRecommendations struct {
	Games []string `json:"Juegos recomendados"`
}

// MarshalJSON guarantees an empty list encodes as [] rather than null.
func (g GameRecommendations) MarshalJSON() ([]byte, error) {
	games := g.Games
	if games == nil {
		games = []string{}
	}
	return json.Marshal(struct {
		Games []string `json:"Juegos recomendados"`
	}{games})
}

func writeKey(buf *bytes.Buffer, key string) error {
	if err := writeValue(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
