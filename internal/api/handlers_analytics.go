// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/validation"
)

// PlayTimeGenre handles GET /play_time_genre/{genero}
//
// @Summary Release year with most playtime for a genre
// @Description Sums playtime per release year over rows tagged with the genre and returns the year with the highest total. Ties resolve to the earliest year.
// @Tags Genres
// @Produce json
// @Param genero path string true "Genre name, exactly as listed by /genres"
// @Success 200 {object} map[string]int "{\"Año de lanzamiento con más horas jugadas para Género Action\": 2012}"
// @Failure 400 {object} models.ErrorResponse "NOT_FOUND, EMPTY_RESULT, UNEXPECTED or VALIDATION_ERROR"
// @Router /play_time_genre/{genero} [get]
func (h *Handler) PlayTimeGenre(w http.ResponseWriter, r *http.Request) {
	genre, verr := validation.ParseGenre(pathParam(r, "genero"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	result, err := h.svc.PlayTimeGenre(r.Context(), genre)
	writeResult(w, r, result, err)
}

// UserForGenre handles GET /user_for_genre/{genero}
//
// @Summary User with most playtime for a genre
// @Description Returns the user with the highest total playtime in the genre and that user's playtime per release year. Ties resolve to the smallest user id.
// @Tags Genres
// @Produce json
// @Param genero path string true "Genre name, exactly as listed by /genres"
// @Success 200 {object} map[string]interface{} "{\"Usuario con más horas jugadas para Género Action\": \"u2\", \"Horas jugadas\": [{\"release_year\": 2012, \"playtime_forever\": 9}]}"
// @Failure 400 {object} models.ErrorResponse "NOT_FOUND, EMPTY_RESULT, UNEXPECTED or VALIDATION_ERROR"
// @Router /user_for_genre/{genero} [get]
func (h *Handler) UserForGenre(w http.ResponseWriter, r *http.Request) {
	genre, verr := validation.ParseGenre(pathParam(r, "genero"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	result, err := h.svc.UserForGenre(r.Context(), genre)
	writeResult(w, r, result, err)
}

// UsersRecommend handles GET /users_recommend/{year}
//
// @Summary Top three recommended games of a year
// @Description Counts positive recommendations per game for the release year and returns the three most recommended.
// @Tags Reviews
// @Produce json
// @Param year path int true "Release year"
// @Success 200 {array} map[string]string "[{\"Puesto 1\": \"AppA\"}, {\"Puesto 2\": \"AppB\"}, {\"Puesto 3\": \"AppC\"}]"
// @Failure 400 {object} models.ErrorResponse "EMPTY_RESULT when fewer than three games qualify"
// @Router /users_recommend/{year} [get]
func (h *Handler) UsersRecommend(w http.ResponseWriter, r *http.Request) {
	year, verr := validation.ParseYear(pathParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	result, err := h.svc.UsersRecommend(r.Context(), year)
	writeResult(w, r, result, err)
}

// UsersNotRecommend handles GET /users_not_recommend/{year}
//
// @Summary Three least recommended games of a year
// @Description Counts negative recommendations per game for the release year and returns the three with the fewest, fewest first.
// @Tags Reviews
// @Produce json
// @Param year path int true "Release year"
// @Success 200 {array} map[string]string "[{\"Puesto 1\": \"AppE\"}, ...]"
// @Failure 400 {object} models.ErrorResponse "EMPTY_RESULT when fewer than three games qualify"
// @Router /users_not_recommend/{year} [get]
func (h *Handler) UsersNotRecommend(w http.ResponseWriter, r *http.Request) {
	year, verr := validation.ParseYear(pathParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	result, err := h.svc.UsersNotRecommend(r.Context(), year)
	writeResult(w, r, result, err)
}

// SentimentAnalysis handles GET /sentiment_analysis/{year}
//
// @Summary Review sentiment counts for a year
// @Description Counts negative, neutral and positive reviews for the release year. Years without reviews return zeros.
// @Tags Reviews
// @Produce json
// @Param year path int true "Release year"
// @Success 200 {object} models.SentimentTally
// @Failure 400 {object} models.ErrorResponse "VALIDATION_ERROR for a non-integer year"
// @Router /sentiment_analysis/{year} [get]
func (h *Handler) SentimentAnalysis(w http.ResponseWriter, r *http.Request) {
	year, verr := validation.ParseYear(pathParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	result, err := h.svc.SentimentAnalysis(r.Context(), year)
	writeResult(w, r, result, err)
}

// RecommendGame handles GET /recomendacion_juego/{item_id}
//
// @Summary Games similar to a game
// @Description Returns up to five game names ranked by item-item similarity. The game itself is never included.
// @Tags Recommendations
// @Produce json
// @Param item_id path int true "Game item id"
// @Success 200 {object} models.GameRecommendations
// @Failure 400 {object} models.ErrorResponse "NOT_FOUND when the item is not in the similarity matrix"
// @Router /recomendacion_juego/{item_id} [get]
func (h *Handler) RecommendGame(w http.ResponseWriter, r *http.Request) {
	itemID, verr := validation.ParseItemID(pathParam(r, "item_id"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	result, err := h.svc.RecommendGame(r.Context(), strconv.FormatInt(itemID, 10))
	writeResult(w, r, result, err)
}

// RecommendUser handles GET /recomendacion_usuario/{user_id}
//
// @Summary Games played by similar users
// @Description Returns up to five game names played by the users most similar to the user. A user whose neighbours have no interactions gets an empty list.
// @Tags Recommendations
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} models.GameRecommendations
// @Failure 400 {object} models.ErrorResponse "NOT_FOUND when the user is not in the similarity matrix"
// @Router /recomendacion_usuario/{user_id} [get]
func (h *Handler) RecommendUser(w http.ResponseWriter, r *http.Request) {
	userID, verr := validation.ParseUserID(pathParam(r, "user_id"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	result, err := h.svc.RecommendUser(r.Context(), userID)
	writeResult(w, r, result, err)
}

// Genres handles GET /genres
//
// @Summary List genres
// @Description Lists the genre names accepted by /play_time_genre and /user_for_genre.
// @Tags Genres
// @Produce json
// @Success 200 {object} models.GenreList
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres := h.svc.Genres()
	respondJSON(w, r, http.StatusOK, models.GenreList{Genres: genres, Count: len(genres)})
}
