// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package command

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/validation"
)

// PlayTimeGenreCommand prints the release year with the most playtime for a genre.
func PlayTimeGenreCommand() *cli.Command {
	return &cli.Command{
		Name:      "play-time-genre",
		Aliases:   []string{"ptg"},
		Usage:     "Release year with the most playtime for a genre",
		ArgsUsage: "<genre>",
		Action: genreAction(func(c *cli.Context, svc *analytics.Service, genre string) (any, error) {
			return svc.PlayTimeGenre(c.Context, genre)
		}),
	}
}

// UserForGenreCommand prints the top player of a genre.
func UserForGenreCommand() *cli.Command {
	return &cli.Command{
		Name:      "user-for-genre",
		Aliases:   []string{"ufg"},
		Usage:     "User with the most playtime for a genre, with hours per year",
		ArgsUsage: "<genre>",
		Action: genreAction(func(c *cli.Context, svc *analytics.Service, genre string) (any, error) {
			return svc.UserForGenre(c.Context, genre)
		}),
	}
}

// UsersRecommendCommand prints the three most recommended games of a year.
func UsersRecommendCommand() *cli.Command {
	return &cli.Command{
		Name:      "users-recommend",
		Usage:     "Three most recommended games of a year",
		ArgsUsage: "<year>",
		Action: yearAction(func(c *cli.Context, svc *analytics.Service, year int) (any, error) {
			return svc.UsersRecommend(c.Context, year)
		}),
	}
}

// UsersNotRecommendCommand prints the three least recommended games of a year.
func UsersNotRecommendCommand() *cli.Command {
	return &cli.Command{
		Name:      "users-not-recommend",
		Usage:     "Three least recommended games of a year",
		ArgsUsage: "<year>",
		Action: yearAction(func(c *cli.Context, svc *analytics.Service, year int) (any, error) {
			return svc.UsersNotRecommend(c.Context, year)
		}),
	}
}

// SentimentCommand prints review sentiment counts for a release year.
func SentimentCommand() *cli.Command {
	return &cli.Command{
		Name:      "sentiment",
		Usage:     "Review sentiment counts for a release year",
		ArgsUsage: "<year>",
		Action: yearAction(func(c *cli.Context, svc *analytics.Service, year int) (any, error) {
			return svc.SentimentAnalysis(c.Context, year)
		}),
	}
}

// RecommendGameCommand prints five games similar to a game.
func RecommendGameCommand() *cli.Command {
	return &cli.Command{
		Name:      "recommend-game",
		Usage:     "Five games similar to a game",
		ArgsUsage: "<item_id>",
		Action:    recommendGame,
	}
}

// RecommendUserCommand prints five games liked by users similar to a user.
func RecommendUserCommand() *cli.Command {
	return &cli.Command{
		Name:      "recommend-user",
		Usage:     "Five games played by the most similar users",
		ArgsUsage: "<user_id>",
		Action:    recommendUser,
	}
}

type genreQuery func(c *cli.Context, svc *analytics.Service, genre string) (any, error)

func genreAction(query genreQuery) cli.ActionFunc {
	return func(c *cli.Context) error {
		raw, err := requireArg(c, "genre")
		if err != nil {
			return err
		}
		genre, verr := validation.ParseGenre(raw)
		if verr != nil {
			return validationFailure(c, verr)
		}
		svc, err := EnsureService(c)
		if err != nil {
			return err
		}
		result, err := query(c, svc, genre)
		return printResult(c, result, err)
	}
}

type yearQuery func(c *cli.Context, svc *analytics.Service, year int) (any, error)

func yearAction(query yearQuery) cli.ActionFunc {
	return func(c *cli.Context) error {
		raw, err := requireArg(c, "year")
		if err != nil {
			return err
		}
		year, verr := validation.ParseYear(raw)
		if verr != nil {
			return validationFailure(c, verr)
		}
		svc, err := EnsureService(c)
		if err != nil {
			return err
		}
		result, err := query(c, svc, year)
		return printResult(c, result, err)
	}
}

func recommendGame(c *cli.Context) error {
	raw, err := requireArg(c, "item_id")
	if err != nil {
		return err
	}
	itemID, verr := validation.ParseItemID(raw)
	if verr != nil {
		return validationFailure(c, verr)
	}
	svc, err := EnsureService(c)
	if err != nil {
		return err
	}
	result, err := svc.RecommendGame(c.Context, strconv.FormatInt(itemID, 10))
	return printResult(c, result, err)
}

func recommendUser(c *cli.Context) error {
	raw, err := requireArg(c, "user_id")
	if err != nil {
		return err
	}
	userID, verr := validation.ParseUserID(raw)
	if verr != nil {
		return validationFailure(c, verr)
	}
	svc, err := EnsureService(c)
	if err != nil {
		return err
	}
	result, err := svc.RecommendUser(c.Context, userID)
	return printResult(c, result, err)
}
