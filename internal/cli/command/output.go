// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package command

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/validation"
)

// printJSON writes v to the app writer followed by a newline.
func printJSON(c *cli.Context, v any) error {
	var (
		data []byte
		err  error
	)
	if ParseGlobalFlags(c).Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

// printResult prints result, or the error body for err with exit status 1.
func printResult(c *cli.Context, result any, err error) error {
	if err != nil {
		return queryFailure(c, err)
	}
	return printJSON(c, result)
}

func queryFailure(c *cli.Context, err error) error {
	body := models.ErrorResponse{
		Detail: "unexpected error",
		Code:   analytics.KindUnexpected.Code(),
	}
	var qe *analytics.QueryError
	if errors.As(err, &qe) {
		body.Detail = qe.Message
		body.Code = qe.Kind.Code()
	}
	return exitWithBody(c, body)
}

func validationFailure(c *cli.Context, verr *validation.RequestValidationError) error {
	return exitWithBody(c, models.ErrorResponse{Detail: verr.Error(), Code: verr.Code()})
}

func exitWithBody(c *cli.Context, body models.ErrorResponse) error {
	data, err := json.Marshal(body)
	if err != nil {
		return cli.Exit(body.Detail, 1)
	}
	return cli.Exit(string(data), 1)
}

// requireArg returns the single positional argument or a usage error.
func requireArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("expected exactly one <%s> argument, got %d", name, c.NArg()), 2)
	}
	return c.Args().First(), nil
}
