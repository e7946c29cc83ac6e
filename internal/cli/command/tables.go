// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package command

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tomtom215/steamlens/internal/models"
)

// TablesCommand lists the loaded snapshot tables and known genres.
func TablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "Show snapshot table sizes and genres",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print as JSON instead of a table",
			},
		},
		Action: showTables,
	}
}

type tablesOutput struct {
	Tables []models.TableStats `json:"tables"`
	Genres models.GenreList    `json:"genres"`
}

func showTables(c *cli.Context) error {
	svc, err := EnsureService(c)
	if err != nil {
		return err
	}
	store := svc.Store()
	genres := svc.Genres()
	out := tablesOutput{
		Tables: store.Stats(),
		Genres: models.GenreList{Genres: genres, Count: len(genres)},
	}

	if c.Bool("json") {
		return printJSON(c, out)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tROWS\tCOLUMNS\tPATH")
	for _, t := range out.Tables {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", t.Name, t.Rows, t.Columns, t.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "\nLoaded at %s in %s\n",
		store.LoadedAt().Format("2006-01-02 15:04:05"), store.LoadDuration().Round(time.Millisecond))
	fmt.Fprintf(c.App.Writer, "Genres (%d):\n", out.Genres.Count)
	for _, g := range out.Genres.Genres {
		fmt.Fprintf(c.App.Writer, "  %s\n", g)
	}
	return nil
}
