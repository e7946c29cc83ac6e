// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/snapshot"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// metadataService is the App.Metadata key holding the loaded *analytics.Service.
const metadataService = "service"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 "steamlens-cli",
		Usage:                "Run SteamLens analytics queries against a local snapshot",
		Version:              fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:                globalFlags(),
		Commands:             Commands(),
		EnableBashCompletion: true,
		Metadata:             map[string]any{},
		Before: func(c *cli.Context) error {
			logging.Init(logging.Config{
				Level:     c.String("log-level"),
				Format:    "console",
				Output:    c.App.ErrWriter,
				Timestamp: true,
			})
			return nil
		},
	}
}

// Commands returns every query subcommand plus tables.
func Commands() []*cli.Command {
	return []*cli.Command{
		PlayTimeGenreCommand(),
		UserForGenreCommand(),
		UsersRecommendCommand(),
		UsersNotRecommendCommand(),
		SentimentCommand(),
		RecommendGameCommand(),
		RecommendUserCommand(),
		TablesCommand(),
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "snapshot-dir",
			Aliases: []string{"d"},
			Usage:   "Directory holding the parquet snapshot (overrides SNAPSHOT_DIR)",
			EnvVars: []string{"STEAMLENS_SNAPSHOT_DIR"},
		},
		&cli.BoolFlag{
			Name:    "pretty",
			Aliases: []string{"p"},
			Usage:   "Indent JSON output",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level for load progress on stderr",
			Value: "warn",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	SnapshotDir string
	Pretty      bool
	LogLevel    string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		SnapshotDir: c.String("snapshot-dir"),
		Pretty:      c.Bool("pretty"),
		LogLevel:    c.String("log-level"),
	}
}

// EnsureService returns the analytics service, loading the snapshot on
// first use. A service already present in App.Metadata is reused.
func EnsureService(c *cli.Context) (*analytics.Service, error) {
	if svc, ok := c.App.Metadata[metadataService].(*analytics.Service); ok {
		return svc, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if dir := ParseGlobalFlags(c).SnapshotDir; dir != "" {
		cfg.Snapshot.Dir = dir
	}

	store, err := loadStore(c.Context, &cfg.Snapshot)
	if err != nil {
		return nil, err
	}

	svc := analytics.NewService(store)
	c.App.Metadata[metadataService] = svc
	return svc, nil
}

func loadStore(ctx context.Context, cfg *config.SnapshotConfig) (*snapshot.Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	defer cancel()

	store, err := snapshot.Load(ctx, db, snapshot.OptionsFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return store, nil
}
