// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/models"
)

// DefaultMatrixIndexColumns are tried, in order, when no label column is
// configured for a similarity matrix.
var DefaultMatrixIndexColumns = []string{"__index_level_0__", "index", "item_id", "user_id"}

// LoadGenrePlaytime reads genre_playtime. Every column other than user_id,
// release_year, playtime_forever and pandas index columns is a genre
// indicator; a genre is set on a row when its value equals 1.
// Rows without a user or release year are skipped; a missing playtime counts as 0.
func (db *DB) LoadGenrePlaytime(ctx context.Context, path string) (*models.GenrePlaytimeTable, error) {
	columns, err := db.ParquetColumns(ctx, path)
	if err != nil {
		return nil, err
	}
	fixed, err := newColumnSet(columns).require(path, "user_id", "release_year", "playtime_forever")
	if err != nil {
		return nil, err
	}

	table := &models.GenrePlaytimeTable{}
	selects := []string{
		idExpr(fixed[0]),
		"TRY_CAST(" + quoteIdent("release_year") + " AS BIGINT)",
		"TRY_CAST(" + quoteIdent("playtime_forever") + " AS DOUBLE)",
	}
	for _, c := range columns {
		switch {
		case c.Name == "user_id", c.Name == "release_year", c.Name == "playtime_forever":
			continue
		case IsIndexColumn(c.Name):
			continue
		}
		table.Genres = append(table.Genres, c.Name)
		selects = append(selects, "COALESCE(TRY_CAST("+quoteIdent(c.Name)+" AS DOUBLE) = 1, false)")
	}

	query := "SELECT " + strings.Join(selects, ", ") + " FROM " + parquetSource(path)
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query genre playtime %s: %w", path, err)
	}
	defer closeWithLog(rows, "rows")

	skipped := 0
	for rows.Next() {
		var (
			userID   sql.NullString
			year     sql.NullInt64
			playtime sql.NullFloat64
		)
		flags := make([]bool, len(table.Genres))
		dest := make([]any, 0, 3+len(flags))
		dest = append(dest, &userID, &year, &playtime)
		for i := range flags {
			dest = append(dest, &flags[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan genre playtime row: %w", err)
		}
		if !userID.Valid || !year.Valid {
			skipped++
			continue
		}
		table.Rows = append(table.Rows, models.GenrePlaytimeRow{
			UserID:      userID.String,
			ReleaseYear: int(year.Int64),
			Playtime:    playtime.Float64,
			Genres:      flags,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre playtime %s: %w", path, err)
	}

	logSkipped(path, skipped)
	return table, nil
}

// LoadRecommendations reads recommendations. Rows without a release year are
// skipped. A null recommend flag is kept and marked RecommendUnknown so the
// row still counts towards sentiment. A missing sentiment is loaded as -1
// and ignored by the sentiment tally.
func (db *DB) LoadRecommendations(ctx context.Context, path string) (*models.RecommendationsTable, error) {
	columns, err := db.ParquetColumns(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := newColumnSet(columns).require(path, "app_name", "release_year", "recommend", "sentiment_analysis"); err != nil {
		return nil, err
	}

	query := `SELECT
			CAST("app_name" AS VARCHAR),
			TRY_CAST("release_year" AS BIGINT),
			TRY_CAST("recommend" AS BOOLEAN),
			TRY_CAST("sentiment_analysis" AS BIGINT)
		FROM ` + parquetSource(path)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query recommendations %s: %w", path, err)
	}
	defer closeWithLog(rows, "rows")

	table := &models.RecommendationsTable{}
	skipped := 0
	for rows.Next() {
		var (
			appName   sql.NullString
			year      sql.NullInt64
			recommend sql.NullBool
			sentiment sql.NullInt64
		)
		if err := rows.Scan(&appName, &year, &recommend, &sentiment); err != nil {
			return nil, fmt.Errorf("scan recommendation row: %w", err)
		}
		if !year.Valid {
			skipped++
			continue
		}
		row := models.RecommendationRow{
			AppName:          appName.String,
			ReleaseYear:      int(year.Int64),
			Recommend:        recommend.Bool,
			RecommendUnknown: !recommend.Valid,
			Sentiment:        -1,
		}
		if sentiment.Valid {
			row.Sentiment = int(sentiment.Int64)
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations %s: %w", path, err)
	}

	logSkipped(path, skipped)
	return table, nil
}

// LoadSimilarityMatrix reads a square similarity matrix saved from a pandas
// DataFrame: one column per entity plus an optional label column. When
// indexColumn is empty the first of DefaultMatrixIndexColumns present is
// used; when none is present the column names double as row labels.
func (db *DB) LoadSimilarityMatrix(ctx context.Context, path, indexColumn string) (*models.SimilarityMatrix, error) {
	columns, err := db.ParquetColumns(ctx, path)
	if err != nil {
		return nil, err
	}
	set := newColumnSet(columns)

	var label *Column
	if indexColumn != "" {
		c, err := set.require(path, indexColumn)
		if err != nil {
			return nil, err
		}
		label = &c[0]
	} else {
		for _, name := range DefaultMatrixIndexColumns {
			if c, ok := set[name]; ok {
				label = &c
				break
			}
		}
	}

	matrix := &models.SimilarityMatrix{}
	var selects []string
	if label != nil {
		selects = append(selects, idExpr(*label))
	}
	for _, c := range columns {
		if label != nil && c.Name == label.Name {
			continue
		}
		matrix.Columns = append(matrix.Columns, NormalizeID(c.Name))
		selects = append(selects, "TRY_CAST("+quoteIdent(c.Name)+" AS DOUBLE)")
	}
	if len(matrix.Columns) == 0 {
		return nil, fmt.Errorf("%s: similarity matrix has no data columns", path)
	}
	matrix.Values = make([][]float64, len(matrix.Columns))

	rows, err := db.conn.QueryContext(ctx, "SELECT "+strings.Join(selects, ", ")+" FROM "+parquetSource(path))
	if err != nil {
		return nil, fmt.Errorf("query similarity matrix %s: %w", path, err)
	}
	defer closeWithLog(rows, "rows")

	rowNum := 0
	for rows.Next() {
		var rowLabel sql.NullString
		cells := make([]sql.NullFloat64, len(matrix.Columns))
		dest := make([]any, 0, len(cells)+1)
		if label != nil {
			dest = append(dest, &rowLabel)
		}
		for i := range cells {
			dest = append(dest, &cells[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan similarity row %d: %w", rowNum, err)
		}

		switch {
		case label != nil:
			matrix.Labels = append(matrix.Labels, rowLabel.String)
		case rowNum < len(matrix.Columns):
			matrix.Labels = append(matrix.Labels, matrix.Columns[rowNum])
		default:
			return nil, fmt.Errorf("%s: matrix without label column has more rows than columns", path)
		}
		for j, cell := range cells {
			v := math.NaN()
			if cell.Valid {
				v = cell.Float64
			}
			matrix.Values[j] = append(matrix.Values[j], v)
		}
		rowNum++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similarity matrix %s: %w", path, err)
	}

	if len(matrix.Labels) != len(matrix.Columns) {
		logging.Warn().
			Str("path", path).
			Int("rows", len(matrix.Labels)).
			Int("columns", len(matrix.Columns)).
			Msg("Similarity matrix is not square")
	}
	return matrix, nil
}

// LoadInteractions reads merge. Extra columns are ignored.
func (db *DB) LoadInteractions(ctx context.Context, path string) (*models.InteractionsTable, error) {
	pairs, err := db.loadItemRows(ctx, path, true)
	if err != nil {
		return nil, err
	}
	table := &models.InteractionsTable{Rows: make([]models.InteractionRow, 0, len(pairs))}
	for _, p := range pairs {
		table.Rows = append(table.Rows, models.InteractionRow{UserID: p.userID, ItemID: p.itemID, AppName: p.appName})
	}
	return table, nil
}

// LoadCatalog reads reduced_df. Extra columns are ignored.
func (db *DB) LoadCatalog(ctx context.Context, path string) (*models.CatalogTable, error) {
	pairs, err := db.loadItemRows(ctx, path, false)
	if err != nil {
		return nil, err
	}
	table := &models.CatalogTable{Rows: make([]models.CatalogRow, 0, len(pairs))}
	for _, p := range pairs {
		table.Rows = append(table.Rows, models.CatalogRow{ItemID: p.itemID, AppName: p.appName})
	}
	return table, nil
}

type itemRow struct {
	userID  string
	itemID  string
	appName string
}

// loadItemRows reads (item_id, app_name) and optionally user_id in file order,
// skipping rows without an item id.
func (db *DB) loadItemRows(ctx context.Context, path string, withUser bool) ([]itemRow, error) {
	columns, err := db.ParquetColumns(ctx, path)
	if err != nil {
		return nil, err
	}
	names := []string{"item_id", "app_name"}
	if withUser {
		names = append(names, "user_id")
	}
	cols, err := newColumnSet(columns).require(path, names...)
	if err != nil {
		return nil, err
	}

	selects := []string{idExpr(cols[0]), `CAST("app_name" AS VARCHAR)`}
	if withUser {
		selects = append(selects, idExpr(cols[2]))
	}

	rows, err := db.conn.QueryContext(ctx, "SELECT "+strings.Join(selects, ", ")+" FROM "+parquetSource(path))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer closeWithLog(rows, "rows")

	var (
		out     []itemRow
		skipped int
	)
	for rows.Next() {
		var itemID, appName, userID sql.NullString
		dest := []any{&itemID, &appName}
		if withUser {
			dest = append(dest, &userID)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", path, err)
		}
		if !itemID.Valid {
			skipped++
			continue
		}
		out = append(out, itemRow{userID: userID.String, itemID: itemID.String, appName: appName.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", path, err)
	}

	logSkipped(path, skipped)
	return out, nil
}

func logSkipped(path string, skipped int) {
	if skipped == 0 {
		return
	}
	logging.Warn().Str("path", path).Int("skipped_rows", skipped).Msg("Skipped snapshot rows with missing keys")
}
