// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Column describes one parquet column as reported by DuckDB.
type Column struct {
	Name string
	Type string
}

// pandasIndexColumns are written by pandas when a DataFrame index is saved
// alongside the data. They are never data columns.
var pandasIndexColumns = map[string]bool{
	"__index_level_0__": true,
	"index":             true,
}

// IsIndexColumn reports whether name is a pandas index column.
func IsIndexColumn(name string) bool {
	return pandasIndexColumns[name]
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteIdent renders name as a SQL identifier. Genre and matrix column
// names come straight from the files, so they are always quoted.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// parquetSource returns the table function reading path.
func parquetSource(path string) string {
	return "read_parquet(" + quoteLiteral(path) + ")"
}

// checkFile fails early with a wrapped fs error so callers can tell a missing
// snapshot apart from a malformed one.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("snapshot file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("snapshot file %s is a directory", path)
	}
	return nil
}

// ParquetColumns lists the columns of a parquet file in file order.
func (db *DB) ParquetColumns(ctx context.Context, path string) ([]Column, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, "DESCRIBE SELECT * FROM "+parquetSource(path))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", path, err)
	}
	defer closeWithLog(rows, "rows")

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", path, err)
	}

	var columns []Column
	for rows.Next() {
		// DESCRIBE returns column_name, column_type, null, key, default, extra.
		dest := make([]any, len(names))
		var name, typ string
		dest[0], dest[1] = &name, &typ
		for i := 2; i < len(dest); i++ {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("describe %s: %w", path, err)
		}
		columns = append(columns, Column{Name: name, Type: strings.ToUpper(typ)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe %s: %w", path, err)
	}
	return columns, nil
}

// columnSet indexes columns by name.
type columnSet map[string]Column

func newColumnSet(columns []Column) columnSet {
	set := make(columnSet, len(columns))
	for _, c := range columns {
		set[c.Name] = c
	}
	return set
}

// require returns the named columns or ErrMissingColumn for the first absent one.
func (s columnSet) require(path string, names ...string) ([]Column, error) {
	out := make([]Column, 0, len(names))
	for _, n := range names {
		c, ok := s[n]
		if !ok {
			return nil, missingColumn(path, n)
		}
		out = append(out, c)
	}
	return out, nil
}

func isFloatType(typ string) bool {
	switch {
	case typ == "FLOAT", typ == "DOUBLE", typ == "REAL":
		return true
	case strings.HasPrefix(typ, "DECIMAL"):
		return true
	}
	return false
}

// idExpr selects c as its canonical id string. Floating point ids (pandas
// upcasts integer columns holding NaN) are rounded to integers first so
// 10.0 and 10 compare equal.
func idExpr(c Column) string {
	if isFloatType(c.Type) {
		return "CAST(TRY_CAST(" + quoteIdent(c.Name) + " AS BIGINT) AS VARCHAR)"
	}
	return "CAST(" + quoteIdent(c.Name) + " AS VARCHAR)"
}

// NormalizeID canonicalizes an id read from a column name: surrounding space
// is trimmed and integral float spellings ("10.0") become plain integers ("10").
// Anything else is returned unchanged.
func NormalizeID(raw string) string {
	s := strings.TrimSpace(raw)
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || frac == "" || strings.Trim(frac, "0") != "" {
		return s
	}
	digits := strings.TrimPrefix(whole, "-")
	if digits == "" {
		return s
	}
	if _, err := strconv.ParseUint(digits, 10, 64); err != nil {
		return s
	}
	return whole
}
