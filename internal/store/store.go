// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store saves loaded tables into a SQLite database so callers can
// query them with SQL. The loader never reads from it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/recsys-data/pkg/types"
)

// Store wraps a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path, creating its parent
// directory if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the SQL table name with the contents of t and returns the
// number of rows written. The whole replacement runs in one transaction.
func (s *Store) Save(ctx context.Context, name string, t *types.Table) (int, error) {
	if t.Width() == 0 {
		return 0, fmt.Errorf("table %s has no columns", name)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	table := quoteIdent(name)
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
		return 0, fmt.Errorf("dropping %s: %w", name, err)
	}

	defs := make([]string, t.Width())
	cols := make([]string, t.Width())
	marks := make([]string, t.Width())
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c.Name)
		defs[i] = cols[i] + " " + sqlType(c.Type)
		marks[i] = "?"
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE %s (%s)`, table, strings.Join(defs, ", "))); err != nil {
		return 0, fmt.Errorf("creating %s: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table, strings.Join(cols, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < t.Height(); i++ {
		if _, err := stmt.ExecContext(ctx, t.Row(i)...); err != nil {
			return 0, fmt.Errorf("inserting row %d into %s: %w", i, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing %s: %w", name, err)
	}
	return t.Height(), nil
}

// Count returns the number of rows in the SQL table name.
func (s *Store) Count(ctx context.Context, name string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM `+quoteIdent(name)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", name, err)
	}
	return n, nil
}

// DB exposes the underlying handle for ad-hoc queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

func sqlType(t types.ColumnType) string {
	switch t {
	case types.TypeInt64, types.TypeBool:
		return "INTEGER"
	case types.TypeFloat64:
		return "REAL"
	}
	return "TEXT"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
