// Package sqlite implements the example store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/crimson-sun/sway/internal/model"
	"github.com/crimson-sun/sway/internal/store"
)

// Store persists examples in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path with WAL mode enabled and
// initializes the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite store: %w", err)
	}

	schema := `
CREATE TABLE IF NOT EXISTS examples (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	label TEXT NOT NULL
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite store: init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Put upserts examples in one transaction, assigning ULIDs to any without
// an id.
func (s *Store) Put(ctx context.Context, examples []model.Example) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite store: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO examples (id, text, label) VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET text=excluded.text, label=excluded.label`)
	if err != nil {
		return fmt.Errorf("sqlite store: %w", err)
	}
	defer stmt.Close()

	for _, ex := range store.EnsureIDs(examples) {
		if _, err := stmt.ExecContext(ctx, ex.ID, ex.Text, ex.Label); err != nil {
			return fmt.Errorf("sqlite store: put %s: %w", ex.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite store: %w", err)
	}
	return nil
}

// List returns all examples ordered by id.
func (s *Store) List(ctx context.Context) ([]model.Example, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, text, label FROM examples ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("sqlite store: %w", err)
	}
	defer rows.Close()

	var out []model.Example
	for rows.Next() {
		var ex model.Example
		if err := rows.Scan(&ex.ID, &ex.Text, &ex.Label); err != nil {
			return nil, fmt.Errorf("sqlite store: scan: %w", err)
		}
		out = append(out, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite store: %w", err)
	}
	return out, nil
}

// Count returns the number of stored examples.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM examples").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sqlite store: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
