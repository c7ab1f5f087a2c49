// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index stores a built CBoard document in SQLite so boards and
// tiles can be searched without re-running the build.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cboard-builder/internal/slug"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

const (
	dbFile            = "boards.db"
	defaultMaxResults = 20
)

// Store manages the board index database.
type Store struct {
	db         *sqlx.DB
	maxResults int
}

// NewStore opens or creates the index at cfg.IndexDir/boards.db.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	dir := cfg.IndexDir
	if dir == "" {
		dir = "index"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sqlx.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			indexed_at TEXT NOT NULL,
			boards INTEGER NOT NULL,
			tiles INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS boards (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			author TEXT,
			email TEXT,
			is_public INTEGER NOT NULL,
			hidden INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tiles (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			board_position INTEGER NOT NULL REFERENCES boards(position) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			id TEXT NOT NULL,
			board TEXT NOT NULL,
			load_board TEXT,
			row_value TEXT,
			column_value TEXT,
			label TEXT NOT NULL,
			search_key TEXT NOT NULL,
			image TEXT,
			font_color TEXT,
			background_color TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tiles_board ON tiles(board)`,
		`CREATE INDEX IF NOT EXISTS idx_tiles_id ON tiles(id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run records one ingestion.
type Run struct {
	ID        string `db:"id" json:"id" yaml:"id"`
	Source    string `db:"source" json:"source" yaml:"source"`
	IndexedAt string `db:"indexed_at" json:"indexed_at" yaml:"indexed_at"`
	Boards    int    `db:"boards" json:"boards" yaml:"boards"`
	Tiles     int    `db:"tiles" json:"tiles" yaml:"tiles"`
}

// Ingest replaces the indexed content with doc. Each build recomputes the
// whole document, so the index is rebuilt rather than merged.
func (s *Store) Ingest(ctx context.Context, doc types.Document, source string) (Run, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM tiles`, `DELETE FROM boards`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return Run{}, fmt.Errorf("clearing index: %w", err)
		}
	}

	boardStmt, err := tx.PreparexContext(ctx,
		`INSERT INTO boards (position, id, name, author, email, is_public, hidden)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("preparing board insert: %w", err)
	}
	defer boardStmt.Close()

	tileStmt, err := tx.PreparexContext(ctx,
		`INSERT INTO tiles (board_position, position, id, board, load_board, row_value,
			column_value, label, search_key, image, font_color, background_color)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("preparing tile insert: %w", err)
	}
	defer tileStmt.Close()

	run := Run{
		ID:        uuid.NewString(),
		Source:    source,
		IndexedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for bi, b := range doc.Advanced {
		if _, err := boardStmt.ExecContext(ctx,
			bi, b.ID, b.Name, b.Author, b.Email, b.IsPublic, b.Hidden,
		); err != nil {
			return Run{}, fmt.Errorf("inserting board %s: %w", b.ID, err)
		}
		run.Boards++

		for ti, t := range b.Tiles {
			if _, err := tileStmt.ExecContext(ctx,
				bi, ti, t.ID, t.Board, t.LoadBoard, t.Row, t.Column,
				t.Label, searchKey(t.Label), t.Image, t.FontColor, t.BackgroundColor,
			); err != nil {
				return Run{}, fmt.Errorf("inserting tile %s: %w", t.ID, err)
			}
			run.Tiles++
		}
	}

	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO runs (id, source, indexed_at, boards, tiles)
		 VALUES (:id, :source, :indexed_at, :boards, :tiles)`, run,
	); err != nil {
		return Run{}, fmt.Errorf("recording run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("committing: %w", err)
	}
	return run, nil
}

// LastRun returns the most recent ingestion.
func (s *Store) LastRun(ctx context.Context) (Run, error) {
	var run Run
	err := s.db.GetContext(ctx, &run,
		`SELECT id, source, indexed_at, boards, tiles FROM runs
		 ORDER BY indexed_at DESC, rowid DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("index is empty: run the index command first")
	}
	if err != nil {
		return Run{}, fmt.Errorf("reading last run: %w", err)
	}
	return run, nil
}

// searchKey is the folded label used for accent-insensitive lookups.
func searchKey(label string) string {
	return strings.Join(strings.Fields(slug.Fold(label)), " ")
}
