// Package history keeps a local log of verification attempts in a sqlite
// file, so the CLI works without a Postgres instance.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS attempts (
	id          TEXT PRIMARY KEY,
	activity    TEXT NOT NULL,
	image_path  TEXT NOT NULL,
	status      TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	matched     INTEGER NOT NULL DEFAULT 0,
	missing     TEXT NOT NULL DEFAULT '',
	confidence  REAL NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_created_at ON attempts(created_at);
`

// Entry is one recorded verification attempt.
type Entry struct {
	ID         string
	Activity   string
	ImagePath  string
	Status     string
	Category   string
	Matched    bool
	Missing    string
	Confidence float64
	CreatedAt  time.Time
}

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the sqlite history file and ensures the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one attempt.
func (s *Store) Append(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, activity, image_path, status, category, matched, missing, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Activity, e.ImagePath, e.Status, e.Category, boolToInt(e.Matched), e.Missing, e.Confidence,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		s.logger.Error("failed to append history entry", "id", e.ID, "error", err)
		return err
	}
	return nil
}

// Recent returns the latest attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, activity, image_path, status, category, matched, missing, confidence, created_at
		 FROM attempts ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var matched int
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Activity, &e.ImagePath, &e.Status, &e.Category, &matched, &e.Missing, &e.Confidence, &createdAt); err != nil {
			return nil, err
		}
		e.Matched = matched != 0
		if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			e.CreatedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
