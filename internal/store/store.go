// Package store handles SQLite persistence for the leaderboard.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/EvxnXu/typing-platformer-game/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// DefaultTopLimit is used when TopRecords is called with a non-positive limit.
const DefaultTopLimit = 10

// Store wraps SQLite access for leaderboard records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_score ON records(score DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddRecord stores a finished game's score and returns the row id.
func (s *Store) AddRecord(ctx context.Context, name string, score int) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("player name is empty")
	}
	if score < 0 {
		return 0, fmt.Errorf("score must be >= 0, got %d", score)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO records (username, score, created_at) VALUES (?, ?, ?)`,
		name,
		score,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}
	return res.LastInsertId()
}

// TopRecords returns up to limit records ordered by score, older first on ties.
func (s *Store) TopRecords(ctx context.Context, limit int) ([]model.Record, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, score, created_at
		 FROM records
		 ORDER BY score DESC, id ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Score, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// HighScore returns the best recorded score, or 0 when there are no records.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(score) FROM records`).Scan(&best); err != nil {
		return 0, err
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}
