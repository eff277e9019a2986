// Package store persists tool-run history in sqlite. Tools themselves
// stay stateless; only the CLI and the demo agent record runs here.
package store

import (
	"database/sql"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// Run is one recorded tool invocation.
type Run struct {
	ID         int64
	Tool       string
	Input      string
	Output     string
	Error      string
	DurationMs int64
	CreatedAt  string
}

type RunStore struct {
	DB *sql.DB
}

func NewRunStore(dbPath string) (*RunStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	query := `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool TEXT NOT NULL,
		input TEXT,
		output TEXT,
		error TEXT,
		duration_ms INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(query); err != nil {
		return nil, err
	}

	return &RunStore{DB: db}, nil
}

func (s *RunStore) AddRun(tool, input, output, errText string, duration time.Duration) error {
	query := `INSERT INTO runs (tool, input, output, error, duration_ms) VALUES (?, ?, ?, ?, ?)`
	_, err := s.DB.Exec(query, tool, input, output, errText, duration.Milliseconds())
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (s *RunStore) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, tool, input, output, error, duration_ms, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?`
	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Tool, &r.Input, &r.Output, &r.Error, &r.DurationMs, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *RunStore) Close() error {
	return s.DB.Close()
}
