// Package storage keeps a small history of export runs in SQLite so
// users can see what they wrote where.
package storage

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS export_runs (
  id          INTEGER PRIMARY KEY,
  occurred_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  format      TEXT NOT NULL CHECK (format IN ('config','contentpack')),
  destination TEXT NOT NULL,
  item_count  INTEGER NOT NULL,
  items       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_time ON export_runs(occurred_at);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Run is one recorded export.
type Run struct {
	ID          int64
	OccurredAt  time.Time
	Format      string // config | contentpack
	Destination string
	ItemCount   int
	Items       string // human-readable summary, e.g. "Prismatic Shard x1, Wood x50"
}

// RecordRun appends one export run to the history.
func (d *DB) RecordRun(ctx context.Context, run Run) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO export_runs(occurred_at, format, destination, item_count, items) VALUES(?,?,?,?,?)`,
		run.OccurredAt.UTC(), run.Format, run.Destination, run.ItemCount, run.Items)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (d *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, occurred_at, format, destination, item_count, items FROM export_runs ORDER BY occurred_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.OccurredAt, &r.Format, &r.Destination, &r.ItemCount, &r.Items); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
