// Package ledger records per-collection run history in a sqlite database.
// The ledger is optional; a disabled ledger is represented by a nil *Ledger,
// whose methods are all no-ops.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Ledger is an open run-history database.
type Ledger struct {
	db *sql.DB
}

// Entry is one collection run outcome.
type Entry struct {
	RunID      string
	Collection string
	Status     string
	Documents  int
	Sections   int
	Duration   time.Duration
	Error      string
}

// Statuses recorded for a collection run.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Open creates or opens the ledger database at path and ensures its schema.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT NOT NULL,
			collection TEXT NOT NULL,
			status TEXT NOT NULL,
			documents INTEGER NOT NULL,
			sections INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			error TEXT,
			recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure ledger schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Record inserts one run entry. Safe to call on a nil ledger.
func (l *Ledger) Record(ctx context.Context, e Entry) error {
	if l == nil {
		return nil
	}
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO runs (run_id, collection, status, documents, sections, duration_ms, error) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.RunID, e.Collection, e.Status, e.Documents, e.Sections, e.Duration.Milliseconds(), e.Error,
	)
	if err != nil {
		return fmt.Errorf("record run for %s: %w", e.Collection, err)
	}
	return nil
}

// History returns the recorded entries for one collection, newest first.
func (l *Ledger) History(ctx context.Context, collection string) ([]Entry, error) {
	if l == nil {
		return nil, nil
	}
	rows, err := l.db.QueryContext(ctx,
		"SELECT run_id, collection, status, documents, sections, duration_ms, COALESCE(error, '') FROM runs WHERE collection = ? ORDER BY recorded_at DESC, rowid DESC",
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("query ledger history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMS int64
		if err := rows.Scan(&e.RunID, &e.Collection, &e.Status, &e.Documents, &e.Sections, &durationMS, &e.Error); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database. Safe to call on a nil ledger.
func (l *Ledger) Close() error {
	if l == nil {
		return nil
	}
	return l.db.Close()
}
