// Package history records finished drill sessions in a sqlite database.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	// Import the pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id         TEXT PRIMARY KEY,
	mode       TEXT NOT NULL,
	started_at INTEGER NOT NULL,
	ended_at   INTEGER NOT NULL,
	total      INTEGER NOT NULL,
	attempted  INTEGER NOT NULL,
	correct    INTEGER NOT NULL,
	failed     INTEGER NOT NULL,
	quit       INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_session_started_at ON session (started_at);
`

// Entry is one finished session.
type Entry struct {
	ID        string
	Mode      string
	StartedAt time.Time
	EndedAt   time.Time
	Total     int
	Attempted int
	Correct   int
	Failed    int
	Quit      bool
}

// Percent returns the share of correct answers among attempted items.
func (e Entry) Percent() float64 {
	if e.Attempted == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Attempted) * 100
}

// Summary aggregates every recorded session.
type Summary struct {
	Sessions  int
	Attempted int
	Correct   int
}

// Percent returns the overall share of correct answers.
func (s Summary) Percent() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted) * 100
}

// DB wraps the history database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("history path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create history dir for %s", path)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open history database: %s", path)
	}
	// A single writer keeps sqlite from reporting SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to apply history schema")
	}
	return &DB{db: db}, nil
}

// Close releases the database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Record stores one finished session. Recording the same id twice replaces it.
func (d *DB) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		return errors.New("session id is required")
	}
	stmt := `INSERT OR REPLACE INTO session (id, mode, started_at, ended_at, total, attempted, correct, failed, quit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := d.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.Mode,
		entry.StartedAt.UnixMilli(),
		entry.EndedAt.UnixMilli(),
		entry.Total,
		entry.Attempted,
		entry.Correct,
		entry.Failed,
		entry.Quit,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to record session %s", entry.ID)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (d *DB) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := d.db.QueryContext(ctx, `SELECT id, mode, started_at, ended_at, total, attempted, correct, failed, quit
		FROM session ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry          Entry
			started, ended int64
		)
		if err := rows.Scan(&entry.ID, &entry.Mode, &started, &ended, &entry.Total, &entry.Attempted, &entry.Correct, &entry.Failed, &entry.Quit); err != nil {
			return nil, errors.Wrap(err, "failed to scan session")
		}
		entry.StartedAt = time.UnixMilli(started)
		entry.EndedAt = time.UnixMilli(ended)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}
	return entries, nil
}

// Summarize totals every recorded session.
func (d *DB) Summarize(ctx context.Context) (Summary, error) {
	var summary Summary
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(attempted), 0), COALESCE(SUM(correct), 0) FROM session`,
	).Scan(&summary.Sessions, &summary.Attempted, &summary.Correct)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to summarize sessions")
	}
	return summary, nil
}
