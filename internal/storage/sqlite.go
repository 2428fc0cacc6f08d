// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/nebula-runner/internal/core"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished round.
type RunEntry struct {
	ID          int64
	Outcome     core.Outcome
	ElapsedSecs float64 // Seconds until the round was decided
	Frames      int
	Backend     string // "window" or "tui"
	CreatedAt   time.Time
}

// RunStats contains aggregated statistics over all runs.
type RunStats struct {
	Runs       int
	Wins       int
	Losses     int
	BestWin    float64 // Fastest win in seconds; 0 without wins
	AvgElapsed float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			elapsed_secs REAL NOT NULL,
			frames INTEGER NOT NULL,
			backend TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(outcome, elapsed_secs);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished round and returns the ID of the inserted record.
func (s *Store) SaveRun(outcome core.Outcome, elapsedSecs float64, frames int, backend string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (outcome, elapsed_secs, frames, backend) VALUES (?, ?, ?, ?)",
		outcome.String(), elapsedSecs, frames, backend,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// UpdateRunOutcome changes the outcome of a recorded run, e.g. when a win
// turns into a loss after it was saved.
func (s *Store) UpdateRunOutcome(id int64, outcome core.Outcome) error {
	result, err := s.db.Exec("UPDATE runs SET outcome = ? WHERE id = ?", outcome.String(), id)
	if err != nil {
		return fmt.Errorf("storage: cannot update run %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot update run %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("storage: run %d not found", id)
	}
	return nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, outcome, elapsed_secs, frames, backend, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopRuns retrieves the fastest wins, fastest first.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, outcome, elapsed_secs, frames, backend, created_at
		 FROM runs
		 WHERE outcome = 'won'
		 ORDER BY elapsed_secs ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var outcome string
		var createdAt any
		if err := rows.Scan(&e.ID, &outcome, &e.ElapsedSecs, &e.Frames, &e.Backend, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		var ok bool
		if e.Outcome, ok = core.ParseOutcome(outcome); !ok {
			return nil, fmt.Errorf("storage: run %d has unknown outcome %q", e.ID, outcome)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestWin returns the fastest winning time in seconds.
// The boolean is false if no round has been won yet.
func (s *Store) BestWin() (float64, bool, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MIN(elapsed_secs) FROM runs WHERE outcome = 'won'",
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best win: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return best.Float64, true, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(AVG(elapsed_secs), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Wins, &stats.Losses, &stats.AvgElapsed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	best, ok, err := s.BestWin()
	if err != nil {
		return nil, err
	}
	if ok {
		stats.BestWin = best
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
