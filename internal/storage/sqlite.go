// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeCaught    Outcome = "caught"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished journey.
type Run struct {
	ID          int64
	WorldID     string
	Outcome     Outcome
	Steps       int
	ElapsedSecs float64
	Seed        int64
	CreatedAt   time.Time
}

// Stats summarizes the runs of a world.
type Stats struct {
	Runs      int
	Completed int
	Timeouts  int
	Caught    int
	Best      float64 // fastest completion in seconds, 0 if none
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			elapsed_secs REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_world_id ON runs(world_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(world_id, outcome, elapsed_secs);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	switch r.Outcome {
	case OutcomeCompleted, OutcomeTimeout, OutcomeCaught:
	default:
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (world_id, outcome, steps, elapsed_secs, seed) VALUES (?, ?, ?, ?, ?)",
		r.WorldID, string(r.Outcome), r.Steps, r.ElapsedSecs, r.Seed,
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

// RecentRuns returns the latest runs of a world, newest first.
func (s *Store) RecentRuns(worldID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, world_id, outcome, steps, elapsed_secs, seed, created_at
		 FROM runs
		 WHERE world_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		worldID, limit,
	)
}

// BestRuns returns the fastest completed runs of a world.
func (s *Store) BestRuns(worldID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, world_id, outcome, steps, elapsed_secs, seed, created_at
		 FROM runs
		 WHERE world_id = ? AND outcome = ?
		 ORDER BY elapsed_secs ASC, id ASC
		 LIMIT ?`,
		worldID, string(OutcomeCompleted), limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.WorldID, &outcome, &r.Steps, &r.ElapsedSecs, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats counts the runs of a world by outcome.
func (s *Store) Stats(worldID string) (Stats, error) {
	var st Stats
	var best sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'completed'), 0),
		        COALESCE(SUM(outcome = 'timeout'), 0),
		        COALESCE(SUM(outcome = 'caught'), 0),
		        MIN(CASE WHEN outcome = 'completed' THEN elapsed_secs END)
		 FROM runs
		 WHERE world_id = ?`,
		worldID,
	).Scan(&st.Runs, &st.Completed, &st.Timeouts, &st.Caught, &best)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.Best = best.Float64
	}
	return st, nil
}

// ClearRuns deletes the history of a world.
func (s *Store) ClearRuns(worldID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE world_id = ?", worldID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
