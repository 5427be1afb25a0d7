// Package storage provides SQLite-based persistence for run journals.
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

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/session"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

var _ session.RunSaver = (*Store)(nil)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is a stored journal.
type Run struct {
	ID        int64
	CreatedAt time.Time
	Journal   replay.Journal
}

// RunSummary is a run without its events and configuration.
type RunSummary struct {
	ID        int64
	Seed      int64
	Score     int
	Ticks     uint64
	Events    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := logging.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			points REAL NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_events (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
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

// SaveRun stores a journal and its events in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(j replay.Journal) (int64, error) {
	cfgYAML, err := config.Marshal(j.Config)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (seed, points, score, ticks, config_yaml)
		 VALUES (?, ?, ?, ?, ?)`,
		j.Seed, j.Points, j.Score(), int64(j.Ticks), string(cfgYAML),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_events (run_id, seq, tick, kind) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for seq, ev := range j.Events {
		if _, err := stmt.Exec(id, seq, int64(ev.Tick), string(ev.Kind)); err != nil {
			return 0, fmt.Errorf("storage: cannot save event %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// LoadRun retrieves a run and its events by ID.
func (s *Store) LoadRun(id int64) (*Run, error) {
	var (
		run       Run
		ticks     int64
		cfgYAML   string
		createdAt any
	)

	err := s.db.QueryRow(
		`SELECT id, seed, points, ticks, config_yaml, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&run.ID, &run.Journal.Seed, &run.Journal.Points, &ticks, &cfgYAML, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	run.Journal.Ticks = uint64(ticks)
	run.CreatedAt = parseTime(createdAt)

	cfg, err := config.Parse([]byte(cfgYAML))
	if err != nil {
		return nil, fmt.Errorf("storage: run %d has a bad config: %w", id, err)
	}
	run.Journal.Config = cfg

	events, err := s.loadEvents(id)
	if err != nil {
		return nil, err
	}
	run.Journal.Events = events

	return &run, nil
}

func (s *Store) loadEvents(runID int64) ([]replay.Event, error) {
	rows, err := s.db.Query(
		`SELECT tick, kind
		 FROM run_events
		 WHERE run_id = ?
		 ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []replay.Event
	for rows.Next() {
		var (
			tick int64
			kind string
		)
		if err := rows.Scan(&tick, &kind); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		events = append(events, replay.Event{Tick: uint64(tick), Kind: replay.EventKind(kind)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

// RecentRuns lists the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.score, r.ticks, r.created_at,
		        (SELECT COUNT(*) FROM run_events e WHERE e.run_id = r.id)
		 FROM runs r
		 ORDER BY r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			r         RunSummary
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Seed, &r.Score, &ticks, &createdAt, &r.Events); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// DeleteRun removes a run and its events.
func (s *Store) DeleteRun(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM run_events WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
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
