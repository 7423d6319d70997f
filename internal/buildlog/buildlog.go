package buildlog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

// Log records build runs and per-file failures in a SQLite database.
type Log struct {
	db *sql.DB
}

// RunStats summarizes one completed build run.
type RunStats struct {
	Projects        int
	ImagesProcessed int
	ImagesRebuilt   int
	VideosResolved  int
	Failures        int
}

// Run is one recorded build run.
type Run struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	RunStats
}

// Open opens (or creates) the build log at path.
func Open(path string) (*Log, error) {
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("open build log: %w", err)
	}

	// Single writer; the pool only gets in the way.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		projects INTEGER NOT NULL DEFAULT 0,
		images_processed INTEGER NOT NULL DEFAULT 0,
		images_rebuilt INTEGER NOT NULL DEFAULT 0,
		videos_resolved INTEGER NOT NULL DEFAULT 0,
		failures INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS failures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		project TEXT NOT NULL,
		phase TEXT NOT NULL,
		file TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_failures_run ON failures(run_id);
	`
	if _, err := db.Exec(schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// StartRun inserts a new run row and returns its id.
func (l *Log) StartRun(startedAt time.Time) (int64, error) {
	res, err := l.db.Exec(`INSERT INTO runs (started_at) VALUES (?)`, startedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("start run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("start run id: %w", err)
	}
	return id, nil
}

// FinishRun records the final statistics of a run.
func (l *Log) FinishRun(id int64, finishedAt time.Time, stats RunStats) error {
	_, err := l.db.Exec(`
		UPDATE runs
		SET finished_at = ?, projects = ?, images_processed = ?,
		    images_rebuilt = ?, videos_resolved = ?, failures = ?
		WHERE id = ?`,
		finishedAt.UTC(), stats.Projects, stats.ImagesProcessed,
		stats.ImagesRebuilt, stats.VideosResolved, stats.Failures, id)
	if err != nil {
		return fmt.Errorf("finish run %d: %w", id, err)
	}
	return nil
}

// AddFailure records one per-file transform failure for a run.
func (l *Log) AddFailure(runID int64, project, phase, file, message string) error {
	_, err := l.db.Exec(`
		INSERT INTO failures (run_id, project, phase, file, message)
		VALUES (?, ?, ?, ?, ?)`,
		runID, project, phase, file, message)
	if err != nil {
		return fmt.Errorf("record failure: %w", err)
	}
	return nil
}

// LastRun returns the most recently started run, or nil when the log is empty.
func (l *Log) LastRun() (*Run, error) {
	row := l.db.QueryRow(`
		SELECT id, started_at, finished_at, projects, images_processed,
		       images_rebuilt, videos_resolved, failures
		FROM runs ORDER BY id DESC LIMIT 1`)

	var r Run
	var finished sql.NullTime
	err := row.Scan(&r.ID, &r.StartedAt, &finished, &r.Projects,
		&r.ImagesProcessed, &r.ImagesRebuilt, &r.VideosResolved, &r.Failures)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last run: %w", err)
	}
	if finished.Valid {
		r.FinishedAt = finished.Time
	}
	return &r, nil
}

// FailureCount returns the number of recorded failures for a run.
func (l *Log) FailureCount(runID int64) (int, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM failures WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count failures: %w", err)
	}
	return n, nil
}
