// Package storage provides SQLite-based persistence for team scores and
// the history of runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-adventure/internal/config"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single team score record.
type ScoreEntry struct {
	ID        int64
	WorldID   string
	Score     int
	CreatedAt time.Time
}

// Run outcomes.
const (
	OutcomeFinished = "finished"
	OutcomeDied     = "died"
	OutcomeQuit     = "quit"
)

// Run is one played game.
type Run struct {
	ID        int64
	RunID     string // ULID, also written to replay file headers
	WorldID   string
	Score1    int
	Score2    int
	Cycles    uint64
	Outcome   string // OutcomeFinished, OutcomeDied or OutcomeQuit
	Recorded  bool   // steps and results files were saved
	CreatedAt time.Time
}

// Team returns the combined score of the run.
func (r Run) Team() int {
	return r.Score1 + r.Score2
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
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

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_world_id ON scores(world_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(world_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			world_id TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			cycles INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			recorded INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_world_id ON runs(world_id);
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

// SaveScore records a new team score for the given world.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(worldID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (world_id, score) VALUES (?, ?)",
		worldID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given world.
// Results are ordered by score descending.
func (s *Store) TopScores(worldID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, world_id, score, created_at
		 FROM scores
		 WHERE world_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		worldID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.WorldID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given world.
// Returns 0 if no scores exist.
func (s *Store) HighScore(worldID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE world_id = ?",
		worldID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given world.
func (s *Store) ClearScores(worldID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE world_id = ?", worldID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveRun records a finished or abandoned run. A run without a RunID gets
// a fresh ULID. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.RunID == "" {
		run.RunID = ulid.Make().String()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, world_id, score1, score2, cycles, outcome, recorded)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.WorldID,
		run.Score1,
		run.Score2,
		int64(run.Cycles), //#nosec G115 -- cycle counts stay far below 2^63
		run.Outcome,
		run.Recorded,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, world_id, score1, score2, cycles, outcome, recorded, created_at`

// RunByID retrieves a run by its ULID. Returns nil if there is none.
func (s *Store) RunByID(runID string) (*Run, error) {
	run, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs of a world, newest first. An
// empty worldID lists every world.
func (s *Store) RecentRuns(worldID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR world_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		worldID, worldID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var cycles int64
	var createdAt any
	err := row.Scan(
		&run.ID,
		&run.RunID,
		&run.WorldID,
		&run.Score1,
		&run.Score2,
		&cycles,
		&run.Outcome,
		&run.Recorded,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}
	run.Cycles = uint64(cycles) //#nosec G115 -- stored from a uint64
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// WorldStats contains aggregated statistics for a world.
type WorldStats struct {
	WorldID    string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetWorldStats retrieves aggregated statistics for a specific world.
func (s *Store) GetWorldStats(worldID string) (*WorldStats, error) {
	stats := &WorldStats{WorldID: worldID}

	// Get count, high, avg, total
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE world_id = ?`,
		worldID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get world stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE world_id = ? ORDER BY created_at DESC LIMIT 1`,
		worldID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes.
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
