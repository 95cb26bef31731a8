// This file is part of Gym2600.
//
// Gym2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gym2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gym2600.  If not, see <https://www.gnu.org/licenses/>.

package episodes

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DatabaseFile is the name of the database file in the resource directory.
const DatabaseFile = "episodes.db"

// Store is a connection to the episode database.
type Store struct {
	db *sql.DB
}

// Entry is the outcome of a single episode.
type Entry struct {
	ID      int64
	RunID   string
	ROM     string
	Episode int
	Return  int
	Steps   int

	// wall clock time of the episode. stored with millisecond precision
	Duration time.Duration

	// when the entry was recorded. if zero when passed to Record() the
	// current time is used
	CreatedAt time.Time
}

func (e Entry) String() string {
	return fmt.Sprintf("%s episode %d: return %d in %d steps (%s)", e.ROM, e.Episode, e.Return, e.Steps, e.Duration.Round(time.Millisecond))
}

// Summary is the aggregate of all episodes in a run.
type Summary struct {
	RunID    string
	ROM      string
	Episodes int
	Steps    int
	Mean     float64
	Best     int
	Worst    int
}

// Open creates or opens the database at the named path. A leading ~ is
// expanded to the user's home directory and any missing directories are
// created.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("episodes: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("episodes: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("episodes: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("episodes: cannot connect to database: %w", err)
	}

	s := &Store{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("episodes: migration failed: %w", err)
	}

	return s, nil
}

// times are stored as unix milliseconds
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			rom TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			rom TEXT NOT NULL,
			episode INTEGER NOT NULL,
			episode_return INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_run ON episodes(run_id);
		CREATE INDEX IF NOT EXISTS idx_episodes_best ON episodes(rom, episode_return DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NewRun creates a new run for the ROM and returns its ID.
func (s *Store) NewRun(rom string) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	_, err := s.db.Exec(
		"INSERT INTO runs (id, rom, created_at) VALUES (?, ?, ?)",
		id, rom, time.Now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("episodes: cannot create run: %w", err)
	}

	return id, nil
}

// Record the outcome of an episode. Returns the ID of the new entry.
func (s *Store) Record(e Entry) (int64, error) {
	if e.RunID == "" {
		return 0, fmt.Errorf("episodes: entry has no run ID")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO episodes (run_id, rom, episode, episode_return, steps, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.ROM, e.Episode, e.Return, e.Steps, e.Duration.Milliseconds(), e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("episodes: cannot record episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("episodes: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectEntries = `SELECT id, run_id, rom, episode, episode_return, steps, duration_ms, created_at FROM episodes`

// Recent returns the most recently recorded entries, newest first. A limit of
// zero or less means a limit of ten.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectEntries+" ORDER BY created_at DESC, id DESC LIMIT ?", limit)
}

// Best returns the entries with the highest return for the ROM. A limit of
// zero or less means a limit of ten.
func (s *Store) Best(rom string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectEntries+" WHERE rom = ? ORDER BY episode_return DESC, steps ASC, id ASC LIMIT ?", rom, limit)
}

// Run returns every entry in the run in episode order.
func (s *Store) Run(runID string) ([]Entry, error) {
	return s.query(selectEntries+" WHERE run_id = ? ORDER BY episode ASC, id ASC", runID)
}

// Summarise the episodes in a run.
func (s *Store) Summarise(runID string) (Summary, error) {
	sum := Summary{RunID: runID}

	var mean sql.NullFloat64
	var best, worst, steps sql.NullInt64

	err := s.db.QueryRow(
		`SELECT runs.rom, COUNT(episodes.id), SUM(episodes.steps), AVG(episodes.episode_return), MAX(episodes.episode_return), MIN(episodes.episode_return)
		 FROM runs LEFT JOIN episodes ON episodes.run_id = runs.id
		 WHERE runs.id = ?
		 GROUP BY runs.id`,
		runID,
	).Scan(&sum.ROM, &sum.Episodes, &steps, &mean, &best, &worst)
	if err != nil {
		return Summary{}, fmt.Errorf("episodes: cannot summarise run %s: %w", runID, err)
	}

	sum.Steps = int(steps.Int64)
	sum.Mean = mean.Float64
	sum.Best = int(best.Int64)
	sum.Worst = int(worst.Int64)

	return sum, nil
}

func (s *Store) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("episodes: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var duration, created int64
		if err := rows.Scan(&e.ID, &e.RunID, &e.ROM, &e.Episode, &e.Return, &e.Steps, &duration, &created); err != nil {
			return nil, fmt.Errorf("episodes: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(duration) * time.Millisecond
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("episodes: row iteration error: %w", err)
	}

	return entries, nil
}
