// Package storage provides SQLite-based persistence for recorded sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/round"
)

// ErrReplayNotFound is returned when a replay ID does not exist.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ReplayInfo describes a stored replay without its frames.
type ReplayInfo struct {
	ID          int64
	Seed        int64
	Field       round.Playfield
	LeftPlayer  string
	RightPlayer string
	Frames      int
	CreatedAt   time.Time
}

// Replay is everything needed to re-run a session deterministically.
type Replay struct {
	ReplayInfo
	Config config.PongConfig
	Steps  []round.Frame
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			half_width REAL NOT NULL,
			half_height REAL NOT NULL,
			left_player TEXT NOT NULL,
			right_player TEXT NOT NULL,
			config TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS replay_frames (
			replay_id INTEGER NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			delta REAL NOT NULL,
			left_dir INTEGER NOT NULL,
			right_dir INTEGER NOT NULL,
			PRIMARY KEY (replay_id, idx)
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

// SaveReplay stores a replay and its frames in one transaction.
// Returns the ID of the inserted replay.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	cfgYAML, err := yaml.Marshal(r.Config)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.Exec(
		`INSERT INTO replays (seed, half_width, half_height, left_player, right_player, config, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Field.HalfWidth, r.Field.HalfHeight, r.LeftPlayer, r.RightPlayer, string(cfgYAML), len(r.Steps),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO replay_frames (replay_id, idx, delta, left_dir, right_dir) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range r.Steps {
		if _, err := stmt.Exec(id, i, f.Delta, int(f.Left), int(f.Right)); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

// LoadReplay returns the replay with the given ID, frames included.
func (s *Store) LoadReplay(id int64) (Replay, error) {
	var r Replay
	var cfgYAML string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, half_width, half_height, left_player, right_player, config, frames, created_at
		 FROM replays WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Seed, &r.Field.HalfWidth, &r.Field.HalfHeight,
		&r.LeftPlayer, &r.RightPlayer, &cfgYAML, &r.Frames, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)

	r.Config = config.DefaultPongConfig()
	if err := yaml.Unmarshal([]byte(cfgYAML), &r.Config); err != nil {
		return r, fmt.Errorf("storage: cannot decode config: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT delta, left_dir, right_dir FROM replay_frames
		 WHERE replay_id = ? ORDER BY idx`,
		id,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	r.Steps = make([]round.Frame, 0, r.Frames)
	for rows.Next() {
		var f round.Frame
		var left, right int
		if err := rows.Scan(&f.Delta, &left, &right); err != nil {
			return r, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		f.Left = physics.Direction(left)
		f.Right = physics.Direction(right)
		r.Steps = append(r.Steps, f)
	}
	if err := rows.Err(); err != nil {
		return r, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return r, nil
}

// ListReplays returns the most recent replays first.
func (s *Store) ListReplays(limit int) ([]ReplayInfo, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, half_width, half_height, left_player, right_player, frames, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayInfo
	for rows.Next() {
		var e ReplayInfo
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Seed, &e.Field.HalfWidth, &e.Field.HalfHeight,
			&e.LeftPlayer, &e.RightPlayer, &e.Frames, &createdAt); err != nil {
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

// DeleteReplay removes a replay and its frames.
func (s *Store) DeleteReplay(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	if _, err := tx.Exec("DELETE FROM replay_frames WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
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
