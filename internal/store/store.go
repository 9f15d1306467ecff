// Package store persists the progression snapshot (profile cache + workout
// history) in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS profile (
		id              INTEGER PRIMARY KEY CHECK (id = 1),
		level           INTEGER NOT NULL DEFAULT 1,
		xp              REAL NOT NULL DEFAULT 0,
		next_level_xp   REAL NOT NULL DEFAULT 50,
		total_xp        REAL NOT NULL DEFAULT 0,
		coins           INTEGER NOT NULL DEFAULT 0,
		size            REAL NOT NULL DEFAULT 0,
		strength        REAL NOT NULL DEFAULT 0,
		dexterity       REAL NOT NULL DEFAULT 0,
		agility         REAL NOT NULL DEFAULT 0,
		endurance       REAL NOT NULL DEFAULT 0,
		vitality        REAL NOT NULL DEFAULT 0,
		best_1rm        TEXT NOT NULL DEFAULT '{}',
		baselines       TEXT NOT NULL DEFAULT '{}',
		last_logged     TEXT NOT NULL DEFAULT '{}',
		ranks           TEXT NOT NULL DEFAULT '{}',
		first_grants    TEXT NOT NULL DEFAULT '[]',
		streaks         TEXT NOT NULL DEFAULT '{}',
		last_streak_day TEXT NOT NULL DEFAULT '{}',
		inventory       TEXT NOT NULL DEFAULT '[]',
		bodyweight_kg   REAL NOT NULL DEFAULT 70,
		class           TEXT NOT NULL DEFAULT 'warrior',
		challenge_prefs TEXT NOT NULL DEFAULT '{}',
		last_daily_gen  TEXT NOT NULL DEFAULT '',
		last_weekly_gen TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id                TEXT PRIMARY KEY,
		ts                TEXT NOT NULL,
		category          TEXT NOT NULL,
		reps              INTEGER,
		weight_kg         REAL,
		duration_min      REAL,
		distance_km       REAL,
		gain_size         REAL NOT NULL DEFAULT 0,
		gain_strength     REAL NOT NULL DEFAULT 0,
		gain_dexterity    REAL NOT NULL DEFAULT 0,
		gain_agility      REAL NOT NULL DEFAULT 0,
		gain_endurance    REAL NOT NULL DEFAULT 0,
		gain_vitality     REAL NOT NULL DEFAULT 0,
		exp_gained        REAL NOT NULL DEFAULT 0,
		prev_level        INTEGER NOT NULL DEFAULT 1,
		new_level         INTEGER NOT NULL DEFAULT 1,
		est_1rm           REAL,
		prev_best_1rm     REAL,
		total_progress_xp REAL NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_ts       ON workouts(ts);
	CREATE INDEX IF NOT EXISTS idx_workouts_category ON workouts(category);

	CREATE TABLE IF NOT EXISTS chests (
		id              TEXT PRIMARY KEY,
		tier            TEXT NOT NULL,
		earned_at_level INTEGER NOT NULL,
		date_earned     TEXT NOT NULL,
		opened          INTEGER NOT NULL DEFAULT 0,
		rewards         TEXT NOT NULL DEFAULT '[]'
	);

	CREATE TABLE IF NOT EXISTS challenges (
		id           TEXT PRIMARY KEY,
		period       TEXT NOT NULL,
		focus        TEXT NOT NULL,
		kind         TEXT NOT NULL,
		unit         TEXT NOT NULL,
		target       REAL NOT NULL,
		exp_reward   REAL NOT NULL,
		created_at   TEXT NOT NULL,
		expires_at   TEXT NOT NULL,
		completed_at TEXT,
		progress     REAL NOT NULL DEFAULT 0,
		seen         TEXT NOT NULL DEFAULT '[]'
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('rng_seed', '');
	`
	_, err := s.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.config/frpg/frpg.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "frpg", "frpg.db"), nil
}
