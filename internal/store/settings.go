package store

import (
	"database/sql"
	"fmt"
)

// Settings is a small KV table for app-level state that lives outside the
// snapshot, such as the persisted RNG seed.

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

// GetSettingDefault returns the stored value, or def when the key is missing
// or empty.
func (s *Store) GetSettingDefault(key, def string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows || (err == nil && value == "") {
		return def
	}
	if err != nil {
		return def
	}
	return value
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
