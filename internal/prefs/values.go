package prefs

import (
	"database/sql"
	"fmt"
)

// GetString returns the value stored under key. The second return is false
// when the key has never been set.
func (db *DB) GetString(key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM pref_values WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get string %q: %w", key, err)
	}
	return value, true, nil
}

// SetString stores value under key, replacing any previous value.
func (db *DB) SetString(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO pref_values (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set string %q: %w", key, err)
	}
	return nil
}
