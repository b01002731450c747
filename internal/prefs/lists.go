package prefs

import (
	"fmt"
)

// GetStringList returns the ordered list stored under key. An absent key
// yields an empty list, not an error.
func (db *DB) GetStringList(key string) ([]string, error) {
	rows, err := db.Query(`
		SELECT value FROM pref_list_items WHERE key = ? ORDER BY position
	`, key)
	if err != nil {
		return nil, fmt.Errorf("get string list %q: %w", key, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan list item %q: %w", key, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// SetStringList replaces the entire list stored under key. The delete and
// re-insert happen in one transaction so readers never observe a partial
// list.
func (db *DB) SetStringList(key string, values []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin set list %q: %w", key, err)
	}

	if _, err := tx.Exec("DELETE FROM pref_list_items WHERE key = ?", key); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear list %q: %w", key, err)
	}

	for i, v := range values {
		if _, err := tx.Exec(
			"INSERT INTO pref_list_items (key, position, value) VALUES (?, ?, ?)",
			key, i, v,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert list item %q[%d]: %w", key, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set list %q: %w", key, err)
	}
	return nil
}
