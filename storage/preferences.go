package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Zachkp/wildsme/preference"
)

// ThemeStore is the stored theme of one visitor.
type ThemeStore struct {
	store   *Store
	visitor string
}

// Theme returns the preference store of the given visitor.
func (s *Store) Theme(visitorID string) *ThemeStore {
	return &ThemeStore{store: s, visitor: visitorID}
}

// Load returns the visitor's stored theme, if any.
func (t *ThemeStore) Load() (preference.Theme, bool, error) {
	var raw string
	err := t.store.db.QueryRow(`SELECT theme FROM preferences WHERE visitor_id = ?`, t.visitor).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query theme: %w", err)
	}
	theme, err := preference.Parse(raw)
	if err != nil {
		// A corrupt row is treated as no preference.
		return "", false, nil
	}
	return theme, true, nil
}

// Save records the visitor's theme.
func (t *ThemeStore) Save(theme preference.Theme) error {
	_, err := t.store.db.Exec(`
		INSERT INTO preferences (visitor_id, theme, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at
	`, t.visitor, string(theme), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ThemeCounts returns how many visitors prefer each theme.
func (s *Store) ThemeCounts() (map[preference.Theme]int64, error) {
	rows, err := s.db.Query(`SELECT theme, COUNT(*) FROM preferences GROUP BY theme`)
	if err != nil {
		return nil, fmt.Errorf("count themes: %w", err)
	}
	defer rows.Close()

	counts := map[preference.Theme]int64{preference.Light: 0, preference.Dark: 0}
	for rows.Next() {
		var theme string
		var n int64
		if err := rows.Scan(&theme, &n); err != nil {
			return nil, err
		}
		if t, err := preference.Parse(theme); err == nil {
			counts[t] = n
		}
	}
	return counts, rows.Err()
}
