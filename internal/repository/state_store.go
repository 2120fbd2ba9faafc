package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Storage keys, one independent row per store.
const (
	KeyUser     = "shophub_user"
	KeyCart     = "shophub_cart"
	KeyWishlist = "shophub_wishlist"
)

// StateStore is the local key/value storage the stores write through
// to: one row per key, JSON-serialized value.
type StateStore struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewStateStore(db *sql.DB, logger *logrus.Logger) (*StateStore, error) {
	schema := `
	CREATE TABLE IF NOT EXISTS state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("could not create state table: %w", err)
	}
	return &StateStore{db: db, log: logger}, nil
}

// Get returns the raw stored value for key. A missing key is reported
// as (nil, nil), never as an error.
func (s *StateStore) Get(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.Debugf("Repository: No stored value for key %s", key)
			return nil, nil
		}
		s.log.Errorf("Repository: Failed to read key %s: %v", key, err)
		return nil, fmt.Errorf("could not read key %s: %w", key, err)
	}
	return []byte(value), nil
}

// Put writes the value for key, replacing any previous row.
func (s *StateStore) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		s.log.Errorf("Repository: Failed to write key %s: %v", key, err)
		return fmt.Errorf("could not write key %s: %w", key, err)
	}
	s.log.Debugf("Repository: Wrote %d bytes to key %s", len(value), key)
	return nil
}

// Delete removes the row for key if present.
func (s *StateStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		s.log.Errorf("Repository: Failed to delete key %s: %v", key, err)
		return fmt.Errorf("could not delete key %s: %w", key, err)
	}
	return nil
}
