package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Connect opens the local storefront state database, creating the data
// directory on first run.
func Connect(dataDir string) (*sql.DB, error) {

	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "shophub.db")
	database, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	err = database.Ping()
	if err != nil {

		_ = database.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return database, nil
}
