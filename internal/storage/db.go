// Package storage caches scan snapshots in a SQLite database under .lokey.
package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"lokey/internal/paths"
)

// DB wraps the snapshot database connection.
type DB struct {
	conn   *sql.DB
	logger *slog.Logger
	dbPath string
}

// Open opens or creates the snapshot database at .lokey/lokey.db,
// creating the schema when needed.
func Open(root string, logger *slog.Logger) (*DB, error) {
	if _, err := paths.EnsureStateDir(root); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", paths.WorkspaceDir, err)
	}

	dbPath := filepath.Join(paths.StateDir(root), "lokey.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",   // Write-Ahead Logging for better concurrency
		"PRAGMA synchronous=NORMAL", // Balance between safety and performance
		"PRAGMA foreign_keys=ON",    // Enable foreign key constraints
		"PRAGMA busy_timeout=5000",  // Wait up to 5 seconds on lock
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	db := &DB{conn: conn, logger: logger, dbPath: dbPath}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.dbPath
}

func (db *DB) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS scans (
	id             TEXT PRIMARY KEY,
	created_at     TEXT NOT NULL,
	default_locale TEXT NOT NULL,
	files          INTEGER NOT NULL,
	locales        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS records (
	scan_id  TEXT NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
	keypath  TEXT NOT NULL,
	locale   TEXT NOT NULL,
	value    TEXT NOT NULL,
	filepath TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_scan ON records(scan_id);
CREATE INDEX IF NOT EXISTS idx_records_keypath ON records(keypath);
CREATE INDEX IF NOT EXISTS idx_records_locale ON records(locale);
`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
