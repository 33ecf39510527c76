package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lokey/internal/catalog"
	"lokey/internal/lokerr"
)

// Snapshot is one cached scan: its metadata plus every record. Locales is
// the full list the scan saw, including locales whose files held no
// records; the catalog needs those for shadow synthesis.
type Snapshot struct {
	ID            string
	CreatedAt     time.Time
	DefaultLocale string
	Files         int
	Locales       []string
	Records       []catalog.LocaleRecord
}

// SaveSnapshot replaces the cached snapshot with a new one and returns its
// id. Only the latest snapshot is kept; the catalog is always rebuilt from
// the full record set, so history buys nothing here.
func (db *DB) SaveSnapshot(defaultLocale string, files int, locales []string, records []catalog.LocaleRecord) (string, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scans`); err != nil {
		return "", fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		`INSERT INTO scans (id, created_at, default_locale, files, locales) VALUES (?, ?, ?, ?, ?)`,
		id, createdAt, defaultLocale, files, strings.Join(locales, ","),
	); err != nil {
		return "", fmt.Errorf("failed to insert scan: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO records (scan_id, keypath, locale, value, filepath) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if r.Shadow {
			// Shadows are derived data, recomputed at catalog build time.
			continue
		}
		if _, err := stmt.Exec(id, r.KeyPath, r.Locale, r.Value, r.FilePath); err != nil {
			return "", fmt.Errorf("failed to insert record %s/%s: %w", r.KeyPath, r.Locale, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}

	db.logger.Debug("snapshot saved", "scan", id, "records", len(records))
	return id, nil
}

// LoadSnapshot returns the cached snapshot, or a SNAPSHOT_STALE error when
// no scan has been stored yet.
func (db *DB) LoadSnapshot() (*Snapshot, error) {
	snap := &Snapshot{}
	var createdAt, locales string
	err := db.conn.QueryRow(
		`SELECT id, created_at, default_locale, files, locales FROM scans ORDER BY created_at DESC LIMIT 1`,
	).Scan(&snap.ID, &createdAt, &snap.DefaultLocale, &snap.Files, &locales)
	if err == sql.ErrNoRows {
		return nil, lokerr.Newf(lokerr.SnapshotStale, "no scan snapshot found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scan: %w", err)
	}
	snap.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if locales != "" {
		snap.Locales = strings.Split(locales, ",")
	}

	rows, err := db.conn.Query(
		`SELECT keypath, locale, value, filepath FROM records WHERE scan_id = ? ORDER BY keypath, locale`,
		snap.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r catalog.LocaleRecord
		if err := rows.Scan(&r.KeyPath, &r.Locale, &r.Value, &r.FilePath); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		snap.Records = append(snap.Records, r)
	}
	return snap, rows.Err()
}

// CountRecords returns per-locale record counts of the cached snapshot.
func (db *DB) CountRecords() (map[string]int, error) {
	rows, err := db.conn.Query(`SELECT locale, COUNT(*) FROM records GROUP BY locale`)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var locale string
		var n int
		if err := rows.Scan(&locale, &n); err != nil {
			return nil, err
		}
		counts[locale] = n
	}
	return counts, rows.Err()
}
