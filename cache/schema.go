package cache

import (
	"database/sql"
	"time"
)

const schemaVersion = 1

// nowUTC returns the current UTC time formatted as RFC3339 for consistent datetime storage
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func createTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS cache_metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS gamelists (
			path TEXT PRIMARY KEY,
			size INTEGER NOT NULL,
			mod_time INTEGER NOT NULL,
			entry_count INTEGER DEFAULT 0,
			cached_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS gamelist_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			gamelist_path TEXT NOT NULL,
			position INTEGER NOT NULL,
			rom_path TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			UNIQUE(gamelist_path, position)
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_gamelist_entries_path ON gamelist_entries(gamelist_path)`)
	if err != nil {
		return err
	}

	return tx.Commit()
}
