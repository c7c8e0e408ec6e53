package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"gunmenu/internal/gamelist"
)

// Fingerprint identifies one version of a gamelist file on disk.
type Fingerprint struct {
	Size    int64
	ModTime time.Time
}

func FingerprintOf(info os.FileInfo) Fingerprint {
	return Fingerprint{Size: info.Size(), ModTime: info.ModTime()}
}

// GetGamelist returns the cached entries for path. ErrCacheMiss means the
// path was never stored, ErrStale that the file changed since.
func (cm *Manager) GetGamelist(path string, fp Fingerprint) ([]gamelist.Entry, error) {
	if cm == nil || !cm.initialized {
		return nil, ErrNotInitialized
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()

	var size, modTime int64
	err := cm.db.QueryRow(`SELECT size, mod_time FROM gamelists WHERE path = ?`, path).Scan(&size, &modTime)
	if errors.Is(err, sql.ErrNoRows) {
		cm.stats.recordMiss()
		return nil, newCacheError("get", "gamelists", path, ErrCacheMiss)
	}
	if err != nil {
		cm.stats.recordError()
		return nil, newCacheError("get", "gamelists", path, err)
	}

	if size != fp.Size || modTime != fp.ModTime.UnixNano() {
		cm.stats.recordMiss()
		return nil, newCacheError("get", "gamelists", path, ErrStale)
	}

	rows, err := cm.db.Query(`
		SELECT rom_path, name, image FROM gamelist_entries
		WHERE gamelist_path = ? ORDER BY position
	`, path)
	if err != nil {
		cm.stats.recordError()
		return nil, newCacheError("get", "gamelist_entries", path, err)
	}
	defer rows.Close()

	var entries []gamelist.Entry
	for rows.Next() {
		var e gamelist.Entry
		if err := rows.Scan(&e.Path, &e.Name, &e.Image); err != nil {
			cm.stats.recordError()
			return nil, newCacheError("get", "gamelist_entries", path, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		cm.stats.recordError()
		return nil, newCacheError("get", "gamelist_entries", path, err)
	}

	cm.stats.recordHit()
	return entries, nil
}

// SaveGamelist replaces whatever is stored for path.
func (cm *Manager) SaveGamelist(path string, fp Fingerprint, entries []gamelist.Entry) error {
	if cm == nil || !cm.initialized {
		return ErrNotInitialized
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	tx, err := cm.db.Begin()
	if err != nil {
		return newCacheError("save", "gamelists", path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM gamelist_entries WHERE gamelist_path = ?`, path); err != nil {
		return newCacheError("save", "gamelist_entries", path, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO gamelist_entries (gamelist_path, position, rom_path, name, image)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return newCacheError("save", "gamelist_entries", path, err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(path, i, e.Path, e.Name, e.Image); err != nil {
			return newCacheError("save", "gamelist_entries", path, fmt.Errorf("entry %d: %w", i, err))
		}
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO gamelists (path, size, mod_time, entry_count, cached_at)
		VALUES (?, ?, ?, ?, ?)
	`, path, fp.Size, fp.ModTime.UnixNano(), len(entries), nowUTC())
	if err != nil {
		return newCacheError("save", "gamelists", path, err)
	}

	if err := tx.Commit(); err != nil {
		return newCacheError("save", "gamelists", path, err)
	}

	return nil
}
