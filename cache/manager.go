package cache

import (
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gunmenu/internal/logging"

	_ "modernc.org/sqlite"
)

const (
	dbFilename       = "gunmenu.db"
	schemaVersionKey = "schema_version"
)

type Manager struct {
	db          *sql.DB
	dbPath      string
	mu          sync.RWMutex
	initialized bool

	stats *Stats
}

type Stats struct {
	mu         sync.Mutex
	Hits       int64
	Misses     int64
	Errors     int64
	LastAccess time.Time
}

func (s *Stats) recordHit() {
	s.mu.Lock()
	s.Hits++
	s.LastAccess = time.Now()
	s.mu.Unlock()
}

func (s *Stats) recordMiss() {
	s.mu.Lock()
	s.Misses++
	s.LastAccess = time.Now()
	s.mu.Unlock()
}

func (s *Stats) recordError() {
	s.mu.Lock()
	s.Errors++
	s.mu.Unlock()
}

// Snapshot copies the counters.
func (s *Stats) Snapshot() (hits, misses, errs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Hits, s.Misses, s.Errors
}

var (
	cacheManager     *Manager
	cacheManagerOnce sync.Once
	cacheManagerErr  error
)

func GetCacheManager() *Manager {
	return cacheManager
}

// InitCacheManager opens the process-wide cache at .cache/gunmenu.db under
// the working directory.
func InitCacheManager() error {
	cacheManagerOnce.Do(func() {
		cacheManager, cacheManagerErr = newCacheManager(getCacheDBPath())
	})
	return cacheManagerErr
}

func newCacheManager(dbPath string) (*Manager, error) {
	logger := logging.GetLogger()

	cacheDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, newCacheError("init", "", "", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, newCacheError("init", "", "", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, newCacheError("init", "", "", err)
	}

	cm := &Manager{
		db:          db,
		dbPath:      dbPath,
		initialized: true,
		stats:       &Stats{},
	}

	if err := cm.checkSchemaVersion(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Cache manager initialized", "path", dbPath)
	return cm, nil
}

func (cm *Manager) Close() error {
	if cm == nil || cm.db == nil {
		return nil
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.initialized = false
	return cm.db.Close()
}

func (cm *Manager) Stats() *Stats {
	if cm == nil {
		return &Stats{}
	}
	return cm.stats
}

func (cm *Manager) Clear() error {
	if cm == nil || !cm.initialized {
		return ErrNotInitialized
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	tx, err := cm.db.Begin()
	if err != nil {
		return newCacheError("clear", "", "", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"gamelist_entries", "gamelists"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return newCacheError("clear", table, "", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return newCacheError("clear", "", "", err)
	}

	logging.GetLogger().Info("Cache cleared")
	return nil
}

func (cm *Manager) GetMetadata(key string) (string, error) {
	if cm == nil || !cm.initialized {
		return "", ErrNotInitialized
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()

	var value string
	err := cm.db.QueryRow(`SELECT value FROM cache_metadata WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", newCacheError("get_metadata", "cache_metadata", key, err)
	}

	return value, nil
}

func (cm *Manager) setMetadata(key, value string) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	_, err := cm.db.Exec(`
		INSERT OR REPLACE INTO cache_metadata (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, nowUTC())
	if err != nil {
		return newCacheError("set_metadata", "cache_metadata", key, err)
	}
	return nil
}

// checkSchemaVersion empties a cache written under another schema version,
// or with no version at all, and records the current one.
func (cm *Manager) checkSchemaVersion() error {
	want := strconv.Itoa(schemaVersion)

	stored, err := cm.GetMetadata(schemaVersionKey)
	if err == nil && stored == want {
		return nil
	}

	logging.GetLogger().Info("Cache schema changed, clearing", "stored", stored, "current", want)
	if err := cm.Clear(); err != nil {
		return err
	}
	return cm.setMetadata(schemaVersionKey, want)
}

func getCacheDBPath() string {
	return filepath.Join(GetCacheDir(), dbFilename)
}

func GetCacheDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return filepath.Join(os.TempDir(), ".cache")
	}
	return filepath.Join(wd, ".cache")
}
