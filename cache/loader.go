package cache

import (
	"errors"
	"os"

	"gunmenu/internal/gamelist"
	"gunmenu/internal/logging"
)

// CachedLoader parses gamelists through the cache. Any cache failure falls
// back to parsing the file directly.
type CachedLoader struct {
	Manager *Manager
}

func NewCachedLoader(cm *Manager) *CachedLoader {
	return &CachedLoader{Manager: cm}
}

func (l *CachedLoader) LoadGamelist(path string) ([]gamelist.Entry, error) {
	logger := logging.GetLogger()

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	fp := FingerprintOf(info)

	entries, err := l.Manager.GetGamelist(path, fp)
	if err == nil {
		logger.Debug("Gamelist cache hit", "path", path, "entries", len(entries))
		return entries, nil
	}
	if !errors.Is(err, ErrCacheMiss) && !errors.Is(err, ErrStale) {
		logger.Debug("Gamelist cache unavailable", "path", path, "error", err)
	}

	entries, err = gamelist.LoadEntries(path)
	if err != nil {
		return nil, err
	}

	if err := l.Manager.SaveGamelist(path, fp, entries); err != nil {
		logger.Debug("Unable to cache gamelist", "path", path, "error", err)
	}

	return entries, nil
}
