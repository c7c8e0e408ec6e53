package cache

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized = errors.New("cache manager not initialized")
	ErrCacheMiss      = errors.New("cache miss")
	ErrStale          = errors.New("cached entry is stale")
)

type Error struct {
	Op        string // Operation name: "get", "save", "clear", etc.
	Key       string // Gamelist path if applicable
	CacheType string // Table: "gamelists", "gamelist_entries", "cache_metadata"
	Err       error  // Underlying error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("cache %s [%s:%s]: %v", e.Op, e.CacheType, e.Key, e.Err)
	}
	if e.CacheType != "" {
		return fmt.Sprintf("cache %s [%s]: %v", e.Op, e.CacheType, e.Err)
	}
	return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newCacheError(op, cacheType, key string, err error) *Error {
	return &Error{
		Op:        op,
		Key:       key,
		CacheType: cacheType,
		Err:       err,
	}
}
