package countries

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache lazily populates the valid-country set on first use and keeps it for
// the process lifetime. An empty fetch result is never cached as a permanent
// failure: the next call fetches again. Concurrent first fetches are
// deduplicated through singleflight so the directory sees one request.
type Cache struct {
	directory Directory

	mu    sync.RWMutex
	names map[string]struct{}

	group singleflight.Group
}

// NewCache creates a cache over the given directory.
func NewCache(directory Directory) *Cache {
	return &Cache{directory: directory}
}

// GetOrFetch returns the cached country set, fetching it when empty. It never
// returns an error: a failed fetch degrades to an empty set, which callers
// treat as "directory unavailable".
func (c *Cache) GetOrFetch(ctx context.Context) map[string]struct{} {
	c.mu.RLock()
	cached := c.names
	c.mu.RUnlock()
	if len(cached) > 0 {
		return cached
	}

	result, _, _ := c.group.Do("countries", func() (any, error) {
		names, err := c.directory.FetchAllCountryNames(ctx)
		if err != nil {
			slog.Error("failed to fetch country directory", "error", err)
			return map[string]struct{}{}, nil
		}
		if len(names) > 0 {
			c.mu.Lock()
			c.names = names
			c.mu.Unlock()
			slog.Debug("country directory cached", "count", len(names))
		}
		return names, nil
	})
	return result.(map[string]struct{})
}

// Contains reports whether name is in the given set.
func Contains(names map[string]struct{}, name string) bool {
	_, ok := names[name]
	return ok
}
