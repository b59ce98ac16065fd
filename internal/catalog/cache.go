package catalog

import (
	"sync"

	"github.com/calebrosario/bookhaven-backend/internal/books"
)

// CollectionKey identifies the one cached collection snapshot.
const CollectionKey = "books"

// SnapshotCache is an explicit, explicitly-invalidated in-memory cache of
// collection snapshots, keyed by collection.
type SnapshotCache struct {
	mu      sync.RWMutex
	entries map[string][]books.BookDTO
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[string][]books.BookDTO)}
}

// Get returns the cached snapshot for the key, if any.
func (c *SnapshotCache) Get(key string) ([]books.BookDTO, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot, ok := c.entries[key]
	return snapshot, ok
}

// Set stores a snapshot under the key.
func (c *SnapshotCache) Set(key string, records []books.BookDTO) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = records
}

// Invalidate discards the snapshot, forcing the next read to refetch.
func (c *SnapshotCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
