package archive

import (
	"sync"
	"time"
)

// rowCache is a thread-safe TTL cache of fetched row sets, keyed by
// station and range. Entries are never mutated after set; readers share
// the stored slice.
type rowCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]cacheItem
}

type cacheItem struct {
	rows       []ObservationRow
	expiryTime time.Time
}

func newRowCache(ttl time.Duration) *rowCache {
	return &rowCache{
		ttl:  ttl,
		data: make(map[string]cacheItem),
	}
}

func (c *rowCache) get(key string) ([]ObservationRow, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.data[key]
	if !found {
		return nil, false
	}
	if time.Now().After(item.expiryTime) {
		return nil, false
	}
	return item.rows, true
}

func (c *rowCache) set(key string, rows []ObservationRow) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		rows:       rows,
		expiryTime: time.Now().Add(c.ttl),
	}
}
