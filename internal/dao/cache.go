package dao

import (
	"strings"
	"sync"
	"time"

	"github.com/b3/b3t/internal/model1"
)

// DefaultCacheTTL is the default time-to-live for cached resource snapshots.
const DefaultCacheTTL = 5 * time.Second

type cacheEntry struct {
	records   []model1.Record
	timestamp time.Time
}

// ResourceCache provides TTL-based caching of resource snapshots.
type ResourceCache struct {
	data map[string]cacheEntry
	ttl  time.Duration
	now  func() time.Time
	mx   sync.RWMutex
}

// NewResourceCache creates a new ResourceCache with the specified TTL.
func NewResourceCache(ttl time.Duration) *ResourceCache {
	return &ResourceCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get retrieves cached records for the given key.
// Returns false if the key is not found or the entry has expired.
func (c *ResourceCache) Get(key string) ([]model1.Record, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	entry, ok := c.data[key]
	if !ok || c.now().Sub(entry.timestamp) > c.ttl {
		return nil, false
	}

	return entry.records, true
}

// Set stores records in the cache with the given key.
func (c *ResourceCache) Set(key string, records []model1.Record) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data[key] = cacheEntry{
		records:   records,
		timestamp: c.now(),
	}
}

// Invalidate removes a specific key from the cache.
func (c *ResourceCache) Invalidate(key string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	delete(c.data, key)
}

// InvalidatePrefix removes all cache entries whose keys start with the given prefix.
func (c *ResourceCache) InvalidatePrefix(prefix string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
}
