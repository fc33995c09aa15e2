package pricecache

import (
	"context"
	"sync"
	"time"

	"mortgage-advisory-engine/internal/models"
)

type memoryEntry struct {
	zones     []models.GeoZone
	expiresAt time.Time
}

// MemoryCache is an in-process Cache for tests and demo mode. Expired
// entries are evicted lazily on read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an in-process cache.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]models.GeoZone, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, ErrCacheMiss
	}

	return entry.zones, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, zones []models.GeoZone) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{zones: zones, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}
