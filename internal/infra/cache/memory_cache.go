package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"moodmap/internal/domain/repository"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local TTL cache bounded by entry count and by the
// total size of the stored values.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	size       int64
	maxEntries int
	maxBytes   int64
	now        func() time.Time
}

// NewMemoryCache creates a cache holding at most maxEntries values and maxBytes
// of value data. Values larger than maxBytes are never stored.
func NewMemoryCache(maxEntries int, maxBytes int64) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		maxBytes:   maxBytes,
		now:        time.Now,
	}
}

var _ repository.ResponseCache = (*MemoryCache)(nil)

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	if !c.now().Before(entry.expiresAt) {
		c.remove(key)

		return nil, repository.ErrCacheMiss
	}

	return slices.Clone(entry.value), nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The previous value goes even when the new one is rejected.
	c.remove(key)

	incoming := int64(len(value))
	if incoming > c.maxBytes {
		return nil
	}

	now := c.now()
	if c.full(incoming) {
		c.evictExpired(now)
	}
	for c.full(incoming) {
		if !c.evictSoonest() {
			break
		}
	}

	c.entries[key] = memoryEntry{
		value:     slices.Clone(value),
		expiresAt: now.Add(ttl),
	}
	c.size += incoming

	return nil
}

// Size reports the total bytes of stored values, expired ones included.
func (c *MemoryCache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.size
}

// Len reports the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *MemoryCache) full(incoming int64) bool {
	return len(c.entries) >= c.maxEntries || c.size+incoming > c.maxBytes
}

func (c *MemoryCache) remove(key string) {
	if entry, ok := c.entries[key]; ok {
		c.size -= int64(len(entry.value))
		delete(c.entries, key)
	}
}

func (c *MemoryCache) evictExpired(now time.Time) {
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			c.remove(key)
		}
	}
}

// evictSoonest drops the entry closest to expiry and reports whether one existed.
func (c *MemoryCache) evictSoonest() bool {
	var (
		victim string
		first  = true
		soon   time.Time
	)
	for key, entry := range c.entries {
		if first || entry.expiresAt.Before(soon) {
			victim, soon, first = key, entry.expiresAt, false
		}
	}
	if first {
		return false
	}
	c.remove(victim)

	return true
}
