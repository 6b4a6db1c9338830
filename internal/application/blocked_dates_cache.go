package application

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// blockedDatesEntry is one cached calendar response.
type blockedDatesEntry struct {
	Days      []time.Time
	Timestamp time.Time
}

// BlockedDatesCache is a small in-memory TTL cache for blocked-date
// calendar responses. The public site polls these on every month flip, and
// the underlying answer only changes when a booking or block is written, so
// writers call Invalidate for the studio they touched.
type BlockedDatesCache struct {
	cache map[string]*blockedDatesEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewBlockedDatesCache creates a cache with the given entry lifetime.
func NewBlockedDatesCache(ttl time.Duration) *BlockedDatesCache {
	c := &BlockedDatesCache{
		cache: make(map[string]*blockedDatesEntry),
		ttl:   ttl,
	}

	go c.cleanupLoop()

	return c
}

// Get returns the cached days for a studio and range, if fresh.
func (c *BlockedDatesCache) Get(studioID string, from, to time.Time) ([]time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[cacheKey(studioID, from, to)]
	if !exists {
		return nil, false
	}
	if time.Since(entry.Timestamp) > c.ttl {
		return nil, false
	}
	return entry.Days, true
}

// Set stores a response.
func (c *BlockedDatesCache) Set(studioID string, from, to time.Time, days []time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[cacheKey(studioID, from, to)] = &blockedDatesEntry{
		Days:      days,
		Timestamp: time.Now(),
	}
}

// Invalidate drops every cached range for a studio.
func (c *BlockedDatesCache) Invalidate(studioID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := studioID + "|"
	for key := range c.cache {
		if strings.HasPrefix(key, prefix) {
			delete(c.cache, key)
		}
	}
}

// Size returns the number of cached entries.
func (c *BlockedDatesCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

func cacheKey(studioID string, from, to time.Time) string {
	return fmt.Sprintf("%s|%s|%s", studioID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// cleanupLoop drops expired entries periodically.
func (c *BlockedDatesCache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *BlockedDatesCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.cache {
		if now.Sub(entry.Timestamp) > c.ttl {
			delete(c.cache, key)
		}
	}
}
