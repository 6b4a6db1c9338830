package application

import (
	"fmt"
	"sync"
	"time"
)

// rateLimitEntry tracks one identifier inside the current window.
type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// RateLimiter is a simple fixed-window in-memory limiter. The public
// booking endpoint uses it keyed by client IP so a stuck frontend cannot
// flood the store with submissions.
type RateLimiter struct {
	limits map[string]*rateLimitEntry
	mu     sync.Mutex
	window time.Duration
	limit  int
}

// NewRateLimiter creates a rate limiter allowing limit requests per window.
func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		limits: make(map[string]*rateLimitEntry),
		window: window,
		limit:  limit,
	}

	go rl.cleanupLoop()

	return rl
}

// Allow reports whether a request from the identifier may proceed.
func (rl *RateLimiter) Allow(identifier string) (bool, error) {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.limits[identifier]

	if !exists || now.After(entry.ResetTime) {
		rl.limits[identifier] = &rateLimitEntry{
			Count:     1,
			ResetTime: now.Add(rl.window),
		}
		return true, nil
	}

	if entry.Count >= rl.limit {
		wait := entry.ResetTime.Sub(now).Round(time.Second)
		return false, fmt.Errorf("request limit reached, try again in %v", wait)
	}

	entry.Count++
	return true, nil
}

// Reset clears the counter for an identifier.
func (rl *RateLimiter) Reset(identifier string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.limits, identifier)
}

// Size returns the number of tracked identifiers.
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.limits)
}

// cleanupLoop drops expired windows periodically.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.limits {
		if now.After(entry.ResetTime) {
			delete(rl.limits, key)
		}
	}
}
