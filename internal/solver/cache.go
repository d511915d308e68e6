// apps/solver/internal/solver/cache.go
//
// Cache for the opening guess. With no feedback applied yet the candidate
// set equals the full solutions list, so the best opening is identical for
// every session over the same dictionary pair — and it is by far the most
// expensive pick (O(|allowed| × |solutions|) feedback evaluations).
//
// The cache is an explicit, injectable object rather than a hidden global:
// entries are keyed by the dictionaries' content fingerprint, so a new
// dictionary pair can never be served a stale opening.

package solver

import "sync"

// OpeningCache memoizes opening guesses per dictionary fingerprint.
// Safe for concurrent use; a nil *OpeningCache disables caching.
type OpeningCache struct {
	mu      sync.RWMutex
	entries map[string]string // fingerprint → opening guess
}

// NewOpeningCache returns an empty cache.
func NewOpeningCache() *OpeningCache {
	return &OpeningCache{entries: make(map[string]string)}
}

func (c *OpeningCache) get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.entries[key]
	return g, ok
}

func (c *OpeningCache) put(key, guess string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = guess
}
