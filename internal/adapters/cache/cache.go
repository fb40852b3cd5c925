// Package cache provides the run-scoped memoization table for analysis
// results of bare specifiers.
package cache

import (
	"sync"

	"github.com/devindavies/barrelint/internal/core/domain"
	"github.com/devindavies/barrelint/internal/core/ports"
)

var _ ports.ResultCache = (*Memory)(nil)

// Memory is an in-memory ResultCache. It has no eviction: the key space is
// bounded by the distinct bare specifiers imported across one run. Entries
// are write-once; the first write for a key wins.
type Memory struct {
	mu      sync.RWMutex
	entries map[domain.Specifier]domain.CacheEntry
}

// NewMemory creates an empty cache for one analysis run.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[domain.Specifier]domain.CacheEntry),
	}
}

// Get returns the cached entry for spec, if present.
func (c *Memory) Get(spec domain.Specifier) (domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[spec]
	return entry, ok
}

// Put stores the entry for spec unless one already exists. Concurrent
// workers may compute the same key twice; both arrive at the same result, so
// dropping the second write preserves the write-once invariant.
func (c *Memory) Put(spec domain.Specifier, entry domain.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[spec]; exists {
		return
	}
	c.entries[spec] = entry
}

// Len returns the number of cached specifiers.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
