/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/themevars/internal/logger"
)

// DefaultCacheSize is the number of conversions a Converter remembers by default.
const DefaultCacheSize = 1000

// Result is a memoized conversion outcome. Failed conversions are cached too.
type Result struct {
	RGB RGB
	OK  bool
}

// Cache is a bounded, concurrency-safe memo of color conversions.
//
// Entries are evicted oldest-insertion-first: lookups use Peek and inserts use
// PeekOrAdd, so reading or re-adding a key never refreshes its position.
type Cache struct {
	entries  *lru.Cache[string, Result]
	capacity int
}

// NewCache creates a cache holding at most capacity entries.
// A non-positive capacity falls back to DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	entries, err := lru.NewWithEvict(capacity, func(key string, _ Result) {
		logger.Debug("color cache evicting %q", key)
	})
	if err != nil {
		// lru only fails on a non-positive size, which is ruled out above.
		panic(err)
	}
	return &Cache{entries: entries, capacity: capacity}
}

// Get returns the cached result for key.
func (c *Cache) Get(key string) (Result, bool) {
	return c.entries.Peek(key)
}

// Add stores a result unless key is already present.
func (c *Cache) Add(key string, r Result) {
	c.entries.PeekOrAdd(key, r)
}

// Contains reports whether key is cached.
func (c *Cache) Contains(key string) bool {
	return c.entries.Contains(key)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Reset drops every cached entry.
func (c *Cache) Reset() {
	c.entries.Purge()
}
