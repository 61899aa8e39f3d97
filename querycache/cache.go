// Package querycache caches rendered statements behind an LRU. Keys are
// caller-chosen uint64s, typically an Expr or statement fingerprint;
// deriving the key from a render would do the work the cache exists to
// skip.
package querycache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fast/pqb"
)

// Rendered is a cached render: placeholder SQL plus its bind values.
type Rendered struct {
	SQL    string
	Values []pqb.Value
}

// Cache is a fixed-size LRU of rendered statements. Safe for concurrent use.
type Cache struct {
	cache *lru.Cache[uint64, *Rendered]
	mu    sync.RWMutex
}

// New creates a cache holding at most size entries.
func New(size int) (*Cache, error) {
	cache, err := lru.New[uint64, *Rendered](size)
	if err != nil {
		return nil, err
	}
	return &Cache{cache: cache}, nil
}

func (c *Cache) Get(key uint64) (*Rendered, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Get(key)
}

func (c *Cache) Add(key uint64, r *Rendered) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, r)
}

// GetOrBuild returns the cached render for key, calling build at most once
// per miss.
func (c *Cache) GetOrBuild(key uint64, build func() (string, []pqb.Value)) *Rendered {
	// Fast path: read lock only.
	c.mu.RLock()
	if r, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		return r
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock.
	if r, ok := c.cache.Get(key); ok {
		return r
	}

	sql, values := build()
	r := &Rendered{SQL: sql, Values: values}
	c.cache.Add(key, r)
	return r
}

// GetOrRender caches the placeholder render of a statement.
func (c *Cache) GetOrRender(key uint64, st pqb.Statement) *Rendered {
	return c.GetOrBuild(key, st.ToValues)
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}
