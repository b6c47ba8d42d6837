// Package assets handles engine resource loading and caching.
package assets

import (
	"os"
	"sync"

	"github.com/Faultbox/skr/internal/engine/errstate"
)

// ReadFile reads an entire file and appends a terminating NUL byte so the
// buffer can be handed to the GL source APIs as-is. The caller owns the
// returned slice.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errstate.Wrap(errstate.KindIO, err, "failed to open %s", path)
	}
	return append(data, 0), nil
}

// Loader reads files from disk with an in-memory cache. Repeated loads of
// the same shader source or texture path hit the cache.
type Loader struct {
	cache *Cache
}

// NewLoader creates a caching loader.
func NewLoader() *Loader {
	return &Loader{cache: NewCache()}
}

// Load reads a file, serving repeated reads from the cache.
func (l *Loader) Load(path string) ([]byte, error) {
	if data, ok := l.cache.Get(path); ok {
		return data, nil
	}

	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	l.cache.Set(path, data)
	return data, nil
}

// Stats returns cache hit/miss counters.
func (l *Loader) Stats() (hits, misses int) {
	return l.cache.Stats()
}

// Clear drops all cached entries.
func (l *Loader) Clear() {
	l.cache.Clear()
}

// Cache is a simple in-memory cache for loaded resources.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
