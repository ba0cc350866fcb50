// Package cache holds a small in-memory TTL cache, used to avoid
// re-signing download URLs for every agent update check.
package cache

import (
	"runtime"
	"sync"
	"time"
)

// Cache stores values with an expiration time. It is safe for
// concurrent use.
type Cache[K comparable, V any] struct {
	items map[K]entry[V]
	mu    sync.Mutex
	done  chan struct{}
	once  sync.Once
}

type entry[V any] struct {
	value   V
	expires int64
}

// NewMemoryCache creates a cache that drops expired entries in the
// background every cleaningInterval. A zero interval disables the
// cleanup goroutine, entries then only expire on read.
func NewMemoryCache[K comparable, V any](cleaningInterval time.Duration) *Cache[K, V] {
	cache := &Cache[K, V]{
		items: make(map[K]entry[V]),
		done:  make(chan struct{}),
	}

	if cleaningInterval != 0 {
		go func() {
			ticker := time.NewTicker(cleaningInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					cache.cleanup()
				case <-cache.done:
					return
				}
			}
		}()
	}

	// Shutdown the goroutine when GC wants to clean this up
	runtime.SetFinalizer(cache, func(c *Cache[K, V]) {
		c.Stop()
	})

	return cache
}

func (cache *Cache[K, V]) cleanup() {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	now := time.Now().UnixNano()
	for key, entry := range cache.items {
		if entry.expires > 0 && now > entry.expires {
			delete(cache.items, key)
		}
	}
}

// Get returns the value for the given key when present and not expired.
func (cache *Cache[K, V]) Get(key K) (V, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	entry, exists := cache.items[key]
	if !exists || (entry.expires > 0 && time.Now().UnixNano() > entry.expires) {
		var nothing V
		return nothing, false
	}

	return entry.value, true
}

// Set stores a value under the given key for the given duration.
// A duration of 0 or less keeps it until Stop.
func (cache *Cache[K, V]) Set(key K, value V, duration time.Duration) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	var expires int64
	if duration > 0 {
		expires = time.Now().Add(duration).UnixNano()
	}
	cache.items[key] = entry[V]{
		value:   value,
		expires: expires,
	}
}

// Stop drops all entries and stops the cleanup goroutine.
func (cache *Cache[K, V]) Stop() {
	cache.once.Do(func() {
		cache.mu.Lock()
		cache.items = make(map[K]entry[V])
		cache.mu.Unlock()
		close(cache.done)
	})
}
