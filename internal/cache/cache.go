package cache

import (
	"encoding/json"
	"sync"
	"time"
)

type item struct {
	data       []byte
	expiration int64
}

// Cache is a TTL'd in-process cache for hot read paths (catalog listings).
// Values are stored as their JSON encoding so cached reads hand out copies,
// never shared slices.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration
}

func New(defaultTTL time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]item),
		ttl:   defaultTTL,
	}
	go c.cleanupExpired()
	return c
}

// Set marshals value and stores it under key with the default TTL.
func (c *Cache) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.items[key] = item{data: data, expiration: time.Now().Add(c.ttl).UnixNano()}
	c.mu.Unlock()
	return nil
}

// Get unmarshals the cached value under key into target. Returns false on a
// miss or an expired entry.
func (c *Cache) Get(key string, target interface{}) (bool, error) {
	c.mu.RLock()
	it, found := c.items[key]
	c.mu.RUnlock()

	if !found || time.Now().UnixNano() > it.expiration {
		return false, nil
	}
	if err := json.Unmarshal(it.data, target); err != nil {
		return false, err
	}
	return true, nil
}

// Delete drops one key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear drops everything; mutation paths call this to invalidate listings.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]item)
	c.mu.Unlock()
}

func (c *Cache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now().UnixNano()
		c.mu.Lock()
		for key, it := range c.items {
			if now > it.expiration {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
