package utils

import (
	"container/list"
	"sync"
	"time"
)

type Cache[K comparable, V any] interface {
	Add(K, V)
	Get(K) (V, bool)
}

// Map object cache with FIFO eviction
type cache[K comparable, V any] struct {
	sync.RWMutex

	cacheMap map[K]V
	keys     *list.List
	maxSize  int
}

func NewCache[K comparable, V any](maxSize int) Cache[K, V] {
	return &cache[K, V]{
		cacheMap: make(map[K]V),
		keys:     list.New(),
		maxSize:  maxSize,
	}
}

func (c *cache[K, V]) Add(k K, v V) {
	c.Lock()
	if _, ok := c.cacheMap[k]; ok {
		c.cacheMap[k] = v
	} else {
		c.cacheMap[k] = v
		c.keys.PushBack(k)
		if c.keys.Len() > c.maxSize {
			e := c.keys.Front()
			c.keys.Remove(e)
			delete(c.cacheMap, e.Value.(K))
		}
	}
	c.Unlock()
}

func (c *cache[K, V]) Get(k K) (V, bool) {
	c.RLock()
	v, ok := c.cacheMap[k]
	c.RUnlock()
	return v, ok
}

// Single-slot cache with a fixed time-to-live, shared between all callers.
// The slot holds the cached value and the time it was set; it is invalidated
// either by exceeding the TTL or explicitly after a mutation.
type TimedCache[V any] struct {
	sync.Mutex

	value V
	setAt time.Time
	valid bool
	ttl   time.Duration
}

func NewTimedCache[V any](ttl time.Duration) *TimedCache[V] {
	return &TimedCache[V]{ttl: ttl}
}

func (c *TimedCache[V]) Get(now time.Time) (V, bool) {
	c.Lock()
	defer c.Unlock()

	if !c.valid || now.Sub(c.setAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return c.value, true
}

func (c *TimedCache[V]) Set(v V, now time.Time) {
	c.Lock()
	c.value = v
	c.setAt = now
	c.valid = true
	c.Unlock()
}

// Age of the currently cached value; zero when the slot is empty
func (c *TimedCache[V]) Age(now time.Time) time.Duration {
	c.Lock()
	defer c.Unlock()

	if !c.valid {
		return 0
	}
	return now.Sub(c.setAt)
}

func (c *TimedCache[V]) Invalidate() {
	c.Lock()
	c.valid = false
	c.Unlock()
}
