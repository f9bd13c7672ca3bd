package unimod

import (
	"container/list"
	"sync"
)

// lruCache is a size-bounded cache with O(1) lookup and least-recently-used
// eviction. It is safe for concurrent use, keeping a built Index readable
// from multiple goroutines.
type lruCache[K comparable, V any] struct {
	mu  sync.Mutex
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

type lruEntry[K comparable, V any] struct {
	k K
	v V
}

func newLRUCache[K comparable, V any](capacity int) *lruCache[K, V] {
	if capacity <= 0 {
		capacity = 1024
	}
	return &lruCache[K, V]{
		cap: capacity,
		ll:  list.New(),
		m:   make(map[K]*list.Element, capacity),
	}
}

func (c *lruCache[K, V]) get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.m[k]; ok {
		c.ll.MoveToFront(e)
		return e.Value.(*lruEntry[K, V]).v, true
	}
	var zero V
	return zero, false
}

func (c *lruCache[K, V]) put(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.m[k]; ok {
		c.ll.MoveToFront(e)
		e.Value.(*lruEntry[K, V]).v = v
		return
	}
	c.m[k] = c.ll.PushFront(&lruEntry[K, V]{k: k, v: v})
	if c.ll.Len() > c.cap {
		tail := c.ll.Back()
		if tail != nil {
			c.ll.Remove(tail)
			delete(c.m, tail.Value.(*lruEntry[K, V]).k)
		}
	}
}
