package cache

import (
	"fmt"
	"sync"
)

// Stats reports the fill level of a cache for the admin endpoints.
type Stats struct {
	Size        int    `json:"size"`
	MaxSize     int    `json:"maxSize"`
	Utilization string `json:"utilization"`
}

// FIFO is a bounded map that evicts the oldest-inserted entry once full.
// Eviction depends only on insertion order: reading an entry does not
// refresh its position, and overwriting an existing key keeps its original
// slot in the queue. This is deliberately not an LRU.
type FIFO[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	order    []K
	items    map[K]V
}

// NewFIFO returns a cache bounded to capacity entries.
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &FIFO[K, V]{
		capacity: capacity,
		order:    make([]K, 0, capacity),
		items:    make(map[K]V, capacity),
	}
}

// Get returns the cached value for key, if present.
func (c *FIFO[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.items[key]
	return value, ok
}

// Put stores value under key, evicting the oldest entry when full.
func (c *FIFO[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		c.items[key] = value
		return
	}

	if len(c.items) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}

	c.items[key] = value
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear drops every entry.
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = c.order[:0]
	c.items = make(map[K]V, c.capacity)
}

// Stats snapshots the current fill level.
func (c *FIFO[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	utilization := len(c.items) * 100 / c.capacity
	return Stats{
		Size:        len(c.items),
		MaxSize:     c.capacity,
		Utilization: fmt.Sprintf("%d%%", utilization),
	}
}
