package cache

import (
	"errors"
	"fmt"
)

// maxPrealloc bounds the up-front allocation in New. Larger caches grow on demand.
const maxPrealloc = 1024

var (
	ErrInvalidCapacity = errors.New("cache capacity must not be negative")
	ErrZeroCapacity    = errors.New("cache has zero capacity, no slot can be assigned")
)

// IndexCache assigns every key a slot in [0, Capacity()) and hands the slot of
// the least recently used key to a new key once all slots are taken.
//
// It stores no values. Callers keep their own fixed-size container of length
// Capacity() and index it with the slots returned here.
//
// The core is a map from key to a handle into an arena-backed recency list.
// The map gives O(1) lookup and the list keeps LRU order, so Put and Get are
// O(1).
//
// This type is not safe for concurrent use; see Synced.
type IndexCache[K comparable] struct {
	capacity int
	used     int

	items map[K]handle
	order *recencyList[K] // Front = LRU, Back = MRU
}

// Assignment describes the outcome of Assign.
type Assignment[K comparable] struct {
	Slot int

	// Fresh is true when the key had no slot before the call. The caller's
	// resource at Slot belongs to another key (or to nobody) and must be rebuilt.
	Fresh bool

	// Evicted is the key that gave up Slot. Only meaningful when HasEvicted.
	Evicted    K
	HasEvicted bool
}

// New constructs an empty cache for a container of the given size.
//
// A zero capacity is accepted, but every Put on such a cache fails with
// ErrZeroCapacity.
func New[K comparable](capacity int) (*IndexCache[K], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("new cache with capacity %d: %w", capacity, ErrInvalidCapacity)
	}
	hint := min(capacity, maxPrealloc)
	return &IndexCache[K]{
		capacity: capacity,
		items:    make(map[K]handle, hint),
		order:    newRecencyList[K](hint),
	}, nil
}

// Exists reports whether key currently holds a slot. It does not touch recency.
func (c *IndexCache[K]) Exists(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Get returns the slot assigned to key and marks key as most recently used.
// ok is false when key holds no slot; nothing changes in that case.
func (c *IndexCache[K]) Get(key K) (slot int, ok bool) {
	h, ok := c.items[key]
	if !ok {
		return -1, false
	}
	c.order.moveToBack(h)
	return c.order.at(h).slot, true
}

// Used returns how many slots have been handed out. Once it reaches Capacity it
// stays there: slots are recycled, never released.
func (c *IndexCache[K]) Used() int {
	return c.used
}

// Capacity returns the size of the caller's container.
func (c *IndexCache[K]) Capacity() int {
	return c.capacity
}

// Put registers key, or touches it if it already holds a slot.
func (c *IndexCache[K]) Put(key K) error {
	_, err := c.Assign(key)
	return err
}

// Assign is Put that also reports which slot key ended up with and whether the
// slot changed owner.
//
// Cases, in order:
//   - key present: move it to MRU, slot unchanged
//   - cache full: evict the LRU key and give its slot to key
//   - otherwise: give key the next unused slot
func (c *IndexCache[K]) Assign(key K) (Assignment[K], error) {
	if h, ok := c.items[key]; ok {
		c.order.moveToBack(h)
		return Assignment[K]{Slot: c.order.at(h).slot}, nil
	}

	if c.capacity == 0 {
		return Assignment[K]{}, fmt.Errorf("assign slot: %w", ErrZeroCapacity)
	}

	if c.used == c.capacity {
		lru, _ := c.order.front()
		victim := *c.order.at(lru)

		delete(c.items, victim.key)
		c.order.remove(lru)
		c.items[key] = c.order.pushBack(key, victim.slot)

		return Assignment[K]{
			Slot:       victim.slot,
			Fresh:      true,
			Evicted:    victim.key,
			HasEvicted: true,
		}, nil
	}

	slot := c.used
	c.items[key] = c.order.pushBack(key, slot)
	c.used++
	return Assignment[K]{Slot: slot, Fresh: true}, nil
}
