package cache

import (
	"io"
	"sync"
)

// Synced is an IndexCache guarded by a single mutex.
//
// Get and Put both reorder the recency list, so there is no read-locked path:
// every method takes the same lock.
type Synced[K comparable] struct {
	mu sync.Mutex
	c  *IndexCache[K]
}

// NewSynced is New behind a mutex.
func NewSynced[K comparable](capacity int) (*Synced[K], error) {
	c, err := New[K](capacity)
	if err != nil {
		return nil, err
	}
	return &Synced[K]{c: c}, nil
}

// Exists reports whether key holds a slot, without touching recency.
func (s *Synced[K]) Exists(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Exists(key)
}

// Get returns the slot of key and marks it most recently used.
func (s *Synced[K]) Get(key K) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Get(key)
}

// Put registers or touches key.
func (s *Synced[K]) Put(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Put(key)
}

// Assign is Put that reports the resulting slot and any eviction.
func (s *Synced[K]) Assign(key K) (Assignment[K], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Assign(key)
}

// Used returns how many slots have been handed out.
func (s *Synced[K]) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Used()
}

// Capacity returns the size of the caller's container.
func (s *Synced[K]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Capacity()
}

// Entries returns a copy of all pairs in LRU -> MRU order.
func (s *Synced[K]) Entries() []Entry[K] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Entries()
}

// Dump holds the lock while writing to w.
func (s *Synced[K]) Dump(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Dump(w)
}
