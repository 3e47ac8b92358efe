package cache

import (
	"fmt"
	"io"
)

// Entry is a copy of one key/slot pair.
type Entry[K comparable] struct {
	Key  K
	Slot int
}

// Entries returns all pairs in LRU -> MRU order.
//
// This is a debug helper; it does not touch recency.
func (c *IndexCache[K]) Entries() []Entry[K] {
	out := make([]Entry[K], 0, len(c.items))
	c.order.each(func(key K, slot int) bool {
		out = append(out, Entry[K]{Key: key, Slot: slot})
		return true
	})
	return out
}

// Dump writes one "key : slot" line per entry, LRU first, between two banners.
func (c *IndexCache[K]) Dump(w io.Writer) error {
	if _, err := io.WriteString(w, "=========CacheState=========\n"); err != nil {
		return err
	}

	var err error
	c.order.each(func(key K, slot int) bool {
		_, err = fmt.Fprintf(w, "%v : %d\n", key, slot)
		return err == nil
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, "============================\n")
	return err
}
