// Package cache maps keys to slots of a fixed-size, caller-owned container.
//
// Goals for this package:
//   - Keep the core data structures explicit (map + doubly-linked list)
//   - O(1) Exists/Get/Put via a key -> handle map and an arena-backed LRU list
//   - Hand out slots 0..capacity-1 in order, then recycle the LRU key's slot
//   - Store no values: the caller indexes its own array with the slot
//   - Leave locking to the caller, or to the Synced wrapper
package cache
