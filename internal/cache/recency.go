package cache

// handle identifies one node in a recencyList arena.
// A handle stays valid until that node is removed; other inserts and removals
// never move it.
type handle int

// root is the sentinel node. It is both head and tail of the circular list.
const root handle = 0

type node[K comparable] struct {
	key  K
	slot int

	prev, next handle
}

// recencyList is a doubly-linked list of (key, slot) entries stored in a slice.
// Front = least recently used, Back = most recently used.
//
// Removed nodes go on a free list and their handles are handed out again by
// pushBack, so the arena never grows past the peak number of live entries.
type recencyList[K comparable] struct {
	nodes []node[K]
	free  []handle
	len   int
}

// sizeHint must be small; callers clamp it.
func newRecencyList[K comparable](sizeHint int) *recencyList[K] {
	l := &recencyList[K]{
		nodes: make([]node[K], 1, sizeHint+1),
	}
	l.nodes[root].prev = root
	l.nodes[root].next = root
	return l
}

// pushBack appends (key, slot) as the most recently used entry.
func (l *recencyList[K]) pushBack(key K, slot int) handle {
	var h handle
	if n := len(l.free); n > 0 {
		h = l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[h] = node[K]{key: key, slot: slot}
	} else {
		h = handle(len(l.nodes))
		l.nodes = append(l.nodes, node[K]{key: key, slot: slot})
	}
	l.linkBefore(h, root)
	l.len++
	return h
}

// remove unlinks h and releases it. h must be live.
func (l *recencyList[K]) remove(h handle) {
	l.unlink(h)
	l.nodes[h] = node[K]{}
	l.free = append(l.free, h)
	l.len--
}

// moveToBack marks h as the most recently used entry.
func (l *recencyList[K]) moveToBack(h handle) {
	if l.nodes[root].prev == h {
		return
	}
	l.unlink(h)
	l.linkBefore(h, root)
}

// front returns the least recently used entry.
func (l *recencyList[K]) front() (handle, bool) {
	if l.len == 0 {
		return root, false
	}
	return l.nodes[root].next, true
}

func (l *recencyList[K]) at(h handle) *node[K] {
	return &l.nodes[h]
}

// each calls fn for every entry from front to back until fn returns false.
func (l *recencyList[K]) each(fn func(key K, slot int) bool) {
	for h := l.nodes[root].next; h != root; h = l.nodes[h].next {
		if !fn(l.nodes[h].key, l.nodes[h].slot) {
			return
		}
	}
}

func (l *recencyList[K]) linkBefore(h, at handle) {
	prev := l.nodes[at].prev
	l.nodes[h].prev = prev
	l.nodes[h].next = at
	l.nodes[prev].next = h
	l.nodes[at].prev = h
}

func (l *recencyList[K]) unlink(h handle) {
	n := &l.nodes[h]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.prev, n.next = root, root
}
