package cache

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
)

func TestSynced_RejectsNegativeCapacity(t *testing.T) {
	if _, err := NewSynced[string](-3); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestSynced_HugeCapacity(t *testing.T) {
	s, err := NewSynced[string](math.MaxInt)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Put("a"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if slot, ok := s.Get("a"); !ok || slot != 0 {
		t.Fatalf("a = %d,%v, want 0", slot, ok)
	}
}

// Run with -race: every goroutine mutates recency through Get and Put.
func TestSynced_ConcurrentUse(t *testing.T) {
	const capacity = 16
	s, err := NewSynced[int](capacity)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := (g*31 + i) % 40
				if err := s.Put(k); err != nil {
					t.Errorf("put %d: %v", k, err)
					return
				}
				s.Get(k)
				s.Exists(k + 1)
			}
		}(g)
	}
	wg.Wait()

	if s.Used() != capacity || s.Capacity() != capacity {
		t.Fatalf("used=%d capacity=%d, want %d", s.Used(), s.Capacity(), capacity)
	}

	seen := make(map[int]bool)
	for _, e := range s.Entries() {
		if seen[e.Slot] {
			t.Fatalf("slot %d held twice", e.Slot)
		}
		seen[e.Slot] = true
	}
	if len(seen) != capacity {
		t.Fatalf("%d distinct slots, want %d", len(seen), capacity)
	}
}

func TestSynced_AssignAndDump(t *testing.T) {
	s, err := NewSynced[string](1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := s.Assign("a"); err != nil {
		t.Fatalf("assign a: %v", err)
	}
	got, err := s.Assign("b")
	if err != nil {
		t.Fatalf("assign b: %v", err)
	}
	if !got.HasEvicted || got.Evicted != "a" || got.Slot != 0 {
		t.Fatalf("assign b = %+v", got)
	}

	var sb strings.Builder
	if err := s.Dump(&sb); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(sb.String(), "b : 0\n") {
		t.Fatalf("dump = %q", sb.String())
	}
}
