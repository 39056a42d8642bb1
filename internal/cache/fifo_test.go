package cache

import (
	"fmt"
	"testing"
)

func TestEvictsOldestInserted(t *testing.T) {
	c := NewFIFO[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Put("d", 4)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected oldest key to be evicted")
	}
	for _, key := range []string{"b", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Fatalf("expected key %q to survive eviction", key)
		}
	}
}

func TestFullCapacityEviction(t *testing.T) {
	const capacity = 1000
	c := NewFIFO[string, string](capacity)
	for i := 0; i <= capacity; i++ {
		c.Put(fmt.Sprintf("key-%d", i), "value")
	}

	if _, ok := c.Get("key-0"); ok {
		t.Fatal("first-inserted key should be gone after capacity+1 inserts")
	}
	if got := c.Len(); got != capacity {
		t.Fatalf("expected %d entries, got %d", capacity, got)
	}
}

func TestOverwriteKeepsInsertionSlot(t *testing.T) {
	c := NewFIFO[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)
	c.Put("c", 3)

	// "a" kept its original slot at the head of the queue, so it is the
	// one evicted, not "b".
	if _, ok := c.Get("a"); ok {
		t.Fatal("overwritten key should still occupy its original queue slot")
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Fatalf("expected b=2 to survive, got %d (present=%v)", v, ok)
	}
}

func TestReadDoesNotRefreshPosition(t *testing.T) {
	c := NewFIFO[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a to be cached")
	}
	c.Put("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Fatal("FIFO must evict by insertion order even after a read")
	}
}

func TestClearAndStats(t *testing.T) {
	c := NewFIFO[string, int](4)
	c.Put("a", 1)
	c.Put("b", 2)

	stats := c.Stats()
	if stats.Size != 2 || stats.MaxSize != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Utilization != "50%" {
		t.Fatalf("expected 50%% utilization, got %s", stats.Utilization)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after clear, got %d entries", c.Len())
	}
}
