package entity

import (
	"testing"
	"time"

	"comet-sky/internal/component"
)

func TestRegistryIDsAreUnique(t *testing.T) {
	r := NewRegistry()
	seen := make(map[component.CometID]bool)
	for i := 0; i < 100; i++ {
		id := r.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestRegistryAddRemove(t *testing.T) {
	r := NewRegistry()
	a := &component.Comet{ID: r.NewID(), SpawnedAt: 2 * time.Second}
	b := &component.Comet{ID: r.NewID(), SpawnedAt: time.Second}
	r.Add(a)
	r.Add(b)

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	ordered := r.Ordered()
	if ordered[0] != b || ordered[1] != a {
		t.Fatal("Ordered must sort by spawn time")
	}

	if !r.Remove(a.ID) {
		t.Fatal("remove of live comet returned false")
	}
	if r.Remove(a.ID) {
		t.Fatal("second remove must return false")
	}
	if _, ok := r.Get(b.ID); !ok {
		t.Fatal("removing one comet must not touch another")
	}
}
