package ecs

import "testing"

func TestSparseSetSetGetRemove(t *testing.T) {
	s := &SparseSet{}

	if s.Has(1) || s.Get(1) != nil || s.Len() != 0 {
		t.Fatal("empty set should have nothing")
	}

	s.Set(1, "one")
	s.Set(5, "five")
	s.Set(3, "three")
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if got := s.Get(5); got != "five" {
		t.Fatalf("Get(5) = %v", got)
	}

	// updating an existing id replaces the value without growing the set
	s.Set(5, "FIVE")
	if s.Len() != 3 || s.Get(5) != "FIVE" {
		t.Fatalf("update changed shape: len=%d get=%v", s.Len(), s.Get(5))
	}
}

func TestSparseSetSwapRemove(t *testing.T) {
	s := &SparseSet{}
	s.Set(1, "one")
	s.Set(2, "two")
	s.Set(3, "three")

	// removing from the middle swaps the tail in; the others stay reachable
	if !s.Remove(2) {
		t.Fatal("Remove(2) should report true")
	}
	if s.Remove(2) {
		t.Fatal("removing twice should report false")
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.Get(1) != "one" || s.Get(3) != "three" {
		t.Fatalf("surviving values lost: %v %v", s.Get(1), s.Get(3))
	}
	if s.Has(2) {
		t.Fatal("removed id must not remain")
	}

	ids := s.Entities()
	if len(ids) != 2 {
		t.Fatalf("Entities = %v", ids)
	}
}

func TestSparseSetIgnoresInvalidIDs(t *testing.T) {
	s := &SparseSet{}
	s.Set(0, "zero")
	s.Set(-1, "neg")
	if s.Len() != 0 {
		t.Fatalf("invalid ids must not be stored, len=%d", s.Len())
	}
	if s.Remove(0) || s.Remove(7) {
		t.Fatal("removing what was never stored should report false")
	}
}
