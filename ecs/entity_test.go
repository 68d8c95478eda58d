package ecs

import "testing"

func TestEntityHandlePacking(t *testing.T) {
	e := makeEntity(7, 3)
	if e.id() != 7 {
		t.Fatalf("id = %d, want 7", e.id())
	}
	if e.generation() != 3 {
		t.Fatalf("generation = %d, want 3", e.generation())
	}
	if got := e.String(); got != "7@3" {
		t.Fatalf("String = %q, want 7@3", got)
	}
	if !e.Valid() {
		t.Fatal("a real handle is valid")
	}

	var zero Entity
	if zero.Valid() {
		t.Fatal("the zero handle is not valid")
	}

	// same id under different generations means different handles
	if makeEntity(7, 4) == e {
		t.Fatal("generation must distinguish recycled handles")
	}
}
