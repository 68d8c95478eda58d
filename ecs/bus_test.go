package ecs

import (
	"testing"
	"time"
)

func TestBusDeliversInRegistrationOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.Bus().Subscribe("ping", func(*World, Event) { order = append(order, "first") })
	w.Bus().Subscribe("ping", func(*World, Event) { order = append(order, "second") })
	w.Bus().Subscribe("ping", func(*World, Event) { order = append(order, "third") })

	if got := w.Bus().HandlerCount("ping"); got != 3 {
		t.Fatalf("HandlerCount(ping) = %d, want 3", got)
	}
	if got := w.Bus().HandlerCount("pong"); got != 0 {
		t.Fatalf("HandlerCount(pong) = %d, want 0", got)
	}

	w.Bus().Publish(w, Event{Type: "ping"})

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("delivery order %v, want %v", order, want)
		}
	}
}

func TestBusIgnoresOtherEventTypes(t *testing.T) {
	w := NewWorld()
	called := 0
	w.Bus().Subscribe("a", func(*World, Event) { called++ })

	w.Bus().Publish(w, Event{Type: "b"})
	if called != 0 {
		t.Fatal("handler for type a must not see type b")
	}
	w.Bus().Publish(w, Event{Type: "a"})
	if called != 1 {
		t.Fatalf("expected 1 delivery, got %d", called)
	}
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	w := NewWorld()
	late := 0
	w.Bus().Subscribe("evt", func(*World, Event) {
		w.Bus().Subscribe("evt", func(*World, Event) { late++ })
	})

	w.Bus().Publish(w, Event{Type: "evt"})
	if late != 0 {
		t.Fatal("a handler subscribed during publish must not receive that publish")
	}

	w.Bus().Publish(w, Event{Type: "evt"})
	if late != 1 {
		t.Fatalf("late subscriber should see the next publish once, got %d", late)
	}
}

func TestBusHandlerMayDestroyEntities(t *testing.T) {
	w := NewWorld()
	victim := CreateEntity(w)
	w.Bus().Subscribe(EventCollision, func(w *World, evt Event) {
		ce := evt.Data.(CollisionEvent)
		DestroyEntity(w, ce.B)
	})

	other := CreateEntity(w)
	w.Bus().Publish(w, Event{Type: EventCollision, Data: CollisionEvent{A: other, B: victim, At: time.Now()}})

	if IsAlive(w, victim) {
		t.Fatal("destruction from a handler must be visible immediately after Publish returns")
	}
	if !IsAlive(w, other) {
		t.Fatal("the other entity must be untouched")
	}
}
