package ecs

import "time"

// Event names carried on the bus.
const (
	EventCollision = "collision"
)

// Event is a generic payload delivered through the bus.
type Event struct {
	Type string
	Data any
}

// CollisionEvent is published once per confirmed colliding pair per frame.
// A and B are ordered by the detector's candidate scan. The record is
// ephemeral; no collision history is kept between frames.
type CollisionEvent struct {
	A, B Entity
	At   time.Time
}

// Handler receives events published during a frame. Handlers run on the
// publisher's stack and may mutate the world, including destroying either
// entity named by the event.
type Handler func(w *World, evt Event)

// Bus is a synchronous publish/subscribe channel. Publish delivers to the
// handlers subscribed for the event type, in registration order, before it
// returns. The bus assigns no meaning to events; subscribers do.
type Bus struct {
	handlers map[string][]Handler
}

// Subscribe registers h for events of the given type.
func (b *Bus) Subscribe(eventType string, h Handler) {
	if b == nil || eventType == "" || h == nil {
		return
	}
	if b.handlers == nil {
		b.handlers = make(map[string][]Handler)
	}
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish delivers evt synchronously. It iterates a snapshot of the
// subscriber list, so a handler may subscribe during delivery without
// affecting the current publish.
func (b *Bus) Publish(w *World, evt Event) {
	if b == nil {
		return
	}
	snapshot := append([]Handler(nil), b.handlers[evt.Type]...)
	for _, h := range snapshot {
		h(w, evt)
	}
}

// HandlerCount returns the number of handlers registered for a type.
func (b *Bus) HandlerCount(eventType string) int {
	if b == nil {
		return 0
	}
	return len(b.handlers[eventType])
}
