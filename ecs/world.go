package ecs

import "github.com/hollowfall/pixelbrawl/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, system order, and the event bus.
//
// Update runs single-threaded inside the host's frame callback; systems run
// to completion in registration order and must not retain entity handles
// across frames without re-checking IsAlive.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	bus      Bus
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then purges entities destroyed during the
// pass. Destruction is observable immediately through IsAlive; component
// storage and id reuse are reconciled here, at the end of the frame.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.flushDestroyed()
}

// Bus returns the world's event bus.
func (w *World) Bus() *Bus {
	if w == nil {
		return nil
	}
	return &w.bus
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) lookup(id component.ComponentID) *SparseSet {
	return w.stores[id]
}

func (w *World) flushDestroyed() {
	for _, id := range w.entities.flush() {
		for _, s := range w.stores {
			s.Remove(id)
		}
	}
}

// CreateEntity allocates a new entity in w.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity destroys e. It reports whether e was alive. Stale and
// invalid handles are ignored, so destroying twice is harmless.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether the handle e still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns handles for all currently live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.entities.gen))
	for id := 1; id <= len(w.entities.gen); id++ {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}
