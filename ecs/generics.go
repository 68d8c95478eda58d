package ecs

import "github.com/hollowfall/pixelbrawl/ecs/component"

// Add attaches a component value to a live entity.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if w == nil || !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID()).Set(int(e.id()), v)
	return nil
}

// Get returns the component of kind k attached to e, if any.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.lookup(k.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.Get(int(e.id())).(*T)
	return v, ok && v != nil
}

// Has reports whether e carries a component of kind k.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component of kind k from e. It reports whether a
// component was removed.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return false
	}
	s := w.lookup(k.ID())
	if s == nil {
		return false
	}
	return s.Remove(int(e.id()))
}

// ForEach visits every live entity carrying kind k, in store insertion
// order. The id list is snapshotted up front, so fn may add or destroy
// entities; entities destroyed mid-iteration are skipped.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	s := w.lookup(k.ID())
	if s == nil {
		return
	}
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		if v, ok := s.Get(id).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both ka and kb.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits every live entity carrying ka, kb, and kc.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}
