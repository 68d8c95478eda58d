package ecs

// entityStore tracks entity generations and free ids.
//
// Destroying an entity bumps its generation immediately, so every handle to
// it fails liveness checks from that point on, including later in the same
// frame. The id itself is not recycled until flush runs at the end of the
// frame; that keeps a destroyed slot from being resurrected while systems
// are still mid-pass.
type entityStore struct {
	nextID int
	gen    []generation
	alive  []bool
	free   []int
	dead   []int
}

func (s *entityStore) create() Entity {
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	for id > len(s.gen) {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
	}
	s.alive[id-1] = true
	return makeEntity(entityID(id), s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	id := int(e.id())
	if id <= 0 || id > len(s.gen) {
		return false
	}
	if !s.alive[id-1] || s.gen[id-1] != e.generation() {
		return false
	}
	s.gen[id-1]++
	s.alive[id-1] = false
	s.dead = append(s.dead, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := int(e.id())
	if id <= 0 || id > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}

// handle returns the live Entity for a raw store id.
func (s *entityStore) handle(id int) (Entity, bool) {
	if id <= 0 || id > len(s.gen) || !s.alive[id-1] {
		return 0, false
	}
	return makeEntity(entityID(id), s.gen[id-1]), true
}

// flush recycles the ids destroyed since the previous flush and returns
// them so the world can purge their components.
func (s *entityStore) flush() []int {
	if len(s.dead) == 0 {
		return nil
	}
	dead := s.dead
	s.dead = nil
	s.free = append(s.free, dead...)
	return dead
}
