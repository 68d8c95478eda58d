package ecs

import "fmt"

// Entity is a handle to an entity: the store id in the low half, the
// generation the handle was issued under in the high half. A handle goes
// stale the moment its entity is destroyed, even if the id is later reused.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const (
	entityIDMask   = Entity(1)<<32 - 1
	generationLift = 32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<generationLift | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e & entityIDMask)
}

func (e Entity) generation() generation {
	return generation(e >> generationLift)
}

// String renders as id@generation, the shape log lines want.
func (e Entity) String() string {
	return fmt.Sprintf("%d@%d", uint64(e.id()), uint64(e.generation()))
}

func (e Entity) Valid() bool {
	return e != 0
}
