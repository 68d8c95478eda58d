package systems

import (
	"github.com/hollowfall/pixelbrawl/ecs"
)

// SpawnSystem invokes a spawn callback on a fixed tick interval. The game
// uses it to march enemies in from the right edge.
type SpawnSystem struct {
	Every int
	Spawn func(w *ecs.World)

	ticks int
}

func NewSpawnSystem(every int, spawn func(w *ecs.World)) *SpawnSystem {
	return &SpawnSystem{Every: every, Spawn: spawn}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s.Every <= 0 || s.Spawn == nil {
		return
	}
	s.ticks++
	if s.ticks >= s.Every {
		s.ticks = 0
		s.Spawn(w)
	}
}
