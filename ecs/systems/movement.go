package systems

import (
	"github.com/hollowfall/pixelbrawl/ecs"
	"github.com/hollowfall/pixelbrawl/ecs/component"
)

// MovementSystem integrates velocities into transforms. It must run before
// the collision system so boxes reflect this frame's positions.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, v *component.Velocity, tr *component.Transform) {
			tr.X += v.VX
			tr.Y += v.VY
		})
}
