package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowfall/pixelbrawl/ecs"
	"github.com/hollowfall/pixelbrawl/ecs/component"
)

// ControllerSystem drives the player entity from the keyboard and asks the
// game to spawn bullets. Spawning goes through a callback so prefab
// knowledge stays out of the systems package.
type ControllerSystem struct {
	// SpawnBullet creates a bullet at the given position with the given
	// velocity. Wired by the game.
	SpawnBullet func(w *ecs.World, x, y, vx, vy float64)
}

func NewControllerSystem(spawn func(w *ecs.World, x, y, vx, vy float64)) *ControllerSystem {
	return &ControllerSystem{SpawnBullet: spawn}
}

func (s *ControllerSystem) Update(w *ecs.World) {
	ecs.ForEach3(w,
		component.PlayerControlComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(_ ecs.Entity, pc *component.PlayerControl, tr *component.Transform, v *component.Velocity) {
			var dx, dy float64
			if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
				dx -= 1
			}
			if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
				dx += 1
			}
			if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
				dy -= 1
			}
			if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
				dy += 1
			}
			v.VX = dx * pc.Speed
			v.VY = dy * pc.Speed

			if pc.CooldownLeft > 0 {
				pc.CooldownLeft--
			}
			if ebiten.IsKeyPressed(ebiten.KeySpace) && pc.CooldownLeft <= 0 && s.SpawnBullet != nil {
				s.SpawnBullet(w, tr.X, tr.Y, pc.BulletSpeed, 0)
				pc.CooldownLeft = pc.FireEvery
			}
		})
}
