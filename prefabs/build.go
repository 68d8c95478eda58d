package prefabs

import (
	"fmt"

	"github.com/hollowfall/pixelbrawl/ecs"
	"github.com/hollowfall/pixelbrawl/ecs/component"
	"github.com/hollowfall/pixelbrawl/ecs/render"
)

// Build creates an entity from a prefab spec. Sprite image and sheet keys
// must already be registered in the render registry.
func Build(w *ecs.World, spec EntitySpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("prefabs: build %q: world is nil", spec.Name)
	}

	e := ecs.CreateEntity(w)

	tr := &component.Transform{ScaleX: 1, ScaleY: 1}
	if spec.Transform != nil {
		tr.X = spec.Transform.X
		tr.Y = spec.Transform.Y
		if spec.Transform.ScaleX != 0 {
			tr.ScaleX = spec.Transform.ScaleX
		}
		if spec.Transform.ScaleY != 0 {
			tr.ScaleY = spec.Transform.ScaleY
		}
		tr.Rotation = spec.Transform.Rotation
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
	}

	if spec.Sprite != nil {
		spr, err := buildSprite(spec.Sprite)
		if err != nil {
			return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), spr); err != nil {
			return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
		}
	}

	if spec.Collider != nil {
		col := &component.Collider{
			Group:        spec.Collider.Group,
			CollidesWith: append([]string(nil), spec.Collider.CollidesWith...),
			UsePixels:    spec.Collider.UsePixels,
		}
		if err := ecs.Add(w, e, component.ColliderComponent.Kind(), col); err != nil {
			return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
		}
	}

	if spec.Velocity != nil {
		v := &component.Velocity{VX: spec.Velocity.VX, VY: spec.Velocity.VY}
		if err := ecs.Add(w, e, component.VelocityComponent.Kind(), v); err != nil {
			return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
		}
	}

	if spec.Player != nil {
		pc := &component.PlayerControl{
			Speed:          spec.Player.Speed,
			FireEvery:      spec.Player.FireEvery,
			BulletSpeed:    spec.Player.BulletSpeed,
			BulletLifetime: spec.Player.BulletLifetime,
		}
		if err := ecs.Add(w, e, component.PlayerControlComponent.Kind(), pc); err != nil {
			return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
		}
	}

	if spec.Layer != nil {
		rl := &component.RenderLayer{Index: *spec.Layer}
		if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), rl); err != nil {
			return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
		}
	}

	if spec.TTL != nil {
		ttl := &component.TTL{Frames: *spec.TTL}
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), ttl); err != nil {
			return 0, fmt.Errorf("prefabs: build %q: %w", spec.Name, err)
		}
	}

	return e, nil
}

func buildSprite(spec *SpriteSpec) (*component.Sprite, error) {
	spr := &component.Sprite{
		Width:   spec.Width,
		Height:  spec.Height,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}
	if spec.AnchorX != nil {
		spr.AnchorX = *spec.AnchorX
	}
	if spec.AnchorY != nil {
		spr.AnchorY = *spec.AnchorY
	}

	imageKey := spec.Image
	if spec.Sheet != "" {
		sheet, ok := render.GetSheet(spec.Sheet)
		if !ok {
			return nil, fmt.Errorf("sheet %q not registered", spec.Sheet)
		}
		imageKey = sheet.ImageKey
		spr.Source = sheet.Frame(spec.Frame)
		spr.UseSource = true
	}

	img, ok := render.GetImage(imageKey)
	if !ok {
		return nil, fmt.Errorf("image %q not registered", imageKey)
	}
	spr.Image = img.Ebiten
	spr.Pixels = img.Pixels
	return spr, nil
}

// BuildFromFile loads an entity prefab and builds it.
func BuildFromFile(w *ecs.World, filename string) (ecs.Entity, error) {
	spec, err := LoadEntitySpec(filename)
	if err != nil {
		return 0, err
	}
	return Build(w, spec)
}
