package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowfall/pixelbrawl/ecs"
	"github.com/hollowfall/pixelbrawl/ecs/component"
)

// RenderSystem draws sprites sorted by render layer, then entity handle.
// It is driven from the game's Draw callback, not from World.Update.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	entity ecs.Entity
	layer  int
	tr     *component.Transform
	spr    *component.Sprite
}

func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	var items []drawItem
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, spr *component.Sprite, tr *component.Transform) {
			if spr.Image == nil {
				return
			}
			item := drawItem{entity: e, tr: tr, spr: spr}
			if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
				item.layer = rl.Index
			}
			items = append(items, item)
		})

	sort.Slice(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return items[i].entity < items[j].entity
	})

	for _, it := range items {
		drawSprite(screen, it.tr, it.spr)
	}
}

func drawSprite(screen *ebiten.Image, tr *component.Transform, spr *component.Sprite) {
	src := spr.SourceRect()
	if src.Dx() <= 0 || src.Dy() <= 0 {
		return
	}
	frame := spr.Image
	if spr.UseSource {
		frame = spr.Image.SubImage(src).(*ebiten.Image)
	}

	w, h := spr.Width, spr.Height
	if w <= 0 || h <= 0 {
		w, h = float64(src.Dx()), float64(src.Dy())
	}
	sx, sy := scaleOf(tr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spr.AnchorX*float64(src.Dx()), -spr.AnchorY*float64(src.Dy()))
	op.GeoM.Scale(sx*w/float64(src.Dx()), sy*h/float64(src.Dy()))
	op.GeoM.Rotate(tr.Rotation)
	op.GeoM.Translate(tr.X, tr.Y)
	screen.DrawImage(frame, op)
}
