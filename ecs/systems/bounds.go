package systems

import (
	"github.com/hollowfall/pixelbrawl/common"
	"github.com/hollowfall/pixelbrawl/ecs/component"
)

// BoundsFor derives an entity's world-space box from its current transform
// and sprite. The transform position is the anchor point; the sprite's
// anchor ratio decides where that point sits within the box.
//
// Entities with no sprite, or a sprite with no usable size, get a
// defW×defH box centered on their position instead of being excluded;
// everything that can collide always has a box.
func BoundsFor(tr *component.Transform, spr *component.Sprite, defW, defH float64) common.Rect {
	sx, sy := scaleOf(tr)

	var w, h, ax, ay float64
	if spr != nil {
		w, h = spr.Width, spr.Height
		if w <= 0 || h <= 0 {
			if src := spr.SourceRect(); src.Dx() > 0 && src.Dy() > 0 {
				w, h = float64(src.Dx()), float64(src.Dy())
			}
		}
		ax, ay = spr.AnchorX, spr.AnchorY
	}
	if w <= 0 || h <= 0 {
		w, h = defW, defH
		ax, ay = 0.5, 0.5
	}

	w *= sx
	h *= sy
	return common.Rect{
		X:      tr.X - ax*w,
		Y:      tr.Y - ay*h,
		Width:  w,
		Height: h,
	}
}

func scaleOf(tr *component.Transform) (float64, float64) {
	sx, sy := 1.0, 1.0
	if tr == nil {
		return sx, sy
	}
	if tr.ScaleX != 0 {
		sx = tr.ScaleX
	}
	if tr.ScaleY != 0 {
		sy = tr.ScaleY
	}
	return sx, sy
}
