package systems

import (
	"image"
	"image/draw"

	"github.com/hollowfall/pixelbrawl/ecs/component"
)

// prepare returns a buffer of exactly w×h pixels, reusing buf when its
// dimensions already match so repeated tests against same-sized frames do
// not reallocate.
func prepare(buf *image.RGBA, w, h int) *image.RGBA {
	if buf != nil {
		b := buf.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return buf
		}
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// rasterize copies the sprite's current frame, and only that frame, into
// dst. dst must already be sized to src by prepare.
func rasterize(dst *image.RGBA, pixels image.Image, src image.Rectangle) {
	draw.Draw(dst, dst.Bounds(), pixels, src.Min, draw.Src)
}

// rasterRef validates a sprite's raster reference for pixel sampling:
// resolvable pixel data and a frame with positive dimensions.
func rasterRef(spr *component.Sprite) (image.Rectangle, bool) {
	if spr == nil || spr.Pixels == nil {
		return image.Rectangle{}, false
	}
	src := spr.SourceRect()
	if src.Dx() <= 0 || src.Dy() <= 0 {
		return image.Rectangle{}, false
	}
	return src, true
}
