package main

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/hollowfall/pixelbrawl/ecs/render"
)

// registerArt builds the demo's sprites in code and registers them with
// both a GPU image and a pixel mask, so pixel collision works without any
// shipped art. Shapes deliberately leave transparent corners: the narrow
// phase is only observable when boxes overlap where pixels do not.
func registerArt() {
	render.RegisterGenerated("player", diamond(32, 32, colornames.Skyblue))
	render.RegisterGenerated("enemy", disc(28, 28, colornames.Orangered))
	render.RegisterGenerated("bullet", box(10, 4, colornames.Gold))
}

// diamond fills the rhombus inscribed in w×h; corners stay transparent.
func diamond(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := abs(float64(x)+0.5-cx) / cx
			dy := abs(float64(y)+0.5-cy) / cy
			if dx+dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// disc fills the ellipse inscribed in w×h.
func disc(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / cx
			dy := (float64(y) + 0.5 - cy) / cy
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// box fills the whole rectangle.
func box(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
