package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is an entity's renderable image plus the decoded pixel data the
// collision narrow phase samples. Image and Pixels come from the same
// source; keeping the decoded copy means alpha sampling never reads back
// from the GPU.
type Sprite struct {
	Image  *ebiten.Image
	Pixels image.Image

	// Source selects the current frame within Image/Pixels when UseSource
	// is set; otherwise the whole image is the frame.
	Source    image.Rectangle
	UseSource bool

	// Width/Height are the world-space size of the sprite's box. Zero
	// falls back to the frame's pixel size.
	Width, Height float64

	// AnchorX/AnchorY place the entity position within the box as a
	// normalized ratio: 0.5/0.5 is the center, 0/0 the top-left corner.
	AnchorX, AnchorY float64
}

var SpriteComponent = NewComponent[Sprite]()

// SourceRect returns the rectangle of the current frame within the sprite's
// source image.
func (s *Sprite) SourceRect() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	if s.UseSource {
		return s.Source
	}
	if s.Pixels != nil {
		return s.Pixels.Bounds()
	}
	if s.Image != nil {
		return s.Image.Bounds()
	}
	return image.Rectangle{}
}
