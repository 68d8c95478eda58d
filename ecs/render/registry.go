package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Image pairs a GPU-side image with its decoded pixels. Rendering uses the
// ebiten image; collision alpha sampling reads the decoded copy so it never
// reads back from the GPU.
type Image struct {
	Ebiten *ebiten.Image
	Pixels image.Image
}

// Sheet describes uniform frame geometry within a registered image.
type Sheet struct {
	ImageKey string
	FrameW   int
	FrameH   int
	Columns  int
	Count    int
}

// Frame returns the source rectangle of frame i, wrapping past Count.
func (s Sheet) Frame(i int) image.Rectangle {
	if s.FrameW <= 0 || s.FrameH <= 0 || s.Columns <= 0 {
		return image.Rectangle{}
	}
	if s.Count > 0 {
		i %= s.Count
		if i < 0 {
			i += s.Count
		}
	}
	col := i % s.Columns
	row := i / s.Columns
	x := col * s.FrameW
	y := row * s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH)
}

var (
	images = map[string]Image{}
	sheets = map[string]Sheet{}
)

// RegisterImage stores an image under key. The decoded pixels may be nil
// for images that never take part in pixel collision.
func RegisterImage(key string, img *ebiten.Image, pixels image.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = Image{Ebiten: img, Pixels: pixels}
}

// GetImage returns a registered image by key.
func GetImage(key string) (Image, bool) {
	img, ok := images[key]
	return img, ok
}

// RegisterSheet stores sprite-sheet frame geometry under key.
func RegisterSheet(key string, sheet Sheet) {
	if key == "" {
		return
	}
	sheets[key] = sheet
}

// GetSheet returns registered sheet geometry by key.
func GetSheet(key string) (Sheet, bool) {
	s, ok := sheets[key]
	return s, ok
}
