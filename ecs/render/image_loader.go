package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadImage decodes an image from disk, registers it under key, and
// returns it. Already-registered keys are returned as-is.
func LoadImage(key, path string) (Image, error) {
	if key == "" {
		return Image{}, fmt.Errorf("render: empty image key")
	}
	if img, ok := GetImage(key); ok {
		return img, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("render: load image %q: %w", path, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return Image{}, fmt.Errorf("render: decode image %q: %w", path, err)
	}
	eimg := ebiten.NewImageFromImage(decoded)
	RegisterImage(key, eimg, decoded)
	img, _ := GetImage(key)
	return img, nil
}

// RegisterGenerated registers an image produced in code, deriving the
// GPU-side copy from the pixels.
func RegisterGenerated(key string, pixels image.Image) {
	if key == "" || pixels == nil {
		return
	}
	RegisterImage(key, ebiten.NewImageFromImage(pixels), pixels)
}
