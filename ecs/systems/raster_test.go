package systems

import (
	"image"
	"image/color"
	"testing"

	"github.com/hollowfall/pixelbrawl/ecs/component"
)

func TestPrepareReusesMatchingBuffer(t *testing.T) {
	buf := prepare(nil, 8, 8)
	if buf == nil || buf.Bounds().Dx() != 8 || buf.Bounds().Dy() != 8 {
		t.Fatalf("prepare(nil) = %v", buf)
	}

	same := prepare(buf, 8, 8)
	if same != buf {
		t.Fatal("same dimensions must reuse the buffer")
	}

	bigger := prepare(buf, 16, 8)
	if bigger == buf {
		t.Fatal("dimension change must allocate a new buffer")
	}
	if bigger.Bounds().Dx() != 16 || bigger.Bounds().Dy() != 8 {
		t.Fatalf("new buffer has bounds %v", bigger.Bounds())
	}
}

func TestRasterizeCopiesOnlySourceRect(t *testing.T) {
	// a 4×4 sheet with a single opaque pixel at (2,2); copy the 2×2 frame
	// that contains it
	sheet := image.NewRGBA(image.Rect(0, 0, 4, 4))
	sheet.SetRGBA(2, 2, color.RGBA{A: 255})

	dst := prepare(nil, 2, 2)
	rasterize(dst, sheet, image.Rect(2, 2, 4, 4))

	if got := dst.RGBAAt(0, 0).A; got != 255 {
		t.Fatalf("frame pixel (0,0) alpha = %d, want 255", got)
	}
	for _, p := range []image.Point{{1, 0}, {0, 1}, {1, 1}} {
		if got := dst.RGBAAt(p.X, p.Y).A; got != 0 {
			t.Fatalf("frame pixel %v alpha = %d, want 0", p, got)
		}
	}
}

func TestRasterizeOverwritesStaleContents(t *testing.T) {
	dst := prepare(nil, 2, 2)
	dst.SetRGBA(0, 0, color.RGBA{A: 255})

	clear := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rasterize(dst, clear, clear.Bounds())

	if got := dst.RGBAAt(0, 0).A; got != 0 {
		t.Fatalf("stale alpha survived rasterize: %d", got)
	}
}

func TestRasterRef(t *testing.T) {
	pixels := image.NewRGBA(image.Rect(0, 0, 8, 8))

	cases := []struct {
		name    string
		spr     *component.Sprite
		wantSrc image.Rectangle
		wantOK  bool
	}{
		{"nil_sprite", nil, image.Rectangle{}, false},
		{"no_pixels", &component.Sprite{}, image.Rectangle{}, false},
		{"full_raster", &component.Sprite{Pixels: pixels}, image.Rect(0, 0, 8, 8), true},
		{
			"explicit_source",
			&component.Sprite{Pixels: pixels, Source: image.Rect(4, 0, 8, 4), UseSource: true},
			image.Rect(4, 0, 8, 4),
			true,
		},
		{
			"degenerate_source",
			&component.Sprite{Pixels: pixels, Source: image.Rect(2, 2, 2, 6), UseSource: true},
			image.Rectangle{},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src, ok := rasterRef(c.spr)
			if ok != c.wantOK || src != c.wantSrc {
				t.Fatalf("rasterRef = %v, %v; want %v, %v", src, ok, c.wantSrc, c.wantOK)
			}
		})
	}
}
