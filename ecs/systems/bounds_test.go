package systems

import (
	"image"
	"testing"

	"github.com/hollowfall/pixelbrawl/common"
	"github.com/hollowfall/pixelbrawl/ecs/component"
)

func TestBoundsFor(t *testing.T) {
	cases := []struct {
		name string
		tr   *component.Transform
		spr  *component.Sprite
		want common.Rect
	}{
		{
			name: "no_sprite_gets_centered_default_box",
			tr:   &component.Transform{X: 100, Y: 100},
			spr:  nil,
			want: common.Rect{X: 95, Y: 95, Width: 10, Height: 10},
		},
		{
			name: "explicit_size_top_left_anchor",
			tr:   &component.Transform{X: 20, Y: 30},
			spr:  &component.Sprite{Width: 8, Height: 4},
			want: common.Rect{X: 20, Y: 30, Width: 8, Height: 4},
		},
		{
			name: "explicit_size_centered_anchor",
			tr:   &component.Transform{X: 20, Y: 30},
			spr:  &component.Sprite{Width: 8, Height: 4, AnchorX: 0.5, AnchorY: 0.5},
			want: common.Rect{X: 16, Y: 28, Width: 8, Height: 4},
		},
		{
			name: "size_falls_back_to_raster_dimensions",
			tr:   &component.Transform{X: 0, Y: 0},
			spr:  &component.Sprite{Pixels: image.NewRGBA(image.Rect(0, 0, 16, 12))},
			want: common.Rect{X: 0, Y: 0, Width: 16, Height: 12},
		},
		{
			name: "source_rect_wins_over_full_raster",
			tr:   &component.Transform{X: 0, Y: 0},
			spr: &component.Sprite{
				Pixels:    image.NewRGBA(image.Rect(0, 0, 64, 64)),
				Source:    image.Rect(0, 0, 16, 16),
				UseSource: true,
			},
			want: common.Rect{X: 0, Y: 0, Width: 16, Height: 16},
		},
		{
			name: "zero_size_sprite_without_raster_gets_default_box",
			tr:   &component.Transform{X: 5, Y: 5},
			spr:  &component.Sprite{},
			want: common.Rect{X: 0, Y: 0, Width: 10, Height: 10},
		},
		{
			name: "transform_scale_applies_to_size_and_anchor",
			tr:   &component.Transform{X: 10, Y: 10, ScaleX: 2, ScaleY: 3},
			spr:  &component.Sprite{Width: 4, Height: 4, AnchorX: 0.5, AnchorY: 0.5},
			want: common.Rect{X: 6, Y: 4, Width: 8, Height: 12},
		},
		{
			name: "zero_scale_means_unscaled",
			tr:   &component.Transform{X: 0, Y: 0, ScaleX: 0, ScaleY: 0},
			spr:  &component.Sprite{Width: 6, Height: 6},
			want: common.Rect{X: 0, Y: 0, Width: 6, Height: 6},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := BoundsFor(c.tr, c.spr, DefaultBoxSize, DefaultBoxSize)
			if got != c.want {
				t.Fatalf("BoundsFor = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestBoundsForCustomDefaults(t *testing.T) {
	tr := &component.Transform{X: 0, Y: 0}
	got := BoundsFor(tr, nil, 20, 4)
	want := common.Rect{X: -10, Y: -2, Width: 20, Height: 4}
	if got != want {
		t.Fatalf("BoundsFor = %+v, want %+v", got, want)
	}
}
