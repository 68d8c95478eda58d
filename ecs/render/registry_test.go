package render

import (
	"image"
	"testing"
)

func TestSheetFrame(t *testing.T) {
	sheet := Sheet{ImageKey: "walk", FrameW: 16, FrameH: 24, Columns: 4, Count: 6}

	cases := []struct {
		name  string
		frame int
		want  image.Rectangle
	}{
		{"first", 0, image.Rect(0, 0, 16, 24)},
		{"last_in_row", 3, image.Rect(48, 0, 64, 24)},
		{"second_row", 4, image.Rect(0, 24, 16, 48)},
		{"wraps_past_count", 6, image.Rect(0, 0, 16, 24)},
		{"negative_wraps", -1, image.Rect(16, 24, 32, 48)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := sheet.Frame(c.frame); got != c.want {
				t.Fatalf("Frame(%d) = %v, want %v", c.frame, got, c.want)
			}
		})
	}
}

func TestSheetFrameDegenerateGeometry(t *testing.T) {
	var zero Sheet
	if got := zero.Frame(0); got != (image.Rectangle{}) {
		t.Fatalf("zero sheet Frame = %v, want empty", got)
	}
}

func TestRegistryLookups(t *testing.T) {
	if _, ok := GetImage("missing"); ok {
		t.Fatal("missing image key must miss")
	}
	if _, ok := GetSheet("missing"); ok {
		t.Fatal("missing sheet key must miss")
	}

	RegisterSheet("grid", Sheet{ImageKey: "atlas", FrameW: 8, FrameH: 8, Columns: 2})
	s, ok := GetSheet("grid")
	if !ok || s.ImageKey != "atlas" {
		t.Fatalf("GetSheet = %+v, %v", s, ok)
	}

	// empty keys and nil images are silently rejected
	RegisterSheet("", Sheet{FrameW: 1, FrameH: 1, Columns: 1})
	if _, ok := GetSheet(""); ok {
		t.Fatal("empty sheet key must not register")
	}
	RegisterImage("", nil, nil)
	RegisterImage("nilimg", nil, nil)
	if _, ok := GetImage("nilimg"); ok {
		t.Fatal("nil image must not register")
	}
}
