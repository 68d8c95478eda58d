package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, true},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"touching_right_edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching_bottom_edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"touching_corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"one_pixel_overlap", Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("Intersects(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
			// overlap is symmetric
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("Intersects(%v, %v) = %v, want %v", c.b, c.a, got, c.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 15, 15}, Rect{5, 5, 5, 5}},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, Rect{2, 2, 3, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.a.Intersect(c.b)
			if got != c.want {
				t.Fatalf("Intersect = %v, want %v", got, c.want)
			}
		})
	}

	t.Run("disjoint_is_empty", func(t *testing.T) {
		got := Rect{0, 0, 10, 10}.Intersect(Rect{20, 0, 5, 5})
		if !got.Empty() {
			t.Fatalf("expected empty intersection, got %v", got)
		}
	})

	t.Run("edge_touch_is_empty", func(t *testing.T) {
		got := Rect{0, 0, 10, 10}.Intersect(Rect{10, 0, 10, 10})
		if !got.Empty() {
			t.Fatalf("expected empty intersection for touching edges, got %v", got)
		}
	})
}
