package ember

import "testing"

func TestRGBChannels(t *testing.T) {
	c := RGBOf(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Errorf("RGBOf = %#x, want 0x123456", uint32(c))
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 {
		t.Errorf("channels = %#x %#x %#x", c.R(), c.G(), c.B())
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	for _, p := range []Point{{10, 10}, {15, 15}, {10, 15}, {12, 13}} {
		if !r.Contains(p) {
			t.Errorf("Contains(%+v) = false, want true", p)
		}
	}
	for _, p := range []Point{{9, 10}, {16, 10}, {10, 16}} {
		if r.Contains(p) {
			t.Errorf("Contains(%+v) = true, want false", p)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := Rect{X: 20, Y: 20, Width: 3, Height: 3}
	if !a.Intersect(c).Empty() {
		t.Error("disjoint rectangles should intersect to empty")
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := r.Expand(2)
	want := Rect{X: 3, Y: 3, Width: 14, Height: 14}
	if got != want {
		t.Errorf("Expand(2) = %+v, want %+v", got, want)
	}
	if r.Expand(-6).Empty() != true {
		t.Error("over-shrunk rect should be empty")
	}
}
