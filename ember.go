package ember

// RGB is a 24-bit color in 0xRRGGBB form, the palette entry format used by
// small embedded display stacks.
type RGB uint32

// RGBOf packs three 8-bit channels into an RGB value.
func RGBOf(r, g, b uint8) RGB {
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// Point is an integer pixel coordinate. The origin is at the top-left,
// with Y increasing downward.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in pixels. It doubles as a widget
// bounding box, in which case X and Y are the extent's offset in the
// widget's own coordinate space.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle. Points on the
// edges are considered inside, matching touch hit-test convention.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Expand returns the rectangle grown by n pixels on every side.
// A negative n shrinks it.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Intersect returns the overlap of r and other. The result is empty if
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
