package ember

// Touchable is the hit-testing capability a widget embeds. It owns a
// rectangular touch boundary in the widget's local coordinates; callers
// convert screen touches to local coordinates before testing.
//
// A touch outside the boundary is not an error — it simply misses.
type Touchable struct {
	// Boundary is the responsive area in local coordinates.
	Boundary Rect

	// Padding grows the boundary on every side, making small widgets
	// easier to hit on resistive touch screens. Negative padding shrinks
	// the responsive area instead.
	Padding int
}

// Contains reports whether the local-coordinate point p lies within the
// padded touch boundary. Points on the edges count as hits.
func (t Touchable) Contains(p Point) bool {
	r := t.Boundary
	if t.Padding != 0 {
		r = r.Expand(t.Padding)
	}
	return r.Contains(p)
}
