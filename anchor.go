package ember

import "math"

// Anchor is a fractional coordinate inside a bounding box, used as the
// reference point for absolute placement. (0, 0) is the box's top-left
// corner, (1, 1) its bottom-right. Values outside [0, 1] are allowed and
// extrapolate the reference point outside the box, which widgets use for
// off-widget placement (annotation arrows, pop-out labels).
type Anchor struct {
	X, Y float64
}

// Common anchors.
var (
	AnchorTopLeft     = Anchor{0, 0}
	AnchorTop         = Anchor{0.5, 0}
	AnchorTopRight    = Anchor{1, 0}
	AnchorLeft        = Anchor{0, 0.5}
	AnchorCenter      = Anchor{0.5, 0.5}
	AnchorRight       = Anchor{1, 0.5}
	AnchorBottomLeft  = Anchor{0, 1}
	AnchorBottom      = Anchor{0.5, 1}
	AnchorBottomRight = Anchor{1, 1}
)

// Place converts the anchor, an absolute target point, and a bounding box
// into the absolute top-left origin that puts the anchored point of the box
// on the target:
//
//	originX = targetX - floor(anchorX * width) - boxX
//	originY = targetY - floor(anchorY * height) - boxY
//
// Place is a pure function: identical inputs always produce identical
// output, and no input can make it fail.
func (a Anchor) Place(target Point, box Rect) Point {
	return Point{
		X: target.X - int(math.Floor(a.X*float64(box.Width))) - box.X,
		Y: target.Y - int(math.Floor(a.Y*float64(box.Height))) - box.Y,
	}
}
