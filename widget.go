package ember

// PositionStrategy says how a widget's origin is determined. The strategy
// is an explicit property set alongside the position, so layout code can
// branch on it directly instead of probing widgets for anchor support.
type PositionStrategy uint8

const (
	// PositionAbsolute places the origin at coordinates given verbatim.
	PositionAbsolute PositionStrategy = iota
	// PositionAnchored derives the origin from an Anchor, a target point,
	// and the bounding box.
	PositionAnchored
)

// Positionable is the placement capability a widget embeds: it owns the
// widget's bounding box and produces the absolute origin for the host's
// drawable node. The computed position is refreshed whenever the anchor,
// the target point, or the bounding box changes.
type Positionable struct {
	box      Rect
	strategy PositionStrategy
	anchor   Anchor
	target   Point
	pos      Point
}

// SetBoundingBox replaces the widget's bounding box and recomputes the
// position if the widget is anchored.
func (p *Positionable) SetBoundingBox(box Rect) {
	p.box = box
	p.recompute()
}

// BoundingBox returns the widget's extent in its own coordinate space.
func (p *Positionable) BoundingBox() Rect { return p.box }

// Resize changes the bounding box dimensions, keeping its offset, and
// recomputes the position if the widget is anchored.
func (p *Positionable) Resize(width, height int) {
	p.box.Width = width
	p.box.Height = height
	p.recompute()
}

// MoveTo places the widget's origin at absolute coordinates and switches
// the strategy to PositionAbsolute.
func (p *Positionable) MoveTo(x, y int) {
	p.strategy = PositionAbsolute
	p.pos = Point{X: x, Y: y}
}

// AnchorTo places the widget so that the anchored fraction of its bounding
// box lands on target, and switches the strategy to PositionAnchored.
func (p *Positionable) AnchorTo(anchor Anchor, target Point) {
	p.strategy = PositionAnchored
	p.anchor = anchor
	p.target = target
	p.recompute()
}

// Position returns the absolute origin the host should assign to the
// widget's drawable node.
func (p *Positionable) Position() Point { return p.pos }

// Strategy returns the active positioning strategy.
func (p *Positionable) Strategy() PositionStrategy { return p.strategy }

// Anchor returns the current anchor. Meaningful only under
// PositionAnchored.
func (p *Positionable) Anchor() Anchor { return p.anchor }

func (p *Positionable) recompute() {
	if p.strategy == PositionAnchored {
		p.pos = p.anchor.Place(p.target, p.box)
	}
}
