package ember

import "testing"

func TestPositionableAnchored(t *testing.T) {
	var p Positionable
	p.SetBoundingBox(Rect{Width: 40, Height: 20})
	p.AnchorTo(AnchorCenter, Point{X: 100, Y: 100})

	if got := p.Strategy(); got != PositionAnchored {
		t.Errorf("Strategy = %v, want PositionAnchored", got)
	}
	if got := p.Position(); got != (Point{X: 80, Y: 90}) {
		t.Errorf("Position = %+v, want {80 90}", got)
	}
}

func TestPositionableRecomputesOnResize(t *testing.T) {
	var p Positionable
	p.SetBoundingBox(Rect{Width: 40, Height: 20})
	p.AnchorTo(AnchorCenter, Point{X: 100, Y: 100})

	p.Resize(20, 10)
	if got := p.Position(); got != (Point{X: 90, Y: 95}) {
		t.Errorf("Position after resize = %+v, want {90 95}", got)
	}
	if got := p.BoundingBox(); got != (Rect{Width: 20, Height: 10}) {
		t.Errorf("BoundingBox = %+v", got)
	}
}

func TestPositionableAbsolute(t *testing.T) {
	var p Positionable
	p.SetBoundingBox(Rect{Width: 40, Height: 20})
	p.MoveTo(7, 9)

	if got := p.Strategy(); got != PositionAbsolute {
		t.Errorf("Strategy = %v, want PositionAbsolute", got)
	}
	if got := p.Position(); got != (Point{X: 7, Y: 9}) {
		t.Errorf("Position = %+v, want {7 9}", got)
	}
	// Absolute placement ignores bounding box changes.
	p.Resize(10, 10)
	if got := p.Position(); got != (Point{X: 7, Y: 9}) {
		t.Errorf("Position after resize = %+v, want {7 9}", got)
	}
}

func TestPositionableStrategySwitch(t *testing.T) {
	var p Positionable
	p.SetBoundingBox(Rect{Width: 10, Height: 10})
	p.AnchorTo(AnchorTopLeft, Point{X: 5, Y: 5})
	p.MoveTo(0, 0)
	if p.Strategy() != PositionAbsolute {
		t.Error("MoveTo did not switch to PositionAbsolute")
	}
	p.AnchorTo(AnchorBottomRight, Point{X: 20, Y: 20})
	if p.Strategy() != PositionAnchored {
		t.Error("AnchorTo did not switch to PositionAnchored")
	}
	if got := p.Position(); got != (Point{X: 10, Y: 10}) {
		t.Errorf("Position = %+v, want {10 10}", got)
	}
}
