// Package ember is the drawing core for paletted-bitmap widget toolkits on
// embedded displays.
//
// Ember does not render, compose, or refresh anything itself. The host owns
// the display driver, the scene graph, and the touch hardware; ember computes
// pixel placements and mutates host-owned bitmaps in place. Every operation
// is synchronous, allocation-light, and bounded by the destination scan area.
//
// # Anchored placement
//
// Widgets are positioned by a fractional [Anchor] inside their bounding box
// and an absolute target point:
//
//	origin := ember.AnchorCenter.Place(ember.Point{X: 100, Y: 100},
//		ember.Rect{Width: 40, Height: 20})
//	// origin == ember.Point{X: 80, Y: 90}
//
// [Positionable] and [Touchable] are the two capabilities a widget embeds to
// get placement and hit testing without inheriting anything.
//
// # Rotozoom
//
// [Rotozoom] is the rotate+scale blit used to stamp tick marks, labels, and
// zoomed sprites. It walks destination pixels and inverse-maps each one back
// into the source, so any angle and scale fills the destination with no gaps:
//
//	opts := ember.NewRotozoomOptions(face, tick)
//	opts.Angle = math.Pi / 4
//	err := ember.Rotozoom(face, tick, opts)
//
// [DrawTicks] and [DrawLabels] build dial faces on top of it, and [Zoom]
// animates a press "pop" with an [EasingFunc] driving the scale.
//
// # Host boundary
//
// [Bitmap] and [Palette] mirror the pixel and color objects an embedded
// display stack exposes. The ebitenview subpackage stands in for the display
// driver during desktop development; on hardware the host uploads the same
// bitmaps through its own driver.
package ember
