package ember

import (
	"errors"
	"math"

	"golang.org/x/image/font"
)

// ErrInvalidCount is returned when a tick count is zero or negative.
var ErrInvalidCount = errors.New("ember: count must be positive")

// TicksOptions configures DrawTicks. The sweep is centered on twelve
// o'clock: a 180 degree sweep runs from nine o'clock through twelve to
// three.
type TicksOptions struct {
	// Center is the arc's center of rotation on the target bitmap.
	Center Point
	// Radius is the distance from Center to the outer end of each tick.
	Radius int
	// Count is the number of ticks, spread evenly across the sweep.
	Count int
	// Stroke is the tick line width in pixels (minimum 1).
	Stroke int
	// Length is the tick length in pixels (minimum 1).
	Length int
	// Sweep is the total arc in degrees.
	Sweep float64
	// ColorIndex is the palette index the ticks are drawn with.
	ColorIndex int
}

// DrawTicks stamps Count tick marks along an arc into target, each rotated
// to point at the center. Dial-style widgets call this once while building
// their static face bitmap.
//
// A single tick (Count == 1) is placed at the sweep midpoint.
func DrawTicks(target *Bitmap, o TicksOptions) error {
	if target == nil {
		return ErrNilBitmap
	}
	if o.Count < 1 {
		return ErrInvalidCount
	}
	stroke := max(o.Stroke, 1)
	length := max(o.Length, 1)

	tick := NewBitmap(stroke, length, o.ColorIndex+1)
	tick.Fill(o.ColorIndex)

	opts := &RotozoomOptions{
		// Pivot at the tick's own top-center so it hangs inward from the
		// arc point.
		SourcePivot: Point{X: stroke / 2, Y: 0},
		Scale:       1,
		SkipIndex:   NoSkip,
	}
	for i := 0; i < o.Count; i++ {
		angle := arcAngle(i, o.Count, o.Sweep)
		opts.Angle = angle
		opts.DestPoint = arcPoint(o.Center, float64(o.Radius), angle)
		if err := Rotozoom(target, tick, opts); err != nil {
			return err
		}
	}
	return nil
}

// LabelsOptions configures DrawLabels. Labels share the tick convention of
// a sweep centered on twelve o'clock, and sit just outside Radius so they
// clear the tick marks.
type LabelsOptions struct {
	// Face renders the label text. Required.
	Face font.Face
	// Labels are placed evenly across the sweep, first to last.
	Labels []string
	// Center is the arc's center of rotation on the target bitmap.
	Center Point
	// Radius is the tick radius; labels are pushed outward from it by half
	// the font height.
	Radius int
	// Sweep is the total arc in degrees.
	Sweep float64
	// RotateLabels aligns each label with its arc angle. When false, all
	// labels are stamped upright.
	RotateLabels bool
	// Scale resizes the label bitmaps. Zero means 1.
	Scale float64
	// ColorIndex is the palette index the label text is drawn with. Must be
	// at least 1; index 0 is the label background and is never copied.
	ColorIndex int
}

// DrawLabels renders each label through o.Face and stamps it along the arc
// into target. A single label goes to the sweep midpoint.
func DrawLabels(target *Bitmap, o LabelsOptions) error {
	if target == nil {
		return ErrNilBitmap
	}
	if o.Face == nil {
		return ErrNilFace
	}
	scale := o.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return ErrInvalidScale
	}

	radius := float64(o.Radius + TextHeight(o.Face)/2)
	for i, s := range o.Labels {
		label, err := RenderText(o.Face, s, o.ColorIndex)
		if err != nil {
			return err
		}
		if label == nil {
			continue
		}
		angle := arcAngle(i, len(o.Labels), o.Sweep)
		opts := &RotozoomOptions{
			DestPoint:   arcPoint(o.Center, radius, angle),
			SourcePivot: Point{X: label.Width / 2, Y: label.Height / 2},
			Scale:       scale,
			SkipIndex:   0,
		}
		if o.RotateLabels {
			opts.Angle = angle
		}
		if err := Rotozoom(target, label, opts); err != nil {
			return err
		}
	}
	return nil
}

// arcAngle returns the i-th of count angles (radians, clockwise from
// twelve o'clock) across a sweep given in degrees. A single mark sits at
// the sweep midpoint rather than dividing by zero.
func arcAngle(i, count int, sweepDeg float64) float64 {
	if count <= 1 {
		return 0
	}
	deg := -sweepDeg/2 + float64(i)*sweepDeg/float64(count-1)
	return deg * math.Pi / 180
}

// arcPoint returns the pixel at the given angle and radius from center,
// with angle 0 pointing straight up.
func arcPoint(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + int(math.Round(radius*math.Sin(angle))),
		Y: center.Y - int(math.Round(radius*math.Cos(angle))),
	}
}
