package ember

import (
	"errors"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenFunc adapts an EasingFunc to the gween ease.TweenFunc signature, so
// ember curves can drive any gween.Tween.
func TweenFunc(f EasingFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*float32(f(float64(t/d)))
	}
}

// ZoomConfig configures a Zoom animation.
type ZoomConfig struct {
	// MaxScale is the scale at full zoom. Must be positive; values below 1
	// shrink instead of popping. Zero means 1.5, the conventional icon pop.
	MaxScale float64
	// MaxAngle is the clockwise rotation in radians at full zoom.
	MaxAngle float64
	// FillIndex is the transparent palette index the scratch bitmap is
	// cleared with before each frame.
	FillIndex int
	// Duration is the animation length in seconds. Must be positive.
	Duration float32
	// Easing shapes the zoom position over time. Nil means QuadraticEaseIn
	// for zoom-in and QuadraticEaseOut for zoom-out.
	Easing EasingFunc
}

// Zoom animates a rotate+scale pop of a source bitmap into a caller-owned
// scratch bitmap, the effect an animated icon plays on press and release.
// The scratch should be larger than the source so the zoomed image has room;
// anything past its edge is clipped, not an error.
//
// There is no global animation manager — callers drive Update each frame
// and re-upload the scratch to their display when it returns. The Zoom
// never allocates bitmaps and shares the scratch with nothing.
type Zoom struct {
	dest      *Bitmap
	source    *Bitmap
	maxScale  float64
	maxAngle  float64
	fillIndex int
	tween     *gween.Tween
	position  float64
	// Done reports that the animation has reached its end. Update becomes a
	// no-op once Done is set.
	Done bool
}

// ErrInvalidDuration is returned when an animation duration is not positive.
var ErrInvalidDuration = errors.New("ember: duration must be positive")

// NewZoomIn creates a zoom animation from rest (scale 1, angle 0) up to the
// configured maximum.
func NewZoomIn(dest, source *Bitmap, cfg ZoomConfig) (*Zoom, error) {
	return newZoom(dest, source, cfg, false)
}

// NewZoomOut creates the reverse animation, from the configured maximum
// back down to rest.
func NewZoomOut(dest, source *Bitmap, cfg ZoomConfig) (*Zoom, error) {
	return newZoom(dest, source, cfg, true)
}

func newZoom(dest, source *Bitmap, cfg ZoomConfig, reverse bool) (*Zoom, error) {
	if dest == nil || source == nil {
		return nil, ErrNilBitmap
	}
	if cfg.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	maxScale := cfg.MaxScale
	if maxScale == 0 {
		maxScale = 1.5
	}
	if maxScale < 0 {
		return nil, ErrInvalidScale
	}
	easing := cfg.Easing
	if easing == nil {
		easing = QuadraticEaseIn
		if reverse {
			easing = QuadraticEaseOut
		}
	}
	begin, end := float32(0), float32(1)
	if reverse {
		begin, end = 1, 0
	}
	z := &Zoom{
		dest:      dest,
		source:    source,
		maxScale:  maxScale,
		maxAngle:  cfg.MaxAngle,
		fillIndex: cfg.FillIndex,
		tween:     gween.New(begin, end, cfg.Duration, TweenFunc(easing)),
		position:  float64(begin),
	}
	return z, nil
}

// Update advances the animation by dt seconds and redraws the scratch
// bitmap: clear to the fill index, then rotozoom the source about both
// centers at the eased scale and angle. Once the tween finishes, Done is
// set and further calls draw nothing.
func (z *Zoom) Update(dt float32) error {
	if z.Done {
		return nil
	}
	p, finished := z.tween.Update(dt)
	z.position = float64(p)
	z.Done = finished

	z.dest.Fill(z.fillIndex)
	opts := &RotozoomOptions{
		DestPoint:   Point{X: z.dest.Width / 2, Y: z.dest.Height / 2},
		SourcePivot: Point{X: z.source.Width / 2, Y: z.source.Height / 2},
		Angle:       z.position * z.maxAngle,
		Scale:       1 + z.position*(z.maxScale-1),
		SkipIndex:   NoSkip,
	}
	return Rotozoom(z.dest, z.source, opts)
}

// Position returns the current eased zoom fraction, 0 at rest and 1 at
// full zoom.
func (z *Zoom) Position() float64 { return z.position }
