package ember

import (
	"errors"
	"math"
)

// Errors reported by the drawing functions.
var (
	// ErrNilBitmap is returned when a required bitmap is nil.
	ErrNilBitmap = errors.New("ember: nil bitmap")
	// ErrInvalidScale is returned when a scale factor is zero or negative.
	ErrInvalidScale = errors.New("ember: scale must be positive")
)

// RotozoomOptions is the parameter set for one Rotozoom call. The source is
// rotated clockwise by Angle around SourcePivot, scaled by Scale, and
// positioned so the pivot lands on DestPoint.
//
// A zero-value clip rectangle means the full bitmap extent. The zero value
// of the whole struct is not useful (its Scale is invalid); start from
// NewRotozoomOptions, or pass nil to Rotozoom for all defaults.
type RotozoomOptions struct {
	// DestPoint (ox, oy) is where the source pivot lands on the destination.
	DestPoint Point
	// SourcePivot (px, py) is the rotation point on the source.
	SourcePivot Point
	// DestClip confines writes on the destination.
	DestClip Rect
	// SourceClip confines sampling on the source.
	SourceClip Rect
	// Angle is the clockwise rotation in radians.
	Angle float64
	// Scale is the uniform scale factor. Must be positive.
	Scale float64
	// SkipIndex is a source palette index that is never copied, leaving the
	// destination pixel untouched. NoSkip copies every sampled pixel.
	SkipIndex int
}

// NewRotozoomOptions returns options with the conventional defaults: pivots
// at both bitmap centers, clips covering the full extents, no rotation,
// scale 1, and no skip index.
func NewRotozoomOptions(dst, src *Bitmap) *RotozoomOptions {
	if dst == nil || src == nil {
		panic("ember: nil bitmap")
	}
	return &RotozoomOptions{
		DestPoint:   Point{X: dst.Width / 2, Y: dst.Height / 2},
		SourcePivot: Point{X: src.Width / 2, Y: src.Height / 2},
		DestClip:    Rect{Width: dst.Width, Height: dst.Height},
		SourceClip:  Rect{Width: src.Width, Height: src.Height},
		Scale:       1,
		SkipIndex:   NoSkip,
	}
}

// Rotozoom blits src onto dst rotated, scaled, and clipped per o. Passing a
// nil o uses NewRotozoomOptions defaults.
//
// The blit inverse-maps: it bounds the transformed source on the
// destination, then walks every destination pixel in that region and steps
// a source coordinate along with it, so any angle/scale combination covers
// the region without gaps. Sampling is nearest-neighbor; there is no
// interpolation. A fully clipped region draws nothing and is not an error.
//
// Rotozoom never allocates and never retains either bitmap.
func Rotozoom(dst, src *Bitmap, o *RotozoomOptions) error {
	if dst == nil || src == nil {
		return ErrNilBitmap
	}
	if o == nil {
		o = NewRotozoomOptions(dst, src)
	}
	if o.Scale <= 0 || math.IsNaN(o.Scale) {
		return ErrInvalidScale
	}

	destClip := o.DestClip
	if destClip == (Rect{}) {
		destClip = Rect{Width: dst.Width, Height: dst.Height}
	}
	destClip = destClip.Intersect(Rect{Width: dst.Width, Height: dst.Height})
	srcClip := o.SourceClip
	if srcClip == (Rect{}) {
		srcClip = Rect{Width: src.Width, Height: src.Height}
	}
	srcClip = srcClip.Intersect(Rect{Width: src.Width, Height: src.Height})
	if destClip.Empty() || srcClip.Empty() {
		return nil
	}

	sin, cos := math.Sincos(o.Angle)
	scale := o.Scale
	px, py := float64(o.SourcePivot.X), float64(o.SourcePivot.Y)
	ox, oy := float64(o.DestPoint.X), float64(o.DestPoint.Y)
	w, h := float64(src.Width), float64(src.Height)

	// Forward-map the four source corners (pivot-relative) to find the
	// destination bounding box of the transformed source.
	corners := [4][2]float64{
		{-px, -py},
		{w - px, -py},
		{w - px, h - py},
		{-px, h - py},
	}
	var minx, maxx, miny, maxy int
	for i, c := range corners {
		dx := int(math.Round((cos*c[0]-sin*c[1])*scale + ox))
		dy := int(math.Round((sin*c[0]+cos*c[1])*scale + oy))
		if i == 0 || dx < minx {
			minx = dx
		}
		if i == 0 || dx > maxx {
			maxx = dx
		}
		if i == 0 || dy < miny {
			miny = dy
		}
		if i == 0 || dy > maxy {
			maxy = dy
		}
	}

	minx = max(minx, destClip.X)
	maxx = min(maxx, destClip.X+destClip.Width-1)
	miny = max(miny, destClip.Y)
	maxy = min(maxy, destClip.Y+destClip.Height-1)
	if minx > maxx || miny > maxy {
		return nil
	}

	// Inverse-mapping step vectors: stepping one destination column moves
	// the source coordinate by (duRow, dvRow); one destination row moves it
	// by (duCol, dvCol). One division per call, no trig in the loop.
	dvCol := cos / scale
	duCol := sin / scale
	duRow := dvCol
	dvRow := -duCol

	startu := px - (ox*dvCol + oy*duCol)
	startv := py - (ox*dvRow + oy*duRow)

	su0, sv0 := float64(srcClip.X), float64(srcClip.Y)
	su1 := float64(srcClip.X + srcClip.Width)
	sv1 := float64(srcClip.Y + srcClip.Height)

	rowu := startu + float64(miny)*duCol
	rowv := startv + float64(miny)*dvCol
	for y := miny; y <= maxy; y++ {
		u := rowu + float64(minx)*duRow
		v := rowv + float64(minx)*dvRow
		dstBase := y * dst.Width
		for x := minx; x <= maxx; x++ {
			// Half-open on the upper bound, so a full-extent clip can
			// never sample one past the last pixel.
			if u >= su0 && u < su1 && v >= sv0 && v < sv1 {
				c := src.pix[int(u)+src.Width*int(v)]
				if int(c) != o.SkipIndex {
					dst.pix[dstBase+x] = c
				}
			}
			u += duRow
			v += dvRow
		}
		rowu += duCol
		rowv += dvCol
	}
	return nil
}
