package ember

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrNilFace is returned when a text operation is given a nil font face.
var ErrNilFace = errors.New("ember: nil font face")

// RenderText rasterizes s through face into a new paletted Bitmap. Glyph
// coverage becomes colorIndex; everything else stays at index 0, which
// callers treat as the background/skip index when stamping the result.
// colorIndex must therefore be at least 1.
//
// Coverage is thresholded at half alpha, collapsing antialiased faces to
// the same 1-bit glyphs a bitmap font produces. A string with no visible
// extent returns (nil, nil).
func RenderText(face font.Face, s string, colorIndex int) (*Bitmap, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	if colorIndex < 1 {
		return nil, fmt.Errorf("ember: text color index must be at least 1, got %d", colorIndex)
	}

	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{A: 0xFF}),
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(s)

	bm := NewBitmap(w, h, colorIndex+1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				bm.Set(x, y, colorIndex)
			}
		}
	}
	return bm, nil
}

// TextHeight returns the face's line height in pixels, used by DrawLabels
// to pad the label radius.
func TextHeight(face font.Face) int {
	if face == nil {
		return 0
	}
	return face.Metrics().Height.Ceil()
}
