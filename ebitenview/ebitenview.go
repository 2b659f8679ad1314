// Package ebitenview previews ember bitmaps through Ebitengine during
// desktop development. It stands in for an embedded display driver: it
// composites a Bitmap through its Palette, honors transparent palette
// entries, and polls the cursor as a single-touch screen. Production hosts
// replace this package with their own driver.
package ebitenview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/embergfx/ember"
)

// View uploads one Bitmap+Palette pair to the GPU and draws it scaled into
// the window. The bitmap and palette stay caller-owned; call Invalidate
// after mutating either so the next Draw re-uploads.
type View struct {
	bitmap  *ember.Bitmap
	palette *ember.Palette
	img     *ebiten.Image
	buf     []byte
	dirty   bool

	// Placement of the last Draw, for mapping the cursor back into bitmap
	// coordinates.
	scale      float64
	offX, offY float64
}

// New creates a view over the given bitmap and palette.
func New(bitmap *ember.Bitmap, palette *ember.Palette) *View {
	if bitmap == nil || palette == nil {
		panic("ebitenview: nil bitmap or palette")
	}
	return &View{
		bitmap:  bitmap,
		palette: palette,
		img:     ebiten.NewImage(bitmap.Width, bitmap.Height),
		buf:     make([]byte, bitmap.Width*bitmap.Height*4),
		dirty:   true,
		scale:   1,
	}
}

// Invalidate marks the bitmap or palette contents changed; the next Draw
// re-uploads the pixels.
func (v *View) Invalidate() { v.dirty = true }

// Draw paints the bitmap into screen, scaled by the largest integer factor
// that fits and centered.
func (v *View) Draw(screen *ebiten.Image) {
	if v.dirty {
		v.upload()
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	s := math.Max(1, math.Floor(math.Min(
		float64(sw)/float64(v.bitmap.Width),
		float64(sh)/float64(v.bitmap.Height),
	)))
	v.scale = s
	v.offX = (float64(sw) - s*float64(v.bitmap.Width)) / 2
	v.offY = (float64(sh) - s*float64(v.bitmap.Height)) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(v.offX, v.offY)
	screen.DrawImage(v.img, op)
}

// TouchPoint reports the bitmap-space coordinate currently pressed, from
// either the mouse or the first touch, and whether anything is pressed at
// all. Points outside the bitmap report no press, matching a touch screen
// that only covers the display.
func (v *View) TouchPoint() (ember.Point, bool) {
	var cx, cy int
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		cx, cy = ebiten.CursorPosition()
	default:
		ids := ebiten.AppendTouchIDs(nil)
		if len(ids) == 0 {
			return ember.Point{}, false
		}
		cx, cy = ebiten.TouchPosition(ids[0])
	}
	p := ember.Point{
		X: int((float64(cx) - v.offX) / v.scale),
		Y: int((float64(cy) - v.offY) / v.scale),
	}
	in := ember.Rect{Width: v.bitmap.Width - 1, Height: v.bitmap.Height - 1}.Contains(p)
	return p, in
}

func (v *View) upload() {
	w := v.bitmap.Width
	for y := 0; y < v.bitmap.Height; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 4
			i := v.bitmap.Get(x, y)
			if i >= v.palette.Len() || v.palette.IsTransparent(i) {
				v.buf[off+0] = 0
				v.buf[off+1] = 0
				v.buf[off+2] = 0
				v.buf[off+3] = 0
				continue
			}
			c := v.palette.Color(i)
			v.buf[off+0] = c.R()
			v.buf[off+1] = c.G()
			v.buf[off+2] = c.B()
			v.buf[off+3] = 0xFF
		}
	}
	v.img.WritePixels(v.buf)
	v.dirty = false
}
