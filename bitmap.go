package ember

import "fmt"

// NoSkip disables skip-index filtering in Blit and Rotozoom: every source
// pixel is copied, whatever its value.
const NoSkip = -1

// Bitmap is a 2D grid of palette indices. It carries no colors of its own;
// the host pairs it with a Palette when compositing. Bitmaps are caller
// owned and mutated in place by the drawing functions in this package.
//
// Out-of-range access panics: pixel coordinates and values are under the
// caller's control, so a violation is a programming error rather than a
// runtime condition.
type Bitmap struct {
	Width, Height int

	// ValueCount is the number of distinct palette indices the bitmap may
	// hold. Set accepts values in [0, ValueCount).
	ValueCount int

	pix []uint16
}

// NewBitmap creates a width x height bitmap holding palette indices in
// [0, valueCount). All pixels start at zero.
func NewBitmap(width, height, valueCount int) *Bitmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("ember: bitmap dimensions must be positive (got %dx%d)", width, height))
	}
	if valueCount < 1 || valueCount > 1<<16 {
		panic(fmt.Sprintf("ember: bitmap value count %d out of range [1, 65536]", valueCount))
	}
	return &Bitmap{
		Width:      width,
		Height:     height,
		ValueCount: valueCount,
		pix:        make([]uint16, width*height),
	}
}

// Get returns the palette index stored at (x, y).
func (b *Bitmap) Get(x, y int) int {
	b.checkBounds(x, y)
	return int(b.pix[y*b.Width+x])
}

// Set stores a palette index at (x, y).
func (b *Bitmap) Set(x, y, value int) {
	b.checkBounds(x, y)
	b.checkValue(value)
	b.pix[y*b.Width+x] = uint16(value)
}

// Fill sets every pixel to the given palette index.
func (b *Bitmap) Fill(value int) {
	b.checkValue(value)
	v := uint16(value)
	for i := range b.pix {
		b.pix[i] = v
	}
}

// FillRect sets every pixel of the given rectangle to value. The rectangle
// is clipped to the bitmap; a fully clipped rectangle fills nothing.
func (b *Bitmap) FillRect(x, y, width, height, value int) {
	b.checkValue(value)
	r := Rect{X: x, Y: y, Width: width, Height: height}.
		Intersect(Rect{Width: b.Width, Height: b.Height})
	if r.Empty() {
		return
	}
	v := uint16(value)
	for row := r.Y; row < r.Y+r.Height; row++ {
		base := row * b.Width
		for col := r.X; col < r.X+r.Width; col++ {
			b.pix[base+col] = v
		}
	}
}

// Blit copies src onto b with src's top-left corner at (x, y). Pixels that
// would land outside b are clipped. Source pixels equal to skipIndex are
// left out; pass NoSkip to copy everything.
func (b *Bitmap) Blit(x, y int, src *Bitmap, skipIndex int) {
	if src == nil {
		panic("ember: blit from nil bitmap")
	}
	r := Rect{X: x, Y: y, Width: src.Width, Height: src.Height}.
		Intersect(Rect{Width: b.Width, Height: b.Height})
	if r.Empty() {
		return
	}
	for row := r.Y; row < r.Y+r.Height; row++ {
		srcBase := (row - y) * src.Width
		dstBase := row * b.Width
		for col := r.X; col < r.X+r.Width; col++ {
			v := src.pix[srcBase+col-x]
			if int(v) == skipIndex {
				continue
			}
			b.pix[dstBase+col] = v
		}
	}
}

func (b *Bitmap) checkBounds(x, y int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		panic(fmt.Sprintf("ember: pixel (%d, %d) outside %dx%d bitmap", x, y, b.Width, b.Height))
	}
}

func (b *Bitmap) checkValue(value int) {
	if value < 0 || value >= b.ValueCount {
		panic(fmt.Sprintf("ember: value %d outside bitmap's value count %d", value, b.ValueCount))
	}
}
