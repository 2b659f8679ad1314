package ember

import "fmt"

// Palette is an ordered table of RGB colors indexed by the values stored in
// a Bitmap. Entries can be marked transparent; transparency is honored by
// the consuming renderer (the host compositor, or ebitenview during
// development), not by the blit functions themselves — those use explicit
// skip indices instead.
type Palette struct {
	colors      []RGB
	transparent []bool
}

// NewPalette creates a palette with size entries, all black and opaque.
func NewPalette(size int) *Palette {
	if size < 1 {
		panic(fmt.Sprintf("ember: palette size must be positive (got %d)", size))
	}
	return &Palette{
		colors:      make([]RGB, size),
		transparent: make([]bool, size),
	}
}

// NewPaletteFromColors creates a palette holding exactly the given colors.
func NewPaletteFromColors(colors ...RGB) *Palette {
	p := NewPalette(len(colors))
	copy(p.colors, colors)
	return p
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.colors) }

// Color returns the color at index i.
func (p *Palette) Color(i int) RGB {
	p.check(i)
	return p.colors[i]
}

// SetColor replaces the color at index i.
func (p *Palette) SetColor(i int, c RGB) {
	p.check(i)
	p.colors[i] = c
}

// MakeTransparent marks entry i as transparent.
func (p *Palette) MakeTransparent(i int) {
	p.check(i)
	p.transparent[i] = true
}

// MakeOpaque clears the transparency mark on entry i.
func (p *Palette) MakeOpaque(i int) {
	p.check(i)
	p.transparent[i] = false
}

// IsTransparent reports whether entry i is marked transparent.
func (p *Palette) IsTransparent(i int) bool {
	p.check(i)
	return p.transparent[i]
}

func (p *Palette) check(i int) {
	if i < 0 || i >= len(p.colors) {
		panic(fmt.Sprintf("ember: palette index %d outside %d entries", i, len(p.colors)))
	}
}
