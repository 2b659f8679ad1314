package ember

import (
	"image"
	"math"
)

// wheelSpokes are the six hues the color wheel blends between, bracketed
// by magenta on both ends so interpolation wraps cleanly.
var wheelSpokes = [7][3]float64{
	{0xFF, 0x00, 0xFF},
	{0xFF, 0x00, 0x00},
	{0xFF, 0xFF, 0x00},
	{0x00, 0xFF, 0x00},
	{0x00, 0xFF, 0xFF},
	{0x00, 0x00, 0xFF},
	{0xFF, 0x00, 0xFF},
}

// WheelColor returns the color at pixel (x, y) of a size x size color
// wheel. Hue comes from the angle around the center, brightness from the
// distance: the center is dark and the rim is full intensity. This is also
// the inverse lookup a color-picker widget uses to turn a touch point back
// into a color.
func WheelColor(x, y, size int) RGB {
	half := float64(size) / 2
	dx := float64(x) - half
	dy := float64(y) - half
	dist := math.Sqrt(dx*dx + dy*dy)
	shade := dist / half

	var angle float64
	if dx == 0 {
		angle = -90
		if dy > 0 {
			angle = 90
		}
	} else {
		angle = math.Atan2(dy, dx) * 180 / math.Pi
	}
	// The 30 degree offset lines the red spoke up with twelve o'clock.
	angle = math.Mod(angle+30, 360)
	if angle < 0 {
		angle += 360
	}

	idx := angle / 60
	base := int(math.Round(idx))
	step := 1
	if float64(base) > idx {
		step = -1
	}
	adj := (6 + base + step) % 6
	ratio := math.Abs(idx - float64(base))
	return blendSpokes(base, adj, ratio, shade)
}

// blendSpokes interpolates channel-wise between two spokes, then darkens
// (shade < 1) or washes toward white (shade > 1).
func blendSpokes(base, adj int, ratio, shade float64) RGB {
	var out RGB
	for pos, shift := 0, 16; pos < 3; pos, shift = pos+1, shift-8 {
		c := math.Round(wheelSpokes[base][pos]*(1-ratio) + wheelSpokes[adj][pos]*ratio)
		if shade < 1 {
			c *= shade
		} else if shade > 1 {
			sr := shade - 1
			c = 0xFF*sr + c*(1-sr)
		}
		out |= RGB(int(c)&0xFF) << shift
	}
	return out
}

// MakeWheel renders a size x size color wheel into a new true-color image,
// with pixels outside the wheel's radius set to bg. Saving the image is the
// host's business; typical use is to quantize it once into a Bitmap+Palette
// for a picker widget's static face.
func MakeWheel(size int, bg RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - half
			dy := float64(y) - half
			c := bg
			if math.Sqrt(dx*dx+dy*dy) <= half {
				c = WheelColor(x, y, size)
			}
			off := img.PixOffset(x, y)
			img.Pix[off+0] = c.R()
			img.Pix[off+1] = c.G()
			img.Pix[off+2] = c.B()
			img.Pix[off+3] = 0xFF
		}
	}
	return img
}
