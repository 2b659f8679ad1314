package ember

import (
	"errors"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestRenderText(t *testing.T) {
	bm, err := RenderText(basicfont.Face7x13, "A", 1)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if bm == nil {
		t.Fatal("RenderText returned nil bitmap for a visible string")
	}
	if bm.Width <= 0 || bm.Height <= 0 {
		t.Fatalf("bitmap is %dx%d", bm.Width, bm.Height)
	}
	if bm.ValueCount != 2 {
		t.Errorf("ValueCount = %d, want 2", bm.ValueCount)
	}
	if countValue(bm, 1) == 0 {
		t.Error("no glyph pixels set")
	}
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if v := bm.Get(x, y); v != 0 && v != 1 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 or 1", x, y, v)
			}
		}
	}
}

func TestRenderTextColorIndex(t *testing.T) {
	bm, err := RenderText(basicfont.Face7x13, "#", 5)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if bm.ValueCount != 6 {
		t.Errorf("ValueCount = %d, want 6", bm.ValueCount)
	}
	if countValue(bm, 5) == 0 {
		t.Error("no pixels set to the requested color index")
	}
}

func TestRenderTextWiderString(t *testing.T) {
	one, err := RenderText(basicfont.Face7x13, "W", 1)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	three, err := RenderText(basicfont.Face7x13, "WWW", 1)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if three.Width <= one.Width {
		t.Errorf("widths %d and %d, want the longer string wider", one.Width, three.Width)
	}
}

func TestRenderTextEmpty(t *testing.T) {
	bm, err := RenderText(basicfont.Face7x13, "", 1)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if bm != nil {
		t.Error("empty string should produce no bitmap")
	}
}

func TestRenderTextErrors(t *testing.T) {
	if _, err := RenderText(nil, "A", 1); !errors.Is(err, ErrNilFace) {
		t.Errorf("nil face: err = %v, want ErrNilFace", err)
	}
	if _, err := RenderText(basicfont.Face7x13, "A", 0); err == nil {
		t.Error("color index 0 should be rejected")
	}
}

func TestTextHeight(t *testing.T) {
	if got := TextHeight(basicfont.Face7x13); got <= 0 {
		t.Errorf("TextHeight = %d, want positive", got)
	}
	if got := TextHeight(nil); got != 0 {
		t.Errorf("TextHeight(nil) = %d, want 0", got)
	}
}
