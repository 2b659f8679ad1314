package ember

import (
	"errors"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestDrawTicksSingleTickAtMidpoint(t *testing.T) {
	target := NewBitmap(32, 32, 2)
	err := DrawTicks(target, TicksOptions{
		Center:     Point{X: 16, Y: 16},
		Radius:     8,
		Count:      1,
		Stroke:     1,
		Length:     5,
		Sweep:      180,
		ColorIndex: 1,
	})
	if err != nil {
		t.Fatalf("DrawTicks: %v", err)
	}
	// The lone tick sits at the sweep midpoint — straight up — hanging
	// inward from the arc point (16, 8).
	for y := 8; y <= 12; y++ {
		if target.Get(16, y) != 1 {
			t.Errorf("expected tick pixel at (16,%d)", y)
		}
	}
	if got := countValue(target, 1); got != 5 {
		t.Errorf("tick pixels = %d, want 5", got)
	}
}

func TestDrawTicksSpreadAcrossSweep(t *testing.T) {
	target := NewBitmap(32, 32, 2)
	err := DrawTicks(target, TicksOptions{
		Center:     Point{X: 16, Y: 16},
		Radius:     8,
		Count:      3,
		Stroke:     1,
		Length:     5,
		Sweep:      180,
		ColorIndex: 1,
	})
	if err != nil {
		t.Fatalf("DrawTicks: %v", err)
	}
	// Three ticks at -90, 0, and +90 degrees: their arc points are due
	// west, north, and east of the center, and each tick points inward.
	for _, p := range []Point{{X: 8, Y: 16}, {X: 16, Y: 8}, {X: 24, Y: 16}} {
		if target.Get(p.X, p.Y) != 1 {
			t.Errorf("expected tick pixel at (%d,%d)", p.X, p.Y)
		}
	}
	if got := countValue(target, 1); got != 15 {
		t.Errorf("tick pixels = %d, want 15", got)
	}
}

func TestDrawTicksCountErrors(t *testing.T) {
	target := NewBitmap(16, 16, 2)
	for _, count := range []int{0, -3} {
		err := DrawTicks(target, TicksOptions{Count: count, ColorIndex: 1})
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: err = %v, want ErrInvalidCount", count, err)
		}
	}
	if err := DrawTicks(nil, TicksOptions{Count: 1, ColorIndex: 1}); !errors.Is(err, ErrNilBitmap) {
		t.Errorf("nil target: err = %v, want ErrNilBitmap", err)
	}
}

func TestDrawLabelsStampsText(t *testing.T) {
	target := NewBitmap(96, 96, 3)
	err := DrawLabels(target, LabelsOptions{
		Face:       basicfont.Face7x13,
		Labels:     []string{"0", "5", "10"},
		Center:     Point{X: 48, Y: 48},
		Radius:     24,
		Sweep:      180,
		ColorIndex: 2,
	})
	if err != nil {
		t.Fatalf("DrawLabels: %v", err)
	}
	if got := countValue(target, 2); got == 0 {
		t.Error("DrawLabels wrote no label pixels")
	}
	// Label backgrounds are skipped, so index 1 never appears and index 0
	// stays the majority.
	if got := countValue(target, 1); got != 0 {
		t.Errorf("unexpected index-1 pixels: %d", got)
	}
}

func TestDrawLabelsUpright(t *testing.T) {
	rotated := NewBitmap(96, 96, 2)
	upright := NewBitmap(96, 96, 2)
	opts := LabelsOptions{
		Face:       basicfont.Face7x13,
		Labels:     []string{"10", "20"},
		Center:     Point{X: 48, Y: 48},
		Radius:     24,
		Sweep:      180,
		ColorIndex: 1,
	}
	opts.RotateLabels = true
	if err := DrawLabels(rotated, opts); err != nil {
		t.Fatalf("DrawLabels rotated: %v", err)
	}
	opts.RotateLabels = false
	if err := DrawLabels(upright, opts); err != nil {
		t.Fatalf("DrawLabels upright: %v", err)
	}
	same := true
	for y := 0; y < 96 && same; y++ {
		for x := 0; x < 96; x++ {
			if rotated.Get(x, y) != upright.Get(x, y) {
				same = false
				break
			}
		}
	}
	// At ±90 degrees the rotated and upright renderings cannot coincide.
	if same {
		t.Error("RotateLabels had no effect on a 180 degree sweep")
	}
}

func TestDrawLabelsErrors(t *testing.T) {
	target := NewBitmap(16, 16, 2)
	if err := DrawLabels(target, LabelsOptions{Labels: []string{"x"}, ColorIndex: 1}); !errors.Is(err, ErrNilFace) {
		t.Errorf("nil face: err = %v, want ErrNilFace", err)
	}
	if err := DrawLabels(nil, LabelsOptions{}); !errors.Is(err, ErrNilBitmap) {
		t.Errorf("nil target: err = %v, want ErrNilBitmap", err)
	}
	err := DrawLabels(target, LabelsOptions{
		Face:       basicfont.Face7x13,
		Labels:     []string{"x"},
		Scale:      -1,
		ColorIndex: 1,
	})
	if !errors.Is(err, ErrInvalidScale) {
		t.Errorf("negative scale: err = %v, want ErrInvalidScale", err)
	}
}
