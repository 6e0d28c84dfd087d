package anim

import "testing"

func demoOrbit() Orbit {
	return Orbit{
		ScreenWidth:  960,
		ScreenHeight: 540,
		SpriteWidth:  100,
		SpriteHeight: 100,
	}
}

func TestPositionAtPhaseZero(t *testing.T) {
	o := demoOrbit()

	// sin(0) = 0 puts x at the centered rest position.
	x, _ := o.Position(0, 0)
	wantX := 960/2 - 100/2
	if x != wantX {
		t.Errorf("expected x=%d at phase 0, got %d", wantX, x)
	}
}

func TestPositionStaysOnScreenBand(t *testing.T) {
	o := demoOrbit()

	minX := 960/2 - 50 - 384 - 1
	maxX := 960/2 - 50 + 384 + 1
	minY := 540/2 - 50 - 216 - 1
	maxY := 540/2 - 50 + 216 + 1

	for _, offset := range []float64{0, 1.0 / 3, 2.0 / 3} {
		for i := 0; i < 1000; i++ {
			ratio := float64(i) / 1000
			x, y := o.Position(ratio, offset)
			if x < minX || x > maxX {
				t.Fatalf("x=%d out of band at ratio=%f offset=%f", x, ratio, offset)
			}
			if y < minY || y > maxY {
				t.Fatalf("y=%d out of band at ratio=%f offset=%f", y, ratio, offset)
			}
		}
	}
}

func TestEntitiesNeverCoincide(t *testing.T) {
	o := demoOrbit()
	offsets := []float64{0, 1.0 / 3, 2.0 / 3}

	for i := 0; i < 1000; i++ {
		ratio := float64(i) / 1000
		for a := 0; a < len(offsets); a++ {
			for b := a + 1; b < len(offsets); b++ {
				xa, ya := o.Position(ratio, offsets[a])
				xb, yb := o.Position(ratio, offsets[b])
				if xa == xb && ya == yb {
					t.Fatalf("entities %d and %d coincide at ratio=%f (%d,%d)", a, b, ratio, xa, ya)
				}
			}
		}
	}
}

func TestRectHasSpriteSize(t *testing.T) {
	o := demoOrbit()

	r := o.Rect(0.42, 1.0/3)
	if r.Dx() != 100 || r.Dy() != 100 {
		t.Errorf("expected 100x100 rect, got %dx%d", r.Dx(), r.Dy())
	}

	x, y := o.Position(0.42, 1.0/3)
	if r.Min.X != x || r.Min.Y != y {
		t.Errorf("rect origin (%d,%d) does not match position (%d,%d)", r.Min.X, r.Min.Y, x, y)
	}
}
