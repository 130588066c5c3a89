package dial

import (
	"math"
	"testing"
)

func TestNormalizeDeltaRange(t *testing.T) {
	for a := -720.0; a <= 720; a += 7.5 {
		for b := -720.0; b <= 720; b += 11.25 {
			d := NormalizeDelta(a - b)
			if d <= -180 || d > 180 {
				t.Fatalf("NormalizeDelta(%v-%v) = %v, out of (-180,180]", a, b, d)
			}
			// Same direction as the shorter arc: b+d must land on a.
			back := math.Mod(b+d-a, 360)
			if math.Abs(back) > 1e-9 && math.Abs(math.Abs(back)-360) > 1e-9 {
				t.Fatalf("b+d does not reach a: a=%v b=%v d=%v", a, b, d)
			}
		}
	}
}

func TestNormalizeDeltaKnown(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{10, 10},
		{-10, -10},
		{180, 180},
		{-180, 180},
		{359, -1},
		{-359, 1},
		{350, -10},
		{540, 180},
		{725, 5},
	}
	for _, tt := range tests {
		if got := NormalizeDelta(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := NormalizeDelta(math.NaN()); got != 0 {
		t.Errorf("NormalizeDelta(NaN) = %v, want 0", got)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	c := Pt(100, 100)
	p := Pt(150, 80)
	for _, deg := range []float64{0, 13, 90, 179.5, -42, 720} {
		q := Rotate(Rotate(p, c, deg), c, -deg)
		if math.Abs(q.X-p.X) > 1e-9 || math.Abs(q.Y-p.Y) > 1e-9 {
			t.Fatalf("rotate %v and back: got %+v, want %+v", deg, q, p)
		}
	}
}

func TestRotateClockwiseOnScreen(t *testing.T) {
	c := Pt(0, 0)
	// East turned 90 degrees clockwise on screen points down (+y).
	q := Rotate(Pt(10, 0), c, 90)
	if math.Abs(q.X) > 1e-9 || math.Abs(q.Y-10) > 1e-9 {
		t.Fatalf("got %+v, want (0,10)", q)
	}
	if b := Bearing(q, c); math.Abs(b-90) > 1e-9 {
		t.Fatalf("bearing = %v, want 90", b)
	}
}

func TestPolarMatchesBearing(t *testing.T) {
	c := Pt(50, 60)
	for deg := -179.0; deg <= 180; deg += 13 {
		p := Polar(c, 25, deg)
		if b := Bearing(p, c); math.Abs(NormalizeDelta(b-deg)) > 1e-9 {
			t.Fatalf("Bearing(Polar(%v)) = %v", deg, b)
		}
	}
}
