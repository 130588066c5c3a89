package dial

import (
	"math"
	"testing"
)

var testSizes = []float64{0.5, 1, 37.5, 100, 320, 400, 1080, 1e6}

func TestComputeZonesCount(t *testing.T) {
	for _, size := range testSizes {
		zones := ComputeZones(size)
		if len(zones) != Digits {
			t.Fatalf("size %v: got %d zones", size, len(zones))
		}
		for i, z := range zones {
			if z.Index != i {
				t.Fatalf("size %v: zone %d has index %d", size, i, z.Index)
			}
			if z.Glyph != Glyphs[i] {
				t.Fatalf("size %v: zone %d glyph %q, want %q", size, i, z.Glyph, Glyphs[i])
			}
			if z.Ceiling != float64(i+1)*27 {
				t.Fatalf("zone %d ceiling %v", i, z.Ceiling)
			}
		}
	}
}

func TestZonesDisjoint(t *testing.T) {
	for _, size := range testSizes {
		zones := ComputeZones(size)
		for i := 0; i < Digits; i++ {
			for j := i + 1; j < Digits; j++ {
				if zones[i].Bounds.Overlaps(zones[j].Bounds) {
					t.Fatalf("size %v: zones %d and %d overlap: %+v %+v", size, i, j, zones[i].Bounds, zones[j].Bounds)
				}
			}
		}
	}
}

func TestZonesInsideDial(t *testing.T) {
	for _, size := range testSizes {
		l := NewLayout(size)
		for i, z := range l.Zones {
			b := z.Bounds
			corners := []Point{b.Min, b.Max, {X: b.Min.X, Y: b.Max.Y}, {X: b.Max.X, Y: b.Min.Y}}
			for _, p := range corners {
				d := math.Hypot(p.X-l.Center.X, p.Y-l.Center.Y)
				if d > l.Radius {
					t.Fatalf("size %v: zone %d corner %+v at %v outside radius %v", size, i, p, d, l.Radius)
				}
			}
		}
	}
}

func TestZoneAngles(t *testing.T) {
	l := NewLayout(400)
	if l.Center != Pt(200, 200) {
		t.Fatalf("center = %+v", l.Center)
	}
	if l.ZoneRadius != 160 {
		t.Fatalf("zone radius = %v, want 160", l.ZoneRadius)
	}
	for i, z := range l.Zones {
		want := -45 - 27*float64(i)
		if math.Abs(z.Angle-want) > 1e-9 {
			t.Fatalf("zone %d angle %v, want %v", i, z.Angle, want)
		}
		if d := math.Hypot(z.Center.X-200, z.Center.Y-200); math.Abs(d-160) > 1e-9 {
			t.Fatalf("zone %d at distance %v", i, d)
		}
		if bc := z.Bounds.Center(); math.Abs(bc.X-z.Center.X) > 1e-9 || math.Abs(bc.Y-z.Center.Y) > 1e-9 {
			t.Fatalf("zone %d box not centered on zone", i)
		}
		if w := z.Bounds.Max.X - z.Bounds.Min.X; math.Abs(w-56) > 1e-9 {
			t.Fatalf("zone %d box side %v, want 56", i, w)
		}
	}
}

func TestHitTestCentersAndInterior(t *testing.T) {
	for _, size := range []float64{100, 400, 1080} {
		l := NewLayout(size)
		half := (l.Zones[0].Bounds.Max.X - l.Zones[0].Bounds.Min.X) / 2
		in := half * 0.99
		for i, z := range l.Zones {
			probes := []Point{
				z.Center,
				z.Center.Add(Pt(in, in)),
				z.Center.Add(Pt(-in, in)),
				z.Center.Add(Pt(in, -in)),
				z.Center.Add(Pt(-in, -in)),
			}
			for _, p := range probes {
				got, ok := HitTest(l.Zones[:], p)
				if !ok || got != i {
					t.Fatalf("size %v: HitTest(%+v) = %d,%v, want %d", size, p, got, ok, i)
				}
			}
		}
	}
}

func TestHitTestMisses(t *testing.T) {
	l := NewLayout(400)
	misses := []Point{
		l.Center,
		Pt(0, 0),
		Pt(400, 400),
		Pt(-50, 200),
		Polar(l.Center, l.ZoneRadius, 15), // gap by the stopper
		Polar(l.Center, 60, -100),         // on the hub
	}
	for _, p := range misses {
		if got, ok := HitTest(l.Zones[:], p); ok {
			t.Fatalf("HitTest(%+v) = %d, want none", p, got)
		}
	}
}

func TestHitTestRotatedUsesRestFrame(t *testing.T) {
	l := NewLayout(400)
	for _, deg := range []float64{0, 27, 90, 200} {
		for i, z := range l.Zones {
			seen := Rotate(z.Center, l.Center, deg)
			got, ok := l.HitTestRotated(seen, deg)
			if !ok || got != i {
				t.Fatalf("rotated %v: zone %d drawn at %+v hit %d,%v", deg, i, seen, got, ok)
			}
		}
	}
}

func TestDegenerateLayout(t *testing.T) {
	for _, size := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		l := NewLayout(size)
		if l.Size != 0 || l.Radius != 0 {
			t.Fatalf("size %v: got size=%v radius=%v", size, l.Size, l.Radius)
		}
		for _, z := range l.Zones {
			if z.Bounds.Max.X != z.Bounds.Min.X {
				t.Fatalf("size %v: zone has area", size)
			}
		}
		if _, ok := HitTest(l.Zones[:], Pt(0, 0)); ok {
			t.Fatalf("size %v: degenerate zone matched", size)
		}
	}
}

func TestDecorations(t *testing.T) {
	l := NewLayout(400)
	if math.Abs(l.Hub.Radius-400/3.21) > 1e-9 {
		t.Fatalf("hub radius = %v", l.Hub.Radius)
	}
	ring := l.Hub.Radius - 10
	for i, d := range l.Dots {
		if r := math.Hypot(d.Center.X-200, d.Center.Y-200); math.Abs(r-ring) > 1e-9 {
			t.Fatalf("dot %d at %v, want %v", i, r, ring)
		}
		if d.Radius != 2 {
			t.Fatalf("dot radius = %v", d.Radius)
		}
	}
	// Stopper: outer edge on the rim at +-5 deg, inner edge 48 in at +-2.5 deg.
	for i, p := range l.Stopper {
		r := math.Hypot(p.X-200, p.Y-200)
		b := Bearing(p, l.Center)
		wantR, wantB := 200.0, 5.0
		if i >= 2 {
			wantR, wantB = 152, 2.5
		}
		if math.Abs(r-wantR) > 1e-9 || math.Abs(math.Abs(b)-wantB) > 1e-9 {
			t.Fatalf("stopper %d at r=%v b=%v", i, r, b)
		}
	}
	if NewLayout(400) != l {
		t.Fatal("layout not deterministic")
	}
}

func TestSlotOf(t *testing.T) {
	for i, g := range Glyphs {
		if got := SlotOf(g); got != i {
			t.Errorf("SlotOf(%q) = %d, want %d", g, got, i)
		}
	}
	if SlotOf('#') != -1 {
		t.Fatal("SlotOf('#') found a slot")
	}
}
