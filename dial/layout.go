package dial

import "math"

// Digits is the number of finger holes on the dial.
const Digits = 10

const (
	arcStart  = -45.0
	angleStep = -270.0 / Digits

	// CeilingStep is the extra travel each slot further round the dial gets.
	CeilingStep = 27.0

	// ReleaseThreshold is the share of the ceiling a drag must reach to dial.
	ReleaseThreshold = 0.9
)

// Glyphs maps slot index to the digit printed under that hole.
var Glyphs = [Digits]rune{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0'}

// Reference metrics for a dial refSize units across. Everything scales with
// the real size so the zone boxes stay disjoint and inside the rim.
const (
	refSize         = 400.0
	refInset        = 40.0
	refBoxSide      = 56.0
	refHoleRadius   = 28.0
	refHubDivisor   = 3.21
	refDotInset     = 10.0
	refDotRadius    = 2.0
	refRimWidth     = 8.0
	refStopperDepth = 48.0

	dotCount         = 12
	stopperAngle     = 0.0
	stopperOuterHalf = 5.0
	stopperInnerHalf = 2.5
)

// Zone is the hit region and travel limit of one digit slot.
type Zone struct {
	Index   int
	Glyph   rune
	Angle   float64 // degrees, clockwise from east
	Center  Point
	Bounds  Rect
	Ceiling float64
}

// Layout is the geometry of a dial of a given size. It is a plain value and
// safe to copy.
type Layout struct {
	Size       float64
	Center     Point
	Radius     float64
	ZoneRadius float64
	Zones      [Digits]Zone

	HoleRadius float64
	Hub        Circle
	Dots       [dotCount]Circle
	RimWidth   float64
	Stopper    [4]Point
}

// Ceiling returns the maximum rotation for slot i.
func Ceiling(i int) float64 {
	return float64(i+1) * CeilingStep
}

// SlotAngle returns the rest-frame angle of slot i in degrees.
func SlotAngle(i int) float64 {
	return float64(i)*angleStep + arcStart
}

// SlotOf returns the slot index showing glyph, or -1.
func SlotOf(glyph rune) int {
	for i, g := range Glyphs {
		if g == glyph {
			return i
		}
	}
	return -1
}

// NewLayout computes the dial geometry for a square widget of the given side.
// Non-positive sizes give a degenerate layout with zero-area zones.
func NewLayout(size float64) Layout {
	if !(size > 0) || math.IsInf(size, 0) {
		size = 0
	}
	k := size / refSize

	l := Layout{
		Size:       size,
		Center:     Point{X: size / 2, Y: size / 2},
		Radius:     size / 2,
		ZoneRadius: size/2 - refInset*k,
		HoleRadius: refHoleRadius * k,
		RimWidth:   refRimWidth * k,
	}
	l.Zones = computeZones(l.Center, l.ZoneRadius, refBoxSide*k)

	l.Hub = Circle{Center: l.Center, Radius: size / refHubDivisor}
	dotRing := l.Hub.Radius - refDotInset*k
	for i := range l.Dots {
		deg := 360.0 / dotCount * float64(i)
		l.Dots[i] = Circle{Center: Polar(l.Center, dotRing, deg), Radius: refDotRadius * k}
	}

	outer := size / 2
	inner := outer - refStopperDepth*k
	l.Stopper = [4]Point{
		Polar(l.Center, outer, stopperAngle-stopperOuterHalf),
		Polar(l.Center, outer, stopperAngle+stopperOuterHalf),
		Polar(l.Center, inner, stopperAngle+stopperInnerHalf),
		Polar(l.Center, inner, stopperAngle-stopperInnerHalf),
	}
	return l
}

// ComputeZones returns the ten digit zones for a dial of the given size, in
// slot order.
func ComputeZones(size float64) [Digits]Zone {
	return NewLayout(size).Zones
}

func computeZones(center Point, radius, side float64) [Digits]Zone {
	var zones [Digits]Zone
	for i := range zones {
		deg := SlotAngle(i)
		c := Polar(center, radius, deg)
		zones[i] = Zone{
			Index:   i,
			Glyph:   Glyphs[i],
			Angle:   deg,
			Center:  c,
			Bounds:  SquareAt(c, side),
			Ceiling: Ceiling(i),
		}
	}
	return zones
}

// HitTest returns the first zone, in slot order, whose box contains p.
// p must already be in the rest frame. Zero-area zones never match.
func HitTest(zones []Zone, p Point) (int, bool) {
	for i := range zones {
		b := zones[i].Bounds
		if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
			continue
		}
		if b.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// HitTestRotated hit-tests a widget-local point against a dial currently
// rotated by deg, by first turning p back into the rest frame.
func (l Layout) HitTestRotated(p Point, deg float64) (int, bool) {
	return HitTest(l.Zones[:], Rotate(p, l.Center, -deg))
}
