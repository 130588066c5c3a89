package dial

import "math"

// Point is a position in widget-local coordinates (x right, y down).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Circle is a center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Rect is an axis-aligned box, bounds inclusive.
type Rect struct {
	Min, Max Point
}

// SquareAt returns the square of the given side centered on c.
func SquareAt(c Point, side float64) Rect {
	h := side / 2
	return Rect{Min: Point{X: c.X - h, Y: c.Y - h}, Max: Point{X: c.X + h, Y: c.Y + h}}
}

// Contains reports whether p lies inside or on the box.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Overlaps reports whether the interiors of r and o intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Polar returns the point at the given distance and angle (degrees,
// clockwise from east in screen coordinates) from center.
func Polar(center Point, radius, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// Rotate turns p about center by deg degrees. Positive is clockwise on screen.
func Rotate(p, center Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := p.X - center.X
	y := p.Y - center.Y
	return Point{
		X: center.X + (x*cos - y*sin),
		Y: center.Y + (x*sin + y*cos),
	}
}

// Bearing returns the angle of p seen from center, in degrees in (-180, 180].
func Bearing(p, center Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}

// NormalizeDelta maps an angular difference in degrees onto the shorter
// arc, in (-180, 180].
func NormalizeDelta(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
