package dial

import (
	"math"
	"time"
)

const (
	// DefaultStiffness matches a medium-stiffness UI spring.
	DefaultStiffness = 1500.0
	// DefaultThreshold is the distance and speed below which the spring snaps.
	DefaultThreshold = 0.01
)

// Spring is a critically damped spring chasing Target. It only drives what is
// drawn; the controller's logical angle never depends on it.
type Spring struct {
	Stiffness float64
	Threshold float64

	Value    float64
	Velocity float64
	Target   float64
}

// NewSpring returns a spring at rest at zero.
func NewSpring() Spring {
	return Spring{Stiffness: DefaultStiffness, Threshold: DefaultThreshold}
}

// Advance moves the spring forward by dt.
func (s *Spring) Advance(dt time.Duration) {
	if dt <= 0 || s.Settled() {
		return
	}
	k := s.Stiffness
	if k <= 0 {
		s.Snap(s.Target)
		return
	}
	w := math.Sqrt(k)
	t := dt.Seconds()
	x := s.Value - s.Target
	v := s.Velocity
	e := math.Exp(-w * t)

	nx := (x + (v+w*x)*t) * e
	nv := (v - w*(v+w*x)*t) * e

	thr := s.Threshold
	if math.Abs(nx) < thr && math.Abs(nv) < thr {
		s.Snap(s.Target)
		return
	}
	s.Value = s.Target + nx
	s.Velocity = nv
}

// Snap jumps to v and stops.
func (s *Spring) Snap(v float64) {
	s.Value = v
	s.Target = v
	s.Velocity = 0
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	return s.Value == s.Target && s.Velocity == 0
}
