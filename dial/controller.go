package dial

import "time"

// Phase is the stage of a pointer sample within a gesture.
type Phase uint8

const (
	PhaseDown Phase = iota + 1
	PhaseMove
	PhaseUp
	// PhaseCancel ends a gesture whose input source went away. It resets
	// without dialing.
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event is one pointer sample in widget-local coordinates.
type Event struct {
	Phase Phase
	Pos   Point
}

// State is the logical dial state. The zero value is idle.
type State struct {
	Active  bool
	Slot    int
	Angle   float64
	Bearing float64
}

// Digit returns the engaged slot, or -1 when idle.
func (s State) Digit() int {
	if !s.Active {
		return -1
	}
	return s.Slot
}

// Ceiling returns the rotation limit of the engaged slot, or 0 when idle.
func (s State) Ceiling() float64 {
	if !s.Active {
		return 0
	}
	return Ceiling(s.Slot)
}

// Effects reports what a transition did besides changing state.
type Effects struct {
	Engaged  bool
	Consumed bool
	Selected bool
	Digit    rune
	// Reset asks the presentation layer to animate back to rest.
	Reset bool
}

// Step applies ev to s. It has no side effects.
func Step(l Layout, s State, ev Event) (State, Effects) {
	var fx Effects
	switch ev.Phase {
	case PhaseDown:
		if s.Active {
			return s, fx
		}
		slot, ok := l.HitTestRotated(ev.Pos, s.Angle)
		if !ok {
			return s, fx
		}
		fx.Engaged = true
		return State{Active: true, Slot: slot, Bearing: Bearing(ev.Pos, l.Center)}, fx

	case PhaseMove:
		if !s.Active {
			return s, fx
		}
		a1 := Bearing(ev.Pos, l.Center)
		ceiling := Ceiling(s.Slot)
		if s.Angle <= ceiling {
			s.Angle = clamp(s.Angle+NormalizeDelta(a1-s.Bearing), 0, ceiling)
		}
		s.Bearing = a1
		fx.Consumed = true
		return s, fx

	case PhaseUp:
		if !s.Active {
			return s, fx
		}
		if s.Angle >= Ceiling(s.Slot)*ReleaseThreshold {
			fx.Selected = true
			fx.Digit = Glyphs[s.Slot]
		}
		fx.Reset = true
		return State{}, fx

	case PhaseCancel:
		if !s.Active {
			return s, fx
		}
		fx.Reset = true
		return State{}, fx
	}
	return s, fx
}

// Controller owns the state of one dial widget.
type Controller struct {
	layout  Layout
	state   State
	spring  Spring
	onDigit func(digit rune)
}

// NewController returns an idle controller for a dial of the given size.
// onDigitSelected is called at most once per gesture, on release.
func NewController(size float64, onDigitSelected func(digit rune)) *Controller {
	return &Controller{
		layout:  NewLayout(size),
		spring:  NewSpring(),
		onDigit: onDigitSelected,
	}
}

// Handle feeds one pointer sample through the state machine.
func (c *Controller) Handle(ev Event) Effects {
	next, fx := Step(c.layout, c.state, ev)
	c.state = next
	c.spring.Target = next.Angle
	if fx.Selected && c.onDigit != nil {
		c.onDigit(fx.Digit)
	}
	return fx
}

// Advance moves the presentation angle forward by dt.
func (c *Controller) Advance(dt time.Duration) {
	c.spring.Advance(dt)
}

// Resize recomputes the layout. Rotation is in degrees, so an engaged
// gesture survives.
func (c *Controller) Resize(size float64) {
	if size == c.layout.Size {
		return
	}
	c.layout = NewLayout(size)
}

func (c *Controller) State() State   { return c.state }
func (c *Controller) Layout() Layout { return c.layout }

// RenderAngle is the interpolated angle the dial should be drawn at.
func (c *Controller) RenderAngle() float64 { return c.spring.Value }

// Settled reports whether the dial is idle and drawn at rest.
func (c *Controller) Settled() bool {
	return !c.state.Active && c.spring.Settled() && c.spring.Value == 0
}
