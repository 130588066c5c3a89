package app

import "rotary/dial"

// scriptStep is how far a scripted drag turns per frame, in degrees.
const scriptStep = 6

// autodialer enters a number by replaying the drag a person would make:
// press in the digit's hole, turn clockwise to the stopper in even steps and
// release. Each gesture starts only once the dial is back at rest.
type autodialer struct {
	digits []rune
	queue  []dial.Event
	step   float64
}

func newAutodialer(number string) *autodialer {
	s := &autodialer{step: scriptStep}
	for _, r := range number {
		if dial.SlotOf(r) >= 0 {
			s.digits = append(s.digits, r)
		}
	}
	return s
}

func (s *autodialer) done() bool { return len(s.digits) == 0 && len(s.queue) == 0 }

// busy reports whether a scripted gesture is in progress.
func (s *autodialer) busy() bool { return len(s.queue) > 0 }

// next returns the event to feed this frame, if any.
func (s *autodialer) next(c *dial.Controller) (dial.Event, bool) {
	if len(s.queue) == 0 {
		if len(s.digits) == 0 || !c.Settled() {
			return dial.Event{}, false
		}
		s.queue = gesture(c.Layout(), s.digits[0], s.step)
		s.digits = s.digits[1:]
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

// gesture builds the full drag for digit on a resting dial.
func gesture(l dial.Layout, digit rune, step float64) []dial.Event {
	slot := dial.SlotOf(digit)
	if slot < 0 || !(step > 0) {
		return nil
	}
	z := l.Zones[slot]
	evs := []dial.Event{{Phase: dial.PhaseDown, Pos: z.Center}}
	pos := z.Center
	for a := step; ; a += step {
		if a > z.Ceiling {
			a = z.Ceiling
		}
		pos = dial.Rotate(z.Center, l.Center, a)
		evs = append(evs, dial.Event{Phase: dial.PhaseMove, Pos: pos})
		if a >= z.Ceiling {
			break
		}
	}
	return append(evs, dial.Event{Phase: dial.PhaseUp, Pos: pos})
}
