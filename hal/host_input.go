package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type hostPointer struct {
	ch chan PointerEvent
	tr pointerTracker
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 256)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// update feeds one poll of the host's contacts through the tracker.
func (p *hostPointer) update(contacts []contact, focused bool) {
	for _, ev := range p.tr.update(contacts, focused) {
		select {
		case p.ch <- ev:
		default:
			// Full channel means the app is not stepping; a dropped Move is
			// harmless and the next one carries the latest position.
		}
	}
}

// contact is one pressed mouse button or touch point, as polled.
type contact struct {
	touch bool
	id    int
	x, y  int
}

// pointerTracker turns polled contact sets into a single-pointer event
// stream. The first contact to appear is tracked until it disappears; any
// others are ignored meanwhile.
type pointerTracker struct {
	active bool
	cur    contact
}

func (t *pointerTracker) update(contacts []contact, focused bool) []PointerEvent {
	if t.active {
		if !focused {
			t.active = false
			return []PointerEvent{{Phase: PointerCancel, X: t.cur.x, Y: t.cur.y}}
		}
		for _, c := range contacts {
			if c.touch != t.cur.touch || c.id != t.cur.id {
				continue
			}
			if c.x == t.cur.x && c.y == t.cur.y {
				return nil
			}
			t.cur = c
			return []PointerEvent{{Phase: PointerMove, X: c.x, Y: c.y}}
		}
		t.active = false
		return []PointerEvent{{Phase: PointerUp, X: t.cur.x, Y: t.cur.y}}
	}
	if !focused || len(contacts) == 0 {
		return nil
	}
	t.active = true
	t.cur = contacts[0]
	return []PointerEvent{{Phase: PointerDown, X: t.cur.x, Y: t.cur.y}}
}
