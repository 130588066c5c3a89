package hal

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{0xFF, 0xFF, 0xFF},
		{0xF5, 0xF2, 0xEA},
		{0x2B, 0x25, 0x22},
	}
	for _, tt := range tests {
		r, g, b := RGB888(RGB565(tt.r, tt.g, tt.b))
		if absDiff(r, tt.r) > 8 || absDiff(g, tt.g) > 4 || absDiff(b, tt.b) > 8 {
			t.Errorf("%02x%02x%02x -> %02x%02x%02x", tt.r, tt.g, tt.b, r, g, b)
		}
	}
	if RGB565(0xFF, 0xFF, 0xFF) != 0xFFFF {
		t.Fatal("white is not 0xFFFF")
	}
}

func TestFramebufferSnapshot(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0xFF, 0, 0)
	dst := make([]byte, 3*2*4)
	fb.snapshotRGBA(dst)
	for i := 0; i < len(dst); i += 4 {
		if dst[i] != 0xFF || dst[i+1] != 0 || dst[i+2] != 0 || dst[i+3] != 0xFF {
			t.Fatalf("pixel %d = %v", i/4, dst[i:i+4])
		}
	}
	if fb.pixelAt(2, 1) != RGB565(0xFF, 0, 0) || fb.pixelAt(3, 0) != 0 {
		t.Fatal("pixelAt")
	}
}

func TestHostTimeTicksPerMillisecond(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTimeWithClock(func() time.Time { return now })

	ht.step(1)
	now = now.Add(16*time.Millisecond + 500*time.Microsecond)
	ht.step(1)
	now = now.Add(600 * time.Microsecond)
	ht.step(1)

	var last uint64
	n := 0
	for len(ht.ch) > 0 {
		last = <-ht.ch
		n++
	}
	if n != 18 || last != 18 {
		t.Fatalf("got %d ticks ending at %d, want 18", n, last)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := New(Options{Log: &buf})
	h.Logger().WriteLineString("dial: ready")
	h.Logger().WriteLineBytes([]byte("dial: 5"))
	if got := buf.String(); got != "dial: ready\ndial: 5\n" {
		t.Fatalf("log = %q", got)
	}
	fb := h.Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("default size %dx%d", fb.Width(), fb.Height())
	}
	if h.Audio().Play([]int16{1}) {
		t.Fatal("audio without backend accepted a clip")
	}
}

func TestCellGrid(t *testing.T) {
	tests := []struct {
		fbW, fbH, cols, rows int
		scale                int
	}{
		{320, 400, 80, 24, 9},
		{320, 400, 320, 200, 1},
		{320, 400, 1000, 1000, 1},
		{320, 400, 0, 24, 0},
	}
	for _, tt := range tests {
		g := newCellGrid(tt.fbW, tt.fbH, tt.cols, tt.rows)
		if g.scale != tt.scale {
			t.Errorf("newCellGrid(%d,%d,%d,%d).scale = %d, want %d", tt.fbW, tt.fbH, tt.cols, tt.rows, g.scale, tt.scale)
		}
	}
	g := cellGrid{scale: 4}
	if x, y := g.pixel(2, 3); x != 10 || y != 28 {
		t.Fatalf("pixel(2,3) = %d,%d", x, y)
	}
}

func TestTermModelMouseDrag(t *testing.T) {
	h := newHost(Options{Width: 40, Height: 40})
	m := newTermModel(h, nil, time.Millisecond)
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 11})

	m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.BlurMsg{})

	want := []PointerEvent{{PointerDown, 3, 6}, {PointerMove, 7, 6}, {PointerCancel, 7, 6}}
	for i, w := range want {
		select {
		case ev := <-h.ptr.ch:
			if ev != w {
				t.Fatalf("event %d = %v, want %v", i, ev, w)
			}
		default:
			t.Fatalf("event %d missing", i)
		}
	}
}

func TestTermModelKeys(t *testing.T) {
	h := newHost(Options{})
	m := newTermModel(h, nil, time.Millisecond)
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Fatal("q did not quit")
	}

	if ev := <-h.kbd.ch; ev.Code != KeyBackspace {
		t.Fatalf("first key = %+v", ev)
	}
	if ev := <-h.kbd.ch; ev.Rune != 'c' {
		t.Fatalf("second key = %+v", ev)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
