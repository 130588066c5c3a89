package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"rotary/dial"
	"rotary/hal"
	"rotary/pulse"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// ErrDone is returned by the step once a scripted number has been dialed
// and the dial is back at rest, when Config.ExitWhenDone is set.
var ErrDone = errors.New("app: scripted dialing finished")

// maxFrame caps the animation step after a stall.
const maxFrame = 100 * time.Millisecond

const readoutLabel = "Phone number: "

type Config struct {
	// Dial is a number to enter with synthetic drags after start. Characters
	// that are not on the dial are skipped.
	Dial         string
	ExitWhenDone bool
	// Audio plays the pulse train of every dialed digit.
	Audio bool
	Style dial.Style
}

// App is the phone shell around one dial: a number readout above it and a
// clear button below.
type App struct {
	h     hal.HAL
	log   hal.Logger
	fb    hal.Framebuffer
	cfg   Config
	style dial.Style

	ctrl   *dial.Controller
	ras    *raster
	screen screen

	number []rune
	script *autodialer
	audio  bool

	lastTick   uint64
	clearArmed bool
	dirty      bool
}

func New(h hal.HAL, cfg Config) *App {
	a := &App{
		h:     h,
		log:   h.Logger(),
		cfg:   cfg,
		style: cfg.Style,
		dirty: true,
	}
	if a.style == (dial.Style{}) {
		a.style = dial.DefaultStyle()
	}
	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	a.ras = newRaster(a.fb)
	a.ctrl = dial.NewController(0, a.onDigit)
	a.layout()

	if cfg.Dial != "" {
		a.script = newAutodialer(cfg.Dial)
	}
	if cfg.Audio {
		if aud := h.Audio(); aud != nil {
			if err := aud.Start(pulse.DefaultSampleRate); err != nil {
				a.logf("dial: audio disabled: %v", err)
			} else {
				a.audio = true
			}
		}
	}
	a.logf("dial: ready %dx%d", a.screen.dial.Dx(), a.screen.dial.Dy())
	return a
}

// NewWithConfig returns the app's per-frame step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return guard(h, New(h, cfg).Step)
}

// Number returns the digits dialed so far.
func (a *App) Number() string { return string(a.number) }

// Clear empties the readout.
func (a *App) Clear() {
	if len(a.number) == 0 {
		return
	}
	a.number = a.number[:0]
	a.dirty = true
	a.logf("dial: cleared")
}

// Step drains input, advances the animation by the elapsed ticks and
// redraws when anything changed.
func (a *App) Step() error {
	if a.fb != nil && (a.fb.Width() != a.screen.w || a.fb.Height() != a.screen.h) {
		a.layout()
	}

	dt := a.drainTicks()
	a.drainKeys()
	a.drainPointer()
	if a.script != nil {
		if ev, ok := a.script.next(a.ctrl); ok {
			a.handle(ev)
		}
	}

	animating := !a.ctrl.Settled()
	a.ctrl.Advance(dt)
	if a.fb != nil && (a.dirty || animating) {
		a.render()
		a.dirty = false
		if err := a.fb.Present(); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}

	if a.cfg.ExitWhenDone && a.script != nil && a.script.done() && a.ctrl.Settled() {
		return ErrDone
	}
	return nil
}

func (a *App) layout() {
	if a.fb == nil {
		return
	}
	a.screen = newScreen(a.fb.Width(), a.fb.Height())
	side := a.screen.dial.Dx()
	a.ras.origin = dial.Pt(float64(a.screen.dial.Min.X), float64(a.screen.dial.Min.Y))
	a.ras.glyph = glyphFont(side)
	a.ctrl.Resize(float64(side))
	a.dirty = true
}

func glyphFont(side int) tinyfont.Fonter {
	switch {
	case side >= 360:
		return &freesans.Bold18pt7b
	case side >= 200:
		return &freesans.Bold12pt7b
	default:
		return &proggy.TinySZ8pt7b
	}
}

func (a *App) drainTicks() time.Duration {
	t := a.h.Time()
	if t == nil {
		return 0
	}
	ch := t.Ticks()
	var n uint64
	for {
		select {
		case seq := <-ch:
			if seq > a.lastTick {
				n += seq - a.lastTick
				a.lastTick = seq
			}
		default:
			return min(time.Duration(n)*time.Millisecond, maxFrame)
		}
	}
}

func (a *App) drainKeys() {
	in := a.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyBackspace, ev.Code == hal.KeyEscape, ev.Code == hal.KeyDelete:
				a.Clear()
			case ev.Rune == 'c', ev.Rune == 'C':
				a.Clear()
			}
		default:
			return
		}
	}
}

func (a *App) drainPointer() {
	in := a.h.Input()
	if in == nil || in.Pointer() == nil {
		return
	}
	ch := in.Pointer().Events()
	for {
		select {
		case ev := <-ch:
			a.pointer(ev)
		default:
			return
		}
	}
}

// pointer routes one host sample to the clear button or the dial. Samples
// are dropped while a scripted drag owns the dial.
func (a *App) pointer(ev hal.PointerEvent) {
	if a.script != nil && a.script.busy() {
		return
	}
	inClear := ev.X >= a.screen.clear.Min.X && ev.X < a.screen.clear.Max.X &&
		ev.Y >= a.screen.clear.Min.Y && ev.Y < a.screen.clear.Max.Y

	if a.clearArmed {
		switch ev.Phase {
		case hal.PointerUp:
			a.clearArmed = false
			a.dirty = true
			if inClear {
				a.Clear()
			}
		case hal.PointerCancel:
			a.clearArmed = false
			a.dirty = true
		}
		return
	}
	if ev.Phase == hal.PointerDown && inClear && !a.ctrl.State().Active {
		a.clearArmed = true
		a.dirty = true
		return
	}

	var phase dial.Phase
	switch ev.Phase {
	case hal.PointerDown:
		phase = dial.PhaseDown
	case hal.PointerMove:
		phase = dial.PhaseMove
	case hal.PointerUp:
		phase = dial.PhaseUp
	case hal.PointerCancel:
		phase = dial.PhaseCancel
	default:
		return
	}
	// Sample at the pixel centre, relative to the dial square.
	pos := dial.Pt(float64(ev.X-a.screen.dial.Min.X)+0.5, float64(ev.Y-a.screen.dial.Min.Y)+0.5)
	a.handle(dial.Event{Phase: phase, Pos: pos})
}

func (a *App) handle(ev dial.Event) {
	fx := a.ctrl.Handle(ev)
	if fx.Engaged {
		s := a.ctrl.State()
		a.logf("dial: engaged slot=%d digit=%c", s.Slot, dial.Glyphs[s.Slot])
	}
	if fx.Engaged || fx.Reset {
		a.dirty = true
	}
}

func (a *App) onDigit(d rune) {
	a.number = append(a.number, d)
	a.dirty = true
	a.logf("dial: selected %c number=%s", d, string(a.number))
	if a.audio {
		if !a.h.Audio().Play(pulse.Train(d, pulse.DefaultSampleRate)) {
			a.logf("dial: audio queue full, dropped %c", d)
		}
	}
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

var (
	pageColor  = color.RGBA{R: 0xfa, G: 0xf8, B: 0xf3, A: 0xff}
	inkColor   = color.RGBA{R: 0x2b, G: 0x25, B: 0x22, A: 0xff}
	mutedColor = color.RGBA{R: 0x9a, G: 0x94, B: 0x8a, A: 0xff}
)

func (a *App) render() {
	a.fb.ClearRGB(pageColor.R, pageColor.G, pageColor.B)
	a.drawReadout()
	a.ctrl.Draw(a.ras, a.style)
	a.drawClear()
}

func (a *App) drawReadout() {
	hd := a.screen.header
	if hd.Empty() {
		return
	}
	font := &freesans.Bold9pt7b
	text := readoutLabel + string(a.number)
	// Keep the most recent digits visible.
	limit := uint32(max(hd.Dx()-2*buttonInset, 0))
	for digits := a.number; ; {
		if _, w := tinyfont.LineWidth(font, text); w <= limit || len(digits) == 0 {
			break
		}
		digits = digits[1:]
		text = readoutLabel + ".." + string(digits)
	}
	a.ras.textLeft(font, hd.Min.X+buttonInset, hd.Min.Y, hd.Max.Y, text, inkColor)
}

func (a *App) drawClear() {
	rc := a.screen.clear
	if rc.Empty() {
		return
	}
	bg, fg := a.style.Cover, a.style.Base
	switch {
	case a.clearArmed:
		bg = a.style.Highlight
	case len(a.number) == 0:
		bg, fg = a.style.Frame, mutedColor
	}
	bg.A = 0xff
	a.ras.fillRect(rc, bg)
	c := rc.Min.Add(rc.Max).Div(2)
	a.ras.textCentered(&proggy.TinySZ8pt7b, c.X, c.Y, "Clear phone number", fg)
}
