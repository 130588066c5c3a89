//go:build cgo

package hal

import (
	"rotary/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Options
	// Scale is the initial window size as a multiple of the framebuffer.
	Scale int
	TPS   int
}

// RunWindow starts a desktop window that displays the framebuffer and
// forwards mouse, touch and keyboard input. It blocks until the window closes
// or the app's step returns an error.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	h := newHost(cfg.Options)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Rotary (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	err := ebiten.RunGame(g)
	if stopErr := h.aud.Stop(); err == nil {
		err = stopErr
	}
	return err
}

type hostGame struct {
	h        *hostHAL
	fbImg    *ebiten.Image
	scratch  []byte
	step     func() error
	contacts []contact
	touchIDs []ebiten.TouchID
}

func (g *hostGame) Update() error {
	g.pollKeyboard()
	g.pollPointer()
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// pollPointer reports the pressed mouse button first, then touches in the
// order ebiten lists them.
func (g *hostGame) pollPointer() {
	g.contacts = g.contacts[:0]
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.contacts = append(g.contacts, contact{x: x, y: y})
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.contacts = append(g.contacts, contact{touch: true, id: int(id), x: x, y: y})
	}
	g.h.ptr.update(g.contacts, ebiten.IsFocused())
}

func (g *hostGame) pollKeyboard() {
	kbd := g.h.kbd
	for _, r := range ebiten.AppendInputChars(nil) {
		kbd.emit(KeyEvent{Press: true, Rune: r})
	}
	keys := [...]struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyBackspace, KeyBackspace},
		{ebiten.KeyDelete, KeyDelete},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			kbd.emit(KeyEvent{Code: k.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(k.key) {
			kbd.emit(KeyEvent{Code: k.code, Press: false})
		}
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.scratch = make([]byte, fb.width*fb.height*4)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	fb.snapshotRGBA(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps the logical screen at framebuffer size so cursor and touch
// positions arrive in framebuffer pixels whatever the window size.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
