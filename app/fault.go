package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"rotary/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// PanicError is returned by a guarded step that panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("app: panic: %v", e.Value) }

// guard turns a panic inside step into a *PanicError, after logging the stack
// and painting it on the framebuffer so a window host shows what happened.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			pe := &PanicError{Value: v, Stack: debug.Stack()}
			reportPanic(h, pe)
			err = pe
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, pe *PanicError) {
	lines := []string{"Rotary panic:", fmt.Sprintf("panic: %v", pe.Value)}
	if len(pe.Stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(pe.Stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return
	}
	fb := disp.Framebuffer()
	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int(outboxWidth)
	fontHeight := int(font.YAdvance)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}
	cols := max(fb.Width()/fontWidth, 1)

	r := newRaster(fb)
	fg := color.RGBA{A: 255}
	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(r, font, 0, int16(y), chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
