package app

import "image"

const (
	headerHeight = 32
	footerHeight = 44
	buttonInset  = 8
)

// screen splits the framebuffer into the number readout, the dial square
// and the clear button.
type screen struct {
	w, h   int
	header image.Rectangle
	dial   image.Rectangle
	clear  image.Rectangle
}

func newScreen(w, h int) screen {
	s := screen{w: w, h: h}
	if w <= 0 || h <= 0 {
		return s
	}
	s.header = image.Rect(0, 0, w, min(headerHeight, h))

	footerTop := max(h-footerHeight, s.header.Max.Y)
	s.clear = image.Rect(buttonInset, footerTop+buttonInset/2, w-buttonInset, h-buttonInset/2)
	if s.clear.Empty() {
		s.clear = image.Rectangle{}
	}

	avail := footerTop - s.header.Max.Y
	side := max(min(w, avail), 0)
	x0 := (w - side) / 2
	y0 := s.header.Max.Y + (avail-side)/2
	s.dial = image.Rect(x0, y0, x0+side, y0+side)
	return s
}
