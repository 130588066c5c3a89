package dial

import "image/color"

// Surface is the host drawing target. Colors with A < 0xff are blended.
type Surface interface {
	FillCircle(c Circle, col color.RGBA)
	StrokeCircle(c Circle, width float64, col color.RGBA)
	// FillCirclesEvenOdd fills the union of cs under the even-odd rule, so a
	// circle nested in another punches a hole.
	FillCirclesEvenOdd(cs []Circle, col color.RGBA)
	FillPolygon(pts []Point, col color.RGBA)
	// Text draws s centered on center.
	Text(center Point, s string, col color.RGBA)
}

// Style is the dial palette.
type Style struct {
	Base      color.RGBA
	Cover     color.RGBA
	Frame     color.RGBA
	Dot       color.RGBA
	Glyph     color.RGBA
	Highlight color.RGBA
}

// DefaultStyle is the cream-and-bakelite look.
func DefaultStyle() Style {
	return Style{
		Base:      color.RGBA{R: 0xf5, G: 0xf2, B: 0xea, A: 0xff},
		Cover:     color.RGBA{R: 0x2b, G: 0x25, B: 0x22, A: 0xeb},
		Frame:     color.RGBA{R: 0xe5, G: 0xe0, B: 0xd5, A: 0xff},
		Dot:       color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
		Glyph:     color.RGBA{R: 0x1c, G: 0x1b, B: 0x1f, A: 0xff},
		Highlight: color.RGBA{R: 0xd9, G: 0x8c, B: 0x3f, A: 0xff},
	}
}

// Draw renders one frame of the dial turned by angle degrees. active is the
// engaged slot or -1.
//
// Order: base disk, rotated group (cover with finger holes, hub, dot ring,
// glyphs, active highlight), rim, stopper.
func Draw(s Surface, l Layout, angle float64, active int, st Style) {
	if s == nil || l.Size <= 0 {
		return
	}
	c := l.Center
	rot := func(p Point) Point { return Rotate(p, c, angle) }

	s.FillCircle(Circle{Center: c, Radius: l.Radius}, st.Base)

	cover := make([]Circle, 0, Digits+2)
	cover = append(cover, Circle{Center: c, Radius: l.Radius})
	for i := range l.Zones {
		cover = append(cover, Circle{Center: rot(l.Zones[i].Center), Radius: l.HoleRadius})
	}
	cover = append(cover, l.Hub)
	s.FillCirclesEvenOdd(cover, st.Cover)

	s.FillCircle(l.Hub, st.Frame)
	for _, d := range l.Dots {
		s.FillCircle(Circle{Center: rot(d.Center), Radius: d.Radius}, st.Dot)
	}
	for i := range l.Zones {
		s.Text(rot(l.Zones[i].Center), string(l.Zones[i].Glyph), st.Glyph)
	}
	if active >= 0 && active < Digits {
		hole := Circle{Center: rot(l.Zones[active].Center), Radius: l.HoleRadius}
		s.StrokeCircle(hole, l.RimWidth/2, st.Highlight)
	}

	s.StrokeCircle(Circle{Center: c, Radius: l.Radius}, l.RimWidth, st.Frame)
	s.FillPolygon(l.Stopper[:], st.Frame)
}

// Draw renders the controller's dial at its presentation angle.
func (c *Controller) Draw(s Surface, st Style) {
	Draw(s, c.layout, c.spring.Value, c.state.Digit(), st)
}
