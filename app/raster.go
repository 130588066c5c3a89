package app

import (
	"image"
	"image/color"
	"math"
	"sort"

	"rotary/dial"
	"rotary/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ dial.Surface = (*raster)(nil)
var _ drivers.Displayer = (*raster)(nil)

// raster draws into an RGB565 framebuffer with alpha blending. As a
// dial.Surface it works in coordinates relative to origin; as a
// drivers.Displayer (for tinyfont) it works in framebuffer pixels.
type raster struct {
	fb     hal.Framebuffer
	origin dial.Point
	glyph  tinyfont.Fonter

	xs []float64
}

func newRaster(fb hal.Framebuffer) *raster {
	return &raster{fb: fb}
}

func (r *raster) Size() (x, y int16) {
	if r.fb == nil {
		return 0, 0
	}
	return int16(r.fb.Width()), int16(r.fb.Height())
}

func (r *raster) SetPixel(x, y int16, c color.RGBA) {
	r.blend(int(x), int(y), c)
}

func (r *raster) Display() error { return nil }

func (r *raster) blend(x, y int, c color.RGBA) {
	if r.fb == nil || r.fb.Format() != hal.PixelFormatRGB565 || c.A == 0 {
		return
	}
	if x < 0 || y < 0 || x >= r.fb.Width() || y >= r.fb.Height() {
		return
	}
	buf := r.fb.Buffer()
	off := y*r.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	rr, gg, bb := c.R, c.G, c.B
	if c.A != 0xFF {
		or, og, ob := hal.RGB888(uint16(buf[off]) | uint16(buf[off+1])<<8)
		rr = mix(or, c.R, c.A)
		gg = mix(og, c.G, c.A)
		bb = mix(ob, c.B, c.A)
	}
	p := hal.RGB565(rr, gg, bb)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func mix(dst, src, a uint8) uint8 {
	return uint8((uint32(src)*uint32(a) + uint32(dst)*(255-uint32(a)) + 127) / 255)
}

// span fills the pixels in row y whose centres lie in [x0, x1).
func (r *raster) span(y int, x0, x1 float64, c color.RGBA) {
	from := int(math.Ceil(x0 - 0.5))
	to := int(math.Ceil(x1 - 0.5))
	if from < 0 {
		from = 0
	}
	if w := r.fb.Width(); to > w {
		to = w
	}
	for x := from; x < to; x++ {
		r.blend(x, y, c)
	}
}

// fillCrossings fills row y between alternate sorted crossings, which is the
// even-odd rule.
func (r *raster) fillCrossings(y int, xs []float64, c color.RGBA) {
	sort.Float64s(xs)
	for i := 0; i+1 < len(xs); i += 2 {
		r.span(y, xs[i], xs[i+1], c)
	}
}

// rows returns the pixel rows whose centres may lie within [y0, y1].
func (r *raster) rows(y0, y1 float64) (from, to int) {
	from = int(math.Floor(y0))
	to = int(math.Ceil(y1))
	if from < 0 {
		from = 0
	}
	if h := r.fb.Height(); to > h {
		to = h
	}
	return from, to
}

func (r *raster) toFB(p dial.Point) dial.Point { return p.Add(r.origin) }

// chord returns the half-width of circle c at row centre py, or false.
func chord(c dial.Circle, py float64) (float64, bool) {
	dy := py - c.Center.Y
	d2 := c.Radius*c.Radius - dy*dy
	if d2 <= 0 {
		return 0, false
	}
	return math.Sqrt(d2), true
}

func (r *raster) FillCircle(c dial.Circle, col color.RGBA) {
	if r.fb == nil || !(c.Radius > 0) {
		return
	}
	c.Center = r.toFB(c.Center)
	from, to := r.rows(c.Center.Y-c.Radius, c.Center.Y+c.Radius)
	for y := from; y < to; y++ {
		if dx, ok := chord(c, float64(y)+0.5); ok {
			r.span(y, c.Center.X-dx, c.Center.X+dx, col)
		}
	}
}

func (r *raster) StrokeCircle(c dial.Circle, width float64, col color.RGBA) {
	if r.fb == nil || !(width > 0) || !(c.Radius > 0) {
		return
	}
	center := r.toFB(c.Center)
	outer := dial.Circle{Center: center, Radius: c.Radius + width/2}
	inner := dial.Circle{Center: center, Radius: math.Max(c.Radius-width/2, 0)}
	r.fillCirclesEvenOddFB([]dial.Circle{outer, inner}, col)
}

func (r *raster) FillCirclesEvenOdd(cs []dial.Circle, col color.RGBA) {
	if r.fb == nil || len(cs) == 0 {
		return
	}
	moved := make([]dial.Circle, len(cs))
	for i, c := range cs {
		moved[i] = dial.Circle{Center: r.toFB(c.Center), Radius: c.Radius}
	}
	r.fillCirclesEvenOddFB(moved, col)
}

// fillCirclesEvenOddFB is FillCirclesEvenOdd in framebuffer coordinates.
func (r *raster) fillCirclesEvenOddFB(cs []dial.Circle, col color.RGBA) {
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, c := range cs {
		top = math.Min(top, c.Center.Y-c.Radius)
		bottom = math.Max(bottom, c.Center.Y+c.Radius)
	}
	if !(top < bottom) {
		return
	}
	from, to := r.rows(top, bottom)
	for y := from; y < to; y++ {
		xs := r.xs[:0]
		py := float64(y) + 0.5
		for _, c := range cs {
			if dx, ok := chord(c, py); ok {
				xs = append(xs, c.Center.X-dx, c.Center.X+dx)
			}
		}
		r.fillCrossings(y, xs, col)
		r.xs = xs
	}
}

func (r *raster) FillPolygon(pts []dial.Point, col color.RGBA) {
	if r.fb == nil || len(pts) < 3 {
		return
	}
	top, bottom := math.Inf(1), math.Inf(-1)
	moved := make([]dial.Point, len(pts))
	for i, p := range pts {
		moved[i] = r.toFB(p)
		top = math.Min(top, moved[i].Y)
		bottom = math.Max(bottom, moved[i].Y)
	}
	from, to := r.rows(top, bottom)
	for y := from; y < to; y++ {
		xs := r.xs[:0]
		py := float64(y) + 0.5
		for i, a := range moved {
			b := moved[(i+1)%len(moved)]
			if (a.Y <= py) == (b.Y <= py) {
				continue
			}
			xs = append(xs, a.X+(py-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		r.fillCrossings(y, xs, col)
		r.xs = xs
	}
}

// Text centres s on center using the glyph font.
func (r *raster) Text(center dial.Point, s string, col color.RGBA) {
	if r.glyph == nil || s == "" {
		return
	}
	c := r.toFB(center)
	r.textCentered(r.glyph, int(math.Round(c.X)), int(math.Round(c.Y)), s, col)
}

// textCentered draws s with its ink box centred on (cx, cy).
func (r *raster) textCentered(font tinyfont.Fonter, cx, cy int, s string, col color.RGBA) {
	_, w := tinyfont.LineWidth(font, s)
	info := font.GetGlyph([]rune(s)[0]).Info()
	baseline := cy - (int(info.YOffset) + int(info.Height)/2)
	tinyfont.WriteLine(r, font, int16(cx-int(w)/2), int16(baseline), s, col)
}

// textLeft draws s starting at x, vertically centred in [y0, y1).
func (r *raster) textLeft(font tinyfont.Fonter, x, y0, y1 int, s string, col color.RGBA) {
	if s == "" {
		return
	}
	info := font.GetGlyph('0').Info()
	baseline := (y0+y1)/2 - (int(info.YOffset) + int(info.Height)/2)
	tinyfont.WriteLine(r, font, int16(x), int16(baseline), s, col)
}

func (r *raster) fillRect(rc image.Rectangle, col color.RGBA) {
	if r.fb == nil {
		return
	}
	rc = rc.Intersect(image.Rect(0, 0, r.fb.Width(), r.fb.Height()))
	for y := rc.Min.Y; y < rc.Max.Y; y++ {
		for x := rc.Min.X; x < rc.Max.X; x++ {
			r.blend(x, y, col)
		}
	}
}
