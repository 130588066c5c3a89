package dial

import (
	"image/color"
	"math"
	"strings"
	"testing"
)

type drawOp struct {
	kind   string
	circle Circle
	text   string
	n      int
	col    color.RGBA
}

type recordSurface struct {
	ops []drawOp
}

func (r *recordSurface) FillCircle(c Circle, col color.RGBA) {
	r.ops = append(r.ops, drawOp{kind: "fill", circle: c, col: col})
}

func (r *recordSurface) StrokeCircle(c Circle, _ float64, col color.RGBA) {
	r.ops = append(r.ops, drawOp{kind: "stroke", circle: c, col: col})
}

func (r *recordSurface) FillCirclesEvenOdd(cs []Circle, col color.RGBA) {
	r.ops = append(r.ops, drawOp{kind: "evenodd", n: len(cs), col: col})
}

func (r *recordSurface) FillPolygon(pts []Point, col color.RGBA) {
	r.ops = append(r.ops, drawOp{kind: "poly", n: len(pts), col: col})
}

func (r *recordSurface) Text(center Point, s string, col color.RGBA) {
	r.ops = append(r.ops, drawOp{kind: "text", circle: Circle{Center: center}, text: s, col: col})
}

func (r *recordSurface) kinds() string {
	var b strings.Builder
	for i, op := range r.ops {
		if i > 0 && op.kind == r.ops[i-1].kind {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op.kind)
	}
	return b.String()
}

func TestDrawOrder(t *testing.T) {
	st := DefaultStyle()
	l := NewLayout(400)

	var idle recordSurface
	Draw(&idle, l, 0, -1, st)
	if got, want := idle.kinds(), "fill evenodd fill text stroke poly"; got != want {
		t.Fatalf("idle order = %q, want %q", got, want)
	}
	// base + hub + 12 dots, 10 glyphs, rim, stopper
	if len(idle.ops) != 1+1+1+12+10+1+1 {
		t.Fatalf("idle op count = %d", len(idle.ops))
	}
	if idle.ops[0].col != st.Base || idle.ops[1].n != Digits+2 {
		t.Fatalf("base/cover ops = %+v %+v", idle.ops[0], idle.ops[1])
	}

	var active recordSurface
	Draw(&active, l, 40, 3, st)
	if got, want := active.kinds(), "fill evenodd fill text stroke poly"; got != want {
		t.Fatalf("active order = %q, want %q", got, want)
	}
	n := len(active.ops)
	hl := active.ops[n-3]
	if hl.kind != "stroke" || hl.col != st.Highlight {
		t.Fatalf("highlight op = %+v", hl)
	}
	want := Rotate(l.Zones[3].Center, l.Center, 40)
	if math.Abs(hl.circle.Center.X-want.X) > 1e-9 || math.Abs(hl.circle.Center.Y-want.Y) > 1e-9 {
		t.Fatalf("highlight at %+v, want %+v", hl.circle.Center, want)
	}
	if rim := active.ops[n-2]; rim.kind != "stroke" || rim.col != st.Frame {
		t.Fatalf("rim op = %+v", rim)
	}
}

func TestDrawRotatesGlyphs(t *testing.T) {
	l := NewLayout(400)
	var rs recordSurface
	Draw(&rs, l, 90, -1, DefaultStyle())
	i := 0
	for _, op := range rs.ops {
		if op.kind != "text" {
			continue
		}
		if op.text != string(Glyphs[i]) {
			t.Fatalf("glyph %d = %q", i, op.text)
		}
		want := Rotate(l.Zones[i].Center, l.Center, 90)
		if math.Abs(op.circle.Center.X-want.X) > 1e-9 || math.Abs(op.circle.Center.Y-want.Y) > 1e-9 {
			t.Fatalf("glyph %d at %+v, want %+v", i, op.circle.Center, want)
		}
		i++
	}
	if i != Digits {
		t.Fatalf("drew %d glyphs", i)
	}
}

func TestDrawDegenerateIsEmpty(t *testing.T) {
	var rs recordSurface
	Draw(&rs, NewLayout(0), 0, -1, DefaultStyle())
	Draw(nil, NewLayout(400), 0, -1, DefaultStyle())
	if len(rs.ops) != 0 {
		t.Fatalf("drew %d ops for zero size", len(rs.ops))
	}
}

func TestControllerDrawUsesEngagedSlot(t *testing.T) {
	c := NewController(400, nil)
	c.Handle(Event{Phase: PhaseDown, Pos: c.Layout().Zones[6].Center})
	var rs recordSurface
	c.Draw(&rs, DefaultStyle())
	if hl := rs.ops[len(rs.ops)-3]; hl.col != DefaultStyle().Highlight {
		t.Fatalf("no highlight for engaged slot: %+v", hl)
	}
}
