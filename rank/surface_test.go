package rank

import (
	"image/color"

	"marblerank/eui"
)

// drawOp is one recorded draw call with coordinates already translated.
type drawOp struct {
	kind    string
	text    string
	x, y    float64
	w, h    float64
	font    eui.Font
	col     color.Color
	clipped bool
	clip    [4]float64
}

type recState struct {
	tx, ty  float64
	font    eui.Font
	align   eui.Align
	clipped bool
	clip    [4]float64
}

// recordSurface is a Surface that records instead of drawing. Text is
// measured at a fixed 7px per rune.
type recordSurface struct {
	ops   []drawOp
	cur   recState
	stack []recState
}

func (r *recordSurface) Save() { r.stack = append(r.stack, r.cur) }
func (r *recordSurface) Restore() {
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recordSurface) ClipRect(x, y, w, h float64) {
	c := [4]float64{x + r.cur.tx, y + r.cur.ty, x + w + r.cur.tx, y + h + r.cur.ty}
	if r.cur.clipped {
		c[0] = max(c[0], r.cur.clip[0])
		c[1] = max(c[1], r.cur.clip[1])
		c[2] = min(c[2], r.cur.clip[2])
		c[3] = min(c[3], r.cur.clip[3])
	}
	r.cur.clip = c
	r.cur.clipped = true
}

func (r *recordSurface) Translate(dx, dy float64)     { r.cur.tx += dx; r.cur.ty += dy }
func (r *recordSurface) SetFont(f eui.Font)           { r.cur.font = f }
func (r *recordSurface) SetTextAlign(a eui.Align)     { r.cur.align = a }
func (r *recordSurface) MeasureText(s string) float64 { return float64(len([]rune(s))) * 7 }

func (r *recordSurface) record(op drawOp) {
	op.x += r.cur.tx
	op.y += r.cur.ty
	op.font = r.cur.font
	op.clipped = r.cur.clipped
	op.clip = r.cur.clip
	r.ops = append(r.ops, op)
}

func (r *recordSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.record(drawOp{kind: "fillRect", x: x, y: y, w: w, h: h, col: c})
}

func (r *recordSurface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	r.record(drawOp{kind: "strokeRect", x: x, y: y, w: w, h: h, col: c})
}

func (r *recordSurface) FillText(s string, x, y float64, c color.Color) {
	r.record(drawOp{kind: "fillText", text: s, x: x, y: y, col: c})
}

func (r *recordSurface) StrokeText(s string, x, y, lineWidth float64, c color.Color) {
	r.record(drawOp{kind: "strokeText", text: s, x: x, y: y, col: c})
}

// texts returns the filled text runs in draw order.
func (r *recordSurface) texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.kind == "fillText" {
			out = append(out, op.text)
		}
	}
	return out
}

// find returns the first fill of text s.
func (r *recordSurface) find(s string) (drawOp, bool) {
	for _, op := range r.ops {
		if op.kind == "fillText" && op.text == s {
			return op, true
		}
	}
	return drawOp{}, false
}

func (r *recordSurface) rects(kind string, c color.Color) []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == kind && op.col == c {
			out = append(out, op)
		}
	}
	return out
}
