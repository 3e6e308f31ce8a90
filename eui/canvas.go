package eui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Canvas is an immediate-mode drawing context over an *ebiten.Image. It keeps
// a save/restore stack of clip, translation, font and alignment. Text y
// coordinates are baselines.
type Canvas struct {
	dst   *ebiten.Image
	cur   canvasState
	stack []canvasState
}

// outlineOffsets are the eight directions text is stamped in to fake a
// stroke, scaled by half the line width.
var outlineOffsets = [...]struct{ X, Y float64 }{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func NewCanvas(dst *ebiten.Image) *Canvas {
	c := &Canvas{}
	c.Reset(dst)
	return c
}

// Reset retargets the canvas at dst and drops all saved state. Hosts call it
// once per frame with the screen image.
func (c *Canvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	var b rect
	if dst != nil {
		b = rectFromImage(dst.Bounds())
	}
	c.resetState(b)
}

func (c *Canvas) resetState(bounds rect) {
	c.cur = canvasState{clip: bounds, font: Font{Size: 12}, align: AlignLeft}
	c.stack = c.stack[:0]
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.cur = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.cur.tx += dx
	c.cur.ty += dy
}

// ClipRect narrows the clip to the given rectangle in the current
// coordinate space. Clips only ever shrink until Restore.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	r := rect{X0: float32(x), Y0: float32(y), X1: float32(x + w), Y1: float32(y + h)}
	r = rectAdd(r, point{X: float32(c.cur.tx), Y: float32(c.cur.ty)})
	c.cur.clip = intersectRect(c.cur.clip, r)
}

func (c *Canvas) SetFont(f Font) { c.cur.font = f }

func (c *Canvas) SetTextAlign(a Align) { c.cur.align = a }

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	dst := c.target()
	if dst == nil {
		return
	}
	drawFilledRect(dst, float32(x+c.cur.tx), float32(y+c.cur.ty), float32(w), float32(h), col, true)
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col color.Color) {
	dst := c.target()
	if dst == nil {
		return
	}
	strokeRect(dst, float32(x+c.cur.tx), float32(y+c.cur.ty), float32(w), float32(h), float32(lineWidth), col, true)
}

func (c *Canvas) FillText(s string, x, y float64, col color.Color) {
	c.drawText(s, x, y, col)
}

func (c *Canvas) StrokeText(s string, x, y, lineWidth float64, col color.Color) {
	r := lineWidth / 2
	for _, o := range outlineOffsets {
		c.drawText(s, x+o.X*r, y+o.Y*r, col)
	}
}

func (c *Canvas) MeasureText(s string) float64 {
	return measureWidth(s, c.cur.font)
}

// target is the destination clipped to the current clip, or nil when the
// clip is empty.
func (c *Canvas) target() *ebiten.Image {
	if c.dst == nil || c.cur.clip.empty() {
		return nil
	}
	return c.dst.SubImage(c.cur.clip.getRectangle()).(*ebiten.Image)
}

func (c *Canvas) drawText(s string, x, y float64, col color.Color) {
	if s == "" {
		return
	}
	face := FaceFor(c.cur.font)
	if face == nil {
		return
	}
	dst := c.target()
	if dst == nil {
		return
	}
	op := acquireTextDrawOptions()
	op.GeoM.Translate(x+c.cur.tx, y+c.cur.ty-ascent(c.cur.font))
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = primaryAlign(c.cur.align)
	text.Draw(dst, DisplayText(s), face, op)
}
