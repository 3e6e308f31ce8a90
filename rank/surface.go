package rank

import (
	"image/color"

	"marblerank/eui"
)

// Surface is the immediate-mode 2D context Render draws onto. Text y
// coordinates are baselines. *eui.Canvas implements it over an ebiten image.
type Surface interface {
	Save()
	Restore()
	ClipRect(x, y, w, h float64)
	Translate(dx, dy float64)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	SetFont(f eui.Font)
	SetTextAlign(a eui.Align)
	FillText(s string, x, y float64, c color.Color)
	StrokeText(s string, x, y, lineWidth float64, c color.Color)
	MeasureText(s string) float64
}

var _ Surface = (*eui.Canvas)(nil)

// outlinedText strokes then fills s. A nil stroke draws fill only.
func outlinedText(s Surface, str string, x, y float64, fill, stroke color.Color, lineWidth float64) {
	if stroke != nil {
		s.StrokeText(str, x, y, lineWidth, stroke)
	}
	s.FillText(str, x, y, fill)
}
