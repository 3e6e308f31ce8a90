package eui

import (
	"image/color"
)

type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	cc := color.RGBA(c)
	return cc.RGBA()
}

// Align selects which end of a text run sits on the x coordinate passed to
// the text drawing calls.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font is a face request. Faces are resolved through the font cache so
// identical requests share one face chain.
type Font struct {
	Size float64
	Bold bool
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

type point struct {
	X, Y float32
}

// canvasState is the save/restore unit of a Canvas.
type canvasState struct {
	clip  rect
	tx    float64
	ty    float64
	font  Font
	align Align
}
