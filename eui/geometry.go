package eui

import (
	"image"
	"math"
)

// getRectangle converts a rect to the standard image.Rectangle type.
func (r rect) getRectangle() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: int(math.Floor(float64(r.X0))), Y: int(math.Floor(float64(r.Y0)))},
		Max: image.Point{X: int(math.Ceil(float64(r.X1))), Y: int(math.Ceil(float64(r.Y1)))},
	}
}

func (r rect) empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

func rectFromImage(r image.Rectangle) rect {
	return rect{X0: float32(r.Min.X), Y0: float32(r.Min.Y), X1: float32(r.Max.X), Y1: float32(r.Max.Y)}
}

func rectAdd(r rect, p point) rect {
	return rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 + p.X, Y1: r.Y1 + p.Y}
}

// intersectRect returns the overlapping area of a and b.
// If there is no overlap, an empty rectangle is returned.
func intersectRect(a, b rect) rect {
	if a.X0 < b.X0 {
		a.X0 = b.X0
	}
	if a.Y0 < b.Y0 {
		a.Y0 = b.Y0
	}
	if a.X1 > b.X1 {
		a.X1 = b.X1
	}
	if a.Y1 > b.Y1 {
		a.Y1 = b.Y1
	}
	if a.empty() {
		return rect{}
	}
	return a
}

func pointDist2(a, b point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
