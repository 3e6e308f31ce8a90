package eui

import "image/color"

func NewColor(r, g, b, a uint8) Color {
	return Color(color.RGBA{R: r, G: g, B: b, A: a})
}

// HSL returns the colour for hue h in degrees with saturation and lightness
// given in percent, the way CSS hsl() reads.
func HSL(h, saturation, lightness float64) Color {
	return Color(hslaToRGBA(h, saturation/100, lightness/100, 1))
}

// HueColor is a fully saturated HSL colour at the given lightness percent.
func HueColor(hue, lightness float64) Color {
	return HSL(hue, 100, lightness)
}

// ParseColor reads a colour string in any form UnmarshalJSON accepts.
func ParseColor(s string) (Color, error) {
	var c Color
	err := c.parseString(s)
	return c, err
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
