package eui

// namedColors holds colour names usable in palette files and ParseColor.
// LoadPalette adds the palette's own Colors table on top of the builtins.
var namedColors = map[string]Color{}

var builtinColors = map[string]Color{
	"white":       NewColor(255, 255, 255, 255),
	"black":       NewColor(0, 0, 0, 255),
	"transparent": NewColor(0, 0, 0, 0),
	"gold":        NewColor(0xff, 0xd7, 0x00, 0xff),
	"silver":      NewColor(0xc0, 0xc0, 0xc0, 0xff),
	"bronze":      NewColor(0xcd, 0x7f, 0x32, 0xff),
}

func init() {
	resetNamedColors()
}

func resetNamedColors() {
	namedColors = make(map[string]Color, len(builtinColors))
	for k, v := range builtinColors {
		namedColors[k] = v
	}
}
