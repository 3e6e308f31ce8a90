package eui

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

var (
	isWasm         = runtime.GOOS == "js" && runtime.GOARCH == "wasm"
	touchScrolling bool
	prevTouchAvg   = point{}
	wheelLimiter   = rate.NewLimiter(rate.Every(125*time.Millisecond), 1)
)

const touchScrollScale = 0.05

const (
	// DefaultWheelStep is the browser-style delta reported per wheel notch.
	DefaultWheelStep = 100
	// DefaultDoubleClickWindow is the longest gap between the two clicks of
	// a double click.
	DefaultDoubleClickWindow = 400 * time.Millisecond
	// DefaultDoubleClickSlop is how far in pixels the pointer may travel
	// between the two clicks.
	DefaultDoubleClickSlop = 6
)

// PointerPosition returns the current pointer position in screen pixels.
// If a touch is active, the first touch is used; otherwise the mouse cursor
// position is returned.
func PointerPosition() (int, int) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		return ebiten.TouchPosition(ids[0])
	}
	return ebiten.CursorPosition()
}

// pointerWheel returns the wheel delta for mouse or two-finger touch scrolling.
func pointerWheel() (float64, float64) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) >= 2 {
		// Average the first two touches to emulate wheel scrolling.
		x0, y0 := ebiten.TouchPosition(ids[0])
		x1, y1 := ebiten.TouchPosition(ids[1])
		avgX := float64(x0+x1) / 2
		avgY := float64(y0+y1) / 2

		if !touchScrolling {
			touchScrolling = true
			prevTouchAvg = point{X: float32(avgX), Y: float32(avgY)}
			return 0, 0
		}

		// Dragging two fingers up moves content up, like a mouse wheel.
		dx := (avgX - float64(prevTouchAvg.X)) * touchScrollScale
		dy := (avgY - float64(prevTouchAvg.Y)) * touchScrollScale
		prevTouchAvg = point{X: float32(avgX), Y: float32(avgY)}
		return dx, dy
	}

	touchScrolling = false

	wx, wy := ebiten.Wheel()
	if isWasm {
		if !wheelLimiter.Allow() {
			return 0, 0
		}

		// Limit scroll events to +/-3 for a consistent feel in browsers
		if wy > 0 {
			wy = 3
		} else if wy < 0 {
			wy = -3
		}
	}
	return wx, wy
}

// pointerJustPressed reports whether the primary pointer was just pressed.
func pointerJustPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		return false
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

// Gestures turns raw pointer input into the two gestures the overlay reacts
// to: wheel scrolling and double click or double tap. The zero value uses the
// Default* settings.
type Gestures struct {
	WheelStep         float64
	DoubleClickWindow time.Duration
	DoubleClickSlop   float32

	lastClick time.Time
	lastPos   point
	armed     bool
}

// Wheel returns this frame's vertical wheel movement in browser deltaY
// units: positive moves further down the list.
func (g *Gestures) Wheel() float64 {
	_, wy := pointerWheel()
	return g.wheelDelta(wy)
}

func (g *Gestures) wheelDelta(wy float64) float64 {
	if wy == 0 {
		return 0
	}
	step := g.WheelStep
	if step <= 0 {
		step = DefaultWheelStep
	}
	// ebiten reports wheel-up as positive; browsers report scrolling down as
	// positive deltaY.
	return -wy * step
}

// DoubleClicked reports whether the primary pointer completed a double
// click or double tap this frame.
func (g *Gestures) DoubleClicked(now time.Time) bool {
	if !pointerJustPressed() {
		return false
	}
	x, y := PointerPosition()
	return g.click(now, point{X: float32(x), Y: float32(y)})
}

// click records a press and reports whether it completes a double click.
// A completed double click disarms, so a triple click is one double click.
func (g *Gestures) click(now time.Time, pos point) bool {
	window := g.DoubleClickWindow
	if window <= 0 {
		window = DefaultDoubleClickWindow
	}
	slop := g.DoubleClickSlop
	if slop <= 0 {
		slop = DefaultDoubleClickSlop
	}
	if g.armed && now.Sub(g.lastClick) <= window && pointDist2(pos, g.lastPos) <= slop*slop {
		g.armed = false
		return true
	}
	g.armed = true
	g.lastClick = now
	g.lastPos = pos
	return false
}
