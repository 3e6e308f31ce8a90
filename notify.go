package main

import (
	"os"
	"runtime"
	"sync"
	"time"

	"marblerank/eui"

	"github.com/gen2brain/beeep"
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
func notifyDesktop(title, body string) {
	if body == "" {
		return
	}
	// Skip on headless Linux without DISPLAY; beeep would error.
	if runtime.GOOS == "linux" && (os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "") {
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		logDebug("desktop notify: %v", err)
	}
}

const (
	toastLife = 2500 * time.Millisecond
	toastFade = 400 * time.Millisecond
	maxToasts = 3

	toastMargin  = 12
	toastPadding = 8
	toastPitch   = 30
)

var toastFont = eui.Font{Size: 14, Bold: true}

type toast struct {
	text  string
	until time.Time
}

// toasts is the in-window message stack. push may be called from any
// goroutine.
type toasts struct {
	mu   sync.Mutex
	list []toast
}

func (t *toasts) push(msg string, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.list = append(t.list, toast{text: msg, until: now.Add(toastLife)})
	if len(t.list) > maxToasts {
		t.list = t.list[len(t.list)-maxToasts:]
	}
}

// active drops expired toasts and returns the rest, oldest first.
func (t *toasts) active(now time.Time) []toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	keep := t.list[:0]
	for _, ts := range t.list {
		if now.Before(ts.until) {
			keep = append(keep, ts)
		}
	}
	t.list = keep
	return append([]toast(nil), keep...)
}

// toastAlpha fades a toast out over its last toastFade.
func toastAlpha(ts toast, now time.Time) float64 {
	left := ts.until.Sub(now)
	switch {
	case left <= 0:
		return 0
	case left >= toastFade:
		return 1
	}
	return float64(left) / float64(toastFade)
}

func fade(c eui.Color, a float64) eui.Color {
	c.A = uint8(float64(c.A) * a)
	return c
}

// draw stacks the toasts bottom-left, newest at the bottom.
func (t *toasts) draw(c *eui.Canvas, pal *eui.Palette, height float64, now time.Time) {
	list := t.active(now)
	c.Save()
	defer c.Restore()
	c.SetFont(toastFont)
	c.SetTextAlign(eui.AlignLeft)
	for i, ts := range list {
		a := toastAlpha(ts, now)
		y := height - toastMargin - float64(len(list)-i)*toastPitch
		w := c.MeasureText(ts.text) + 2*toastPadding
		c.FillRect(toastMargin, y, w, toastPitch-4, fade(pal.Toast, a))
		c.FillText(ts.text, toastMargin+toastPadding, y+toastPitch-12, fade(pal.Text, a))
	}
}
