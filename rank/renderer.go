package rank

import (
	"fmt"
	"image"
	"sync"
	"time"
)

const (
	defaultFontHeight = 16
	defaultLineHeight = 18
)

// Clipboard is the optional capability Export writes through.
type Clipboard interface {
	WriteText(text string) error
}

// Translator looks up user-facing strings. *gotext.Po satisfies it.
type Translator interface {
	Get(str string, vars ...interface{}) string
}

// Config configures a Renderer. Zero values pick the defaults.
type Config struct {
	Mode       DisplayMode
	Clipboard  Clipboard
	Translator Translator
	// FontHeight is the row pitch of the finish list.
	FontHeight float64
	// LineHeight is the row pitch of the team/MVP panel.
	LineHeight float64
}

// Renderer is the standings overlay. Render, Update and Wheel must be called
// from the host's game loop goroutine.
type Renderer struct {
	mode       DisplayMode
	clipboard  Clipboard
	translator Translator
	fontHeight float64
	lineHeight float64

	scroll scroller
	teams  []Team

	mu        sync.Mutex
	onMessage func(string)
	writes    sync.WaitGroup
}

func New(cfg Config) *Renderer {
	r := &Renderer{
		mode:       cfg.Mode,
		clipboard:  cfg.Clipboard,
		translator: cfg.Translator,
		fontHeight: cfg.FontHeight,
		lineHeight: cfg.LineHeight,
		scroll:     newScroller(),
	}
	if r.fontHeight <= 0 {
		r.fontHeight = defaultFontHeight
	}
	if r.lineHeight <= 0 {
		r.lineHeight = defaultLineHeight
	}
	return r
}

func (r *Renderer) Mode() DisplayMode { return r.mode }

// SetTeams replaces the roster. The caller keeps ownership and may replace
// it again between frames.
func (r *Renderer) SetTeams(teams []Team) {
	r.teams = teams
}

// OnMessage registers the sink for transient user notifications such as the
// export confirmation. The last registration wins; nil removes the sink.
func (r *Renderer) OnMessage(fn func(msg string)) {
	r.mu.Lock()
	r.onMessage = fn
	r.mu.Unlock()
}

// Update advances the scroll animation by the wall-clock time since the
// previous frame.
func (r *Renderer) Update(dt time.Duration) {
	r.scroll.update(dt)
}

// Wheel applies a wheel gesture in device delta units and suspends
// auto-follow for OverrideWindow.
func (r *Renderer) Wheel(deltaY float64) {
	r.scroll.wheel(deltaY)
}

// Scroll returns the current animator state.
func (r *Renderer) Scroll() ScrollState {
	return r.scroll.ScrollState
}

// BoundingBox reports the hit region for pointer events. The overlay has
// none; it only reacts to the wheel and double-click gestures.
func (r *Renderer) BoundingBox() (image.Rectangle, bool) {
	return image.Rectangle{}, false
}

// Wait blocks until in-flight clipboard writes have finished. Hosts call it
// before exiting so a late write still lands.
func (r *Renderer) Wait() {
	r.writes.Wait()
}

func (r *Renderer) notify(msg string) {
	r.mu.Lock()
	fn := r.onMessage
	r.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

func (r *Renderer) tr(str string, vars ...interface{}) string {
	if r.translator != nil {
		return r.translator.Get(str, vars...)
	}
	if len(vars) > 0 {
		return fmt.Sprintf(str, vars...)
	}
	return str
}
