// Package sysclip writes text to the system clipboard. It prefers the
// native golang.design backend and falls back to the command-line helpers
// atotto/clipboard drives (xclip, xsel, wl-copy, pbcopy).
package sysclip

import (
	"errors"
	"fmt"
	"sync"
	"time"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
	"golang.org/x/time/rate"
)

var (
	// ErrUnavailable means no clipboard backend could be opened.
	ErrUnavailable = errors.New("sysclip: no clipboard available")
	// ErrThrottled rejects writes that arrive faster than WriteInterval.
	ErrThrottled = errors.New("sysclip: write throttled")
)

// WriteInterval is the steady rate writes are allowed at. Two writes may
// land back to back.
const WriteInterval = 500 * time.Millisecond

type backend interface {
	write(text string) error
	name() string
}

type nativeBackend struct{}

func (nativeBackend) write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (nativeBackend) name() string { return "native" }

type commandBackend struct{}

func (commandBackend) write(text string) error { return atotto.WriteAll(text) }
func (commandBackend) name() string            { return "command" }

// Writer is a throttled clipboard writer safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	b       backend
	limiter *rate.Limiter
}

var (
	openOnce sync.Once
	opened   *Writer
	openErr  error
)

// Open returns the process clipboard writer. The backend is probed once.
func Open() (*Writer, error) {
	openOnce.Do(func() {
		b, err := probe()
		if err != nil {
			openErr = err
			return
		}
		opened = newWriter(b, rate.NewLimiter(rate.Every(WriteInterval), 2))
	})
	return opened, openErr
}

func probe() (backend, error) {
	initErr := clipboard.Init()
	if initErr == nil {
		return nativeBackend{}, nil
	}
	if !atotto.Unsupported {
		return commandBackend{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, initErr)
}

func newWriter(b backend, lim *rate.Limiter) *Writer {
	return &Writer{b: b, limiter: lim}
}

// WriteText replaces the clipboard contents with text.
func (w *Writer) WriteText(text string) error {
	if !w.limiter.Allow() {
		return ErrThrottled
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.b.write(text); err != nil {
		return fmt.Errorf("sysclip: %s write: %w", w.b.name(), err)
	}
	return nil
}

// Backend names the backend in use, for logs.
func (w *Writer) Backend() string { return w.b.name() }
