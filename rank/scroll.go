package rank

import (
	"math"
	"time"
)

const (
	// SmoothingWindow is the time constant of the scroll easing: each frame
	// closes dt/SmoothingWindow of the remaining distance.
	SmoothingWindow = 250 * time.Millisecond
	// OverrideWindow is how long a wheel gesture suspends auto-follow.
	OverrideWindow = 2 * time.Second

	snapDistance = 1.0
)

// ScrollState is the animator's persisted state. Target stays within
// [0, MaxBound]; Current eases toward it.
type ScrollState struct {
	Current  float64
	Target   float64
	MaxBound float64
	Override time.Duration
}

type scroller struct {
	ScrollState
	// winnerCount is -1 until the first render, which keeps update idle.
	winnerCount int
	follow      float64
}

func newScroller() scroller {
	return scroller{winnerCount: -1}
}

// setBounds is called by every render with fresh list lengths. follow is
// the offset that brings the latest winner into view.
func (s *scroller) setBounds(winnerCount int, maxBound, follow float64) {
	s.winnerCount = winnerCount
	s.MaxBound = math.Max(0, maxBound)
	s.follow = follow
	s.Target = s.clamp(s.Target)
}

func (s *scroller) clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), s.MaxBound)
}

func (s *scroller) update(dt time.Duration) {
	if s.winnerCount == -1 {
		return
	}
	if s.Override > 0 {
		s.Override -= dt
	}
	if s.Override <= 0 {
		s.Override = 0
		s.Target = s.clamp(s.follow)
	}
	if s.Current != s.Target {
		k := math.Min(float64(dt)/float64(SmoothingWindow), 1)
		if k > 0 {
			s.Current += (s.Target - s.Current) * k
		}
	}
	if math.Abs(s.Current-s.Target) < snapDistance {
		s.Current = s.Target
	}
}

func (s *scroller) wheel(deltaY float64) {
	s.Target = s.clamp(s.Target + deltaY)
	s.Override = OverrideWindow
}
