// Package rank draws the live standings overlay of a marble race: the
// scroll-following finish list, the team ranking by average score and the
// MVP top three, and exports the same standings as TSV.
package rank

import (
	"fmt"
	"image/color"
	"strings"
)

// Marble is one race participant. The race owns marbles; the renderer only
// reads them.
type Marble struct {
	Name string  `json:"name"`
	Hue  float64 `json:"hue"`
}

// Team is a roster entry. Members without a Scores entry count as 0.
type Team struct {
	Name    string             `json:"name"`
	Members []string           `json:"members"`
	Scores  map[string]float64 `json:"scores"`
}

// Theme carries the colours the host's theme controls. MarbleLightness is an
// HSL lightness percent; RankStroke outlines rank text and may be nil.
type Theme struct {
	MarbleLightness float64
	RankStroke      color.Color
}

// Params is the per-frame input to Render. WinnerRank indexes the winner row
// that gets the star; -1 highlights none.
type Params struct {
	Winners    []Marble
	Marbles    []Marble
	WinnerRank int
	Theme      Theme
}

// DisplayMode selects which panels Render draws.
type DisplayMode int

const (
	// ModeFull draws the per-marble finish list with the team/MVP box below.
	ModeFull DisplayMode = iota
	// ModeTeams draws only the team ranking and MVP column.
	ModeTeams
)

func (m DisplayMode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeTeams:
		return "teams"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ParseDisplayMode accepts the names String returns. The empty string is
// the default mode.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return ModeFull, nil
	case "teams", "team":
		return ModeTeams, nil
	}
	return ModeFull, fmt.Errorf("unknown display mode %q", s)
}
