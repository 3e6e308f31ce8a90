package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"marblerank/rank"
)

// race is the demo source: marbles cross the line one per interval in a
// seeded random order. Each finisher scores one point per marble still
// racing behind it, credited to its team.
type race struct {
	winners []rank.Marble
	racing  []rank.Marble
	teams   []rank.Team
	teamOf  map[string]*rank.Team

	field      int
	winnerRank int
	interval   time.Duration
	elapsed    time.Duration
	nextFinish time.Duration
}

func demoMarbles(n int) []rank.Marble {
	out := make([]rank.Marble, n)
	for i := range out {
		out[i] = rank.Marble{
			Name: fmt.Sprintf("Marble %02d", i+1),
			Hue:  float64(i) * 360 / float64(n),
		}
	}
	return out
}

func newRace(marbles []rank.Marble, teams []rank.Team, interval time.Duration, seed uint64, winnerRank int) *race {
	racing := append([]rank.Marble(nil), marbles...)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(racing), func(i, j int) { racing[i], racing[j] = racing[j], racing[i] })

	r := &race{
		racing:     racing,
		teams:      teams,
		teamOf:     make(map[string]*rank.Team),
		field:      len(marbles),
		winnerRank: winnerRank,
		interval:   interval,
		nextFinish: interval,
	}
	for i := range teams {
		for _, m := range teams[i].Members {
			r.teamOf[m] = &teams[i]
		}
	}
	return r
}

// advance moves the race clock by dt and reports how many marbles finished.
func (r *race) advance(dt time.Duration) int {
	if r.done() {
		return 0
	}
	r.elapsed += dt
	n := 0
	for !r.done() && r.elapsed >= r.nextFinish {
		r.finish()
		r.nextFinish += r.interval
		n++
	}
	return n
}

func (r *race) finish() {
	m := r.racing[0]
	r.racing = r.racing[1:]
	place := len(r.winners)
	r.winners = append(r.winners, m)
	if t := r.teamOf[m.Name]; t != nil {
		if t.Scores == nil {
			t.Scores = map[string]float64{}
		}
		t.Scores[m.Name] = float64(r.field - 1 - place)
	}
}

func (r *race) done() bool { return len(r.racing) == 0 }

// clock is the race time, frozen at the last finish once everyone is in.
func (r *race) clock() time.Duration {
	if r.done() && r.field > 0 {
		return r.nextFinish - r.interval
	}
	return r.elapsed
}

func (r *race) params(th rank.Theme) rank.Params {
	wr := r.winnerRank
	if wr >= len(r.winners) {
		wr = -1
	}
	return rank.Params{
		Winners:    r.winners,
		Marbles:    r.racing,
		WinnerRank: wr,
		Theme:      th,
	}
}
