package rank

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// mvpLimit is how many individuals the MVP board shows.
const mvpLimit = 3

// TeamStat is a team's average member score.
type TeamStat struct {
	Name    string
	Average float64
}

// MVPEntry is one member's raw score.
type MVPEntry struct {
	Name  string
	Score float64
	Team  string
}

// TeamStandings ranks teams by average member score, highest first. Teams
// without members are left out; equal averages keep roster order.
func TeamStandings(teams []Team) []TeamStat {
	stats := make([]TeamStat, 0, len(teams))
	for _, t := range teams {
		if len(t.Members) == 0 {
			continue
		}
		var sum float64
		for _, m := range t.Members {
			sum += t.Scores[m]
		}
		stats = append(stats, TeamStat{Name: t.Name, Average: sum / float64(len(t.Members))})
	}
	slices.SortStableFunc(stats, func(a, b TeamStat) int {
		return cmp.Compare(b.Average, a.Average)
	})
	return stats
}

// MVPStandings returns the top three individuals across all teams by raw
// score. Ties keep roster order.
func MVPStandings(teams []Team) []MVPEntry {
	var all []MVPEntry
	for _, t := range teams {
		for _, m := range t.Members {
			all = append(all, MVPEntry{Name: m, Score: t.Scores[m], Team: t.Name})
		}
	}
	slices.SortStableFunc(all, func(a, b MVPEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(all) > mvpLimit {
		all = all[:mvpLimit]
	}
	return all
}

// FormatAverage renders an average with two decimals. Rounding works on the
// exact binary value, taking true halves away from zero, so 1.005 (stored
// just below it) shows as 1.00 while 0.125 shows as 0.13.
func FormatAverage(avg float64) string {
	exact, err := decimal.NewFromString(strconv.FormatFloat(avg, 'f', 30, 64))
	if err != nil {
		// NaN and infinities.
		return strconv.FormatFloat(avg, 'f', 2, 64)
	}
	return exact.StringFixed(2)
}

// formatScore renders a raw score with thousands separators and only the
// decimals it needs.
func formatScore(score float64) string {
	return humanize.Commaf(score)
}
