package rank

import (
	"math"
	"testing"
)

func exampleTeams() []Team {
	return []Team{
		{Name: "Red", Members: []string{"A", "B"}, Scores: map[string]float64{"A": 10, "B": 20}},
		{Name: "Blue", Members: []string{"C"}, Scores: map[string]float64{}},
	}
}

func TestTeamStandingsExample(t *testing.T) {
	got := TeamStandings(exampleTeams())
	want := []TeamStat{{Name: "Red", Average: 15}, {Name: "Blue", Average: 0}}
	if len(got) != len(want) {
		t.Fatalf("len = %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stat %d = %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestTeamStandingsMissingScores(t *testing.T) {
	tests := []struct {
		name string
		team Team
		want float64
	}{
		{"nil map", Team{Name: "x", Members: []string{"solo"}}, 0},
		{"partial", Team{Name: "x", Members: []string{"a", "b", "c"}, Scores: map[string]float64{"a": 9}}, 3},
		{"full", Team{Name: "x", Members: []string{"a", "b"}, Scores: map[string]float64{"a": 1, "b": 2}}, 1.5},
		{"extra entries ignored", Team{Name: "x", Members: []string{"a"}, Scores: map[string]float64{"a": 4, "ghost": 100}}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TeamStandings([]Team{tt.team})
			if len(got) != 1 {
				t.Fatalf("len = %d want 1", len(got))
			}
			if got[0].Average != tt.want {
				t.Fatalf("average = %v want %v", got[0].Average, tt.want)
			}
		})
	}
}

func TestTeamStandingsSkipsEmptyTeams(t *testing.T) {
	teams := []Team{
		{Name: "Ghosts"},
		{Name: "Red", Members: []string{"A"}, Scores: map[string]float64{"A": 1}},
		{Name: "Empty", Members: []string{}, Scores: map[string]float64{"nobody": 50}},
	}
	got := TeamStandings(teams)
	if len(got) != 1 || got[0].Name != "Red" {
		t.Fatalf("standings = %+v want only Red", got)
	}
}

func TestTeamStandingsStableTies(t *testing.T) {
	teams := []Team{
		{Name: "First", Members: []string{"a"}, Scores: map[string]float64{"a": 5}},
		{Name: "Second", Members: []string{"b", "c"}, Scores: map[string]float64{"b": 10}},
		{Name: "Top", Members: []string{"d"}, Scores: map[string]float64{"d": 7}},
		{Name: "Third", Members: []string{"e"}, Scores: map[string]float64{"e": 5}},
	}
	got := TeamStandings(teams)
	want := []string{"Top", "First", "Second", "Third"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("rank %d = %s want %s (all %+v)", i+1, got[i].Name, name, got)
		}
	}
}

func TestTeamStandingsDoesNotMutateRoster(t *testing.T) {
	teams := []Team{
		{Name: "Low", Members: []string{"a"}, Scores: map[string]float64{"a": 1}},
		{Name: "High", Members: []string{"b"}, Scores: map[string]float64{"b": 2}},
	}
	TeamStandings(teams)
	MVPStandings(teams)
	if teams[0].Name != "Low" || teams[1].Name != "High" {
		t.Fatalf("roster reordered: %+v", teams)
	}
	if len(teams[0].Scores) != 1 {
		t.Fatalf("scores map changed: %+v", teams[0].Scores)
	}
}

func TestMVPStandingsExample(t *testing.T) {
	got := MVPStandings(exampleTeams())
	want := []MVPEntry{
		{Name: "B", Score: 20, Team: "Red"},
		{Name: "A", Score: 10, Team: "Red"},
		{Name: "C", Score: 0, Team: "Blue"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mvp %d = %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestMVPStandingsAtMostThree(t *testing.T) {
	teams := []Team{
		{Name: "Red", Members: []string{"a", "b", "c"}, Scores: map[string]float64{"a": 1, "b": 5, "c": 3}},
		{Name: "Blue", Members: []string{"d", "e"}, Scores: map[string]float64{"d": 4, "e": 5}},
	}
	got := MVPStandings(teams)
	if len(got) != 3 {
		t.Fatalf("len = %d want 3", len(got))
	}
	// b and e tie; b comes first in roster order.
	want := []string{"b", "e", "d"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("mvp %d = %s want %s", i+1, got[i].Name, name)
		}
	}
	if n := len(MVPStandings([]Team{{Name: "Solo", Members: []string{"x"}}})); n != 1 {
		t.Fatalf("single member roster gave %d entries", n)
	}
	if n := len(MVPStandings(nil)); n != 0 {
		t.Fatalf("empty roster gave %d entries", n)
	}
}

func TestMVPIgnoresTeamAverages(t *testing.T) {
	teams := []Team{
		// Strong average, no standout.
		{Name: "Even", Members: []string{"a", "b"}, Scores: map[string]float64{"a": 8, "b": 8}},
		// Weak average, one star.
		{Name: "Carried", Members: []string{"star", "x", "y"}, Scores: map[string]float64{"star": 12}},
	}
	if got := TeamStandings(teams); got[0].Name != "Even" {
		t.Fatalf("team leader = %s want Even", got[0].Name)
	}
	got := MVPStandings(teams)
	if got[0].Name != "star" || got[0].Team != "Carried" {
		t.Fatalf("mvp leader = %+v want star of Carried", got[0])
	}
}

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{15, "15.00"},
		{0, "0.00"},
		{1.0 / 3, "0.33"},
		{2.0 / 3, "0.67"},
		{0.125, "0.13"},
		{0.375, "0.38"},
		{1234.5, "1234.50"},
		// Binary values just below a half round down.
		{1.005, "1.00"},
		{2.675, "2.67"},
		{1.115, "1.11"},
		{-1.005, "-1.00"},
		{-0.125, "-0.13"},
	}
	for _, tt := range tests {
		if got := FormatAverage(tt.in); got != tt.want {
			t.Fatalf("FormatAverage(%v) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{0, "0"},
		{12.5, "12.5"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatScore(tt.in); got != tt.want {
			t.Fatalf("formatScore(%v) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestAverageIsArithmeticMean(t *testing.T) {
	members := []string{"a", "b", "c", "d", "e", "f", "g"}
	scores := map[string]float64{}
	var sum float64
	for i, m := range members {
		if i%3 == 0 {
			continue // left unscored
		}
		v := float64(i*i) + 0.25
		scores[m] = v
		sum += v
	}
	got := TeamStandings([]Team{{Name: "t", Members: members, Scores: scores}})[0].Average
	if want := sum / float64(len(members)); math.Abs(got-want) > 1e-12 {
		t.Fatalf("average = %v want %v", got, want)
	}
}
