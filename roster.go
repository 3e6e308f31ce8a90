package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"marblerank/rank"
)

// rosterFile is the on-disk team list. A bare JSON array of teams is also
// accepted.
type rosterFile struct {
	Teams []rank.Team `json:"teams"`
}

// loadRoster reads teams from path. Relative paths resolve against the data
// directory.
func loadRoster(path string) ([]rank.Team, error) {
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			path = filepath.Join(dataDirPath, path)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	teams, err := parseRoster(data)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return teams, nil
}

func parseRoster(data []byte) ([]rank.Team, error) {
	data = bytes.TrimSpace(data)
	var teams []rank.Team
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &teams); err != nil {
			return nil, err
		}
	} else {
		var rf rosterFile
		if err := json.Unmarshal(data, &rf); err != nil {
			return nil, err
		}
		teams = rf.Teams
	}

	seen := make(map[string]bool, len(teams))
	for i := range teams {
		t := &teams[i]
		if t.Name == "" {
			return nil, fmt.Errorf("team %d has no name", i+1)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate team %q", t.Name)
		}
		seen[t.Name] = true
		if t.Scores == nil {
			t.Scores = make(map[string]float64, len(t.Members))
		}
	}
	if len(teams) == 0 {
		return nil, errors.New("no teams")
	}
	return teams, nil
}

// demoRoster deals the marbles round robin into n teams.
func demoRoster(marbles []rank.Marble, n int) []rank.Team {
	if n <= 0 || len(marbles) == 0 {
		return nil
	}
	n = min(n, len(marbles))
	teams := make([]rank.Team, n)
	for i := range teams {
		teams[i] = rank.Team{
			Name:   fmt.Sprintf("Team %c", 'A'+i%26),
			Scores: map[string]float64{},
		}
	}
	for i, m := range marbles {
		t := &teams[i%n]
		t.Members = append(t.Members, m.Name)
	}
	return teams
}
