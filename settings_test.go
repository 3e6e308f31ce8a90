package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func withDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, origGS := dataDirPath, gs
	dataDirPath = dir
	t.Cleanup(func() {
		dataDirPath = orig
		gs = origGS
	})
	return dir
}

func TestLoadSettingsMissingFile(t *testing.T) {
	withDataDir(t)
	gs.Mode = "teams"
	if loadSettings() {
		t.Fatalf("loadSettings reported success without a file")
	}
	if gs != gsdef {
		t.Fatalf("settings not reset to defaults: %+v", gs)
	}
}

func TestSaveLoadSettingsRoundTrip(t *testing.T) {
	dir := withDataDir(t)
	gs = gsdef
	gs.Mode = "teams"
	gs.Language = "ko"
	gs.FinishInterval = 750 * time.Millisecond
	gs.WinnerRank = 3
	gs.FeedURL = "ws://localhost:8080/race"
	saveSettings()

	if _, err := os.Stat(filepath.Join(dir, settingsFile+".tmp")); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}
	want := gs
	gs = gsdef
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}
	if gs != want {
		t.Fatalf("loaded %+v want %+v", gs, want)
	}
}

func TestLoadSettingsVersionMismatch(t *testing.T) {
	dir := withDataDir(t)
	data := []byte(`{"Version": 0, "Mode": "teams"}`)
	if err := os.WriteFile(filepath.Join(dir, settingsFile), data, 0o644); err != nil {
		t.Fatal(err)
	}
	if loadSettings() {
		t.Fatalf("old settings version accepted")
	}
	if gs.Mode != gsdef.Mode {
		t.Fatalf("mode = %q want default", gs.Mode)
	}
}

func TestLoadSettingsNormalizes(t *testing.T) {
	dir := withDataDir(t)
	data := []byte(`{"Version": 1, "Mode": "grid", "DemoMarbles": -4, "WheelStep": 0, "DoubleClickMS": 5, "WinnerRank": -9, "WindowWidth": 10}`)
	if err := os.WriteFile(filepath.Join(dir, settingsFile), data, 0o644); err != nil {
		t.Fatal(err)
	}
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}
	switch {
	case gs.Mode != gsdef.Mode:
		t.Fatalf("mode = %q", gs.Mode)
	case gs.DemoMarbles != gsdef.DemoMarbles:
		t.Fatalf("marbles = %d", gs.DemoMarbles)
	case gs.WheelStep != gsdef.WheelStep:
		t.Fatalf("wheel step = %v", gs.WheelStep)
	case gs.DoubleClickMS != gsdef.DoubleClickMS:
		t.Fatalf("double click = %d", gs.DoubleClickMS)
	case gs.WinnerRank != -1:
		t.Fatalf("winner rank = %d", gs.WinnerRank)
	case gs.WindowWidth != gsdef.WindowWidth:
		t.Fatalf("window width = %d", gs.WindowWidth)
	}
	// Fields the file leaves out keep their defaults.
	if gs.FinishInterval != gsdef.FinishInterval || !gs.ShowClock {
		t.Fatalf("defaults lost: %+v", gs)
	}
}

func TestLoadSettingsBadJSON(t *testing.T) {
	dir := withDataDir(t)
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if loadSettings() {
		t.Fatalf("broken settings accepted")
	}
}

func TestFlagOverridesAreNotSaved(t *testing.T) {
	withDataDir(t)
	gs = gsdef
	saveSettings()
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}

	args := []string{"-feed", "ws://localhost:9000/race", "-mode", "teams", "-marbles", "12", "-notify", "-debug"}
	opts, err := parseFlags(args, gs)
	if err != nil {
		t.Fatal(err)
	}
	if opts.FeedURL != "ws://localhost:9000/race" || opts.Mode != "teams" || opts.DemoMarbles != 12 || !opts.DesktopNotify || !opts.debug {
		t.Fatalf("flags not applied: %+v", opts)
	}
	if gs != gsdef {
		t.Fatalf("parsing flags changed the settings: %+v", gs)
	}

	saveSettings()
	gs = settings{}
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}
	if gs != gsdef {
		t.Fatalf("flag overrides persisted: %+v", gs)
	}
}

func TestParseFlagsDefaultsToSettings(t *testing.T) {
	base := gsdef
	base.Mode = "teams"
	base.FeedURL = "ws://example.test/race"
	opts, err := parseFlags(nil, base)
	if err != nil {
		t.Fatal(err)
	}
	if opts.settings != base {
		t.Fatalf("opts = %+v want %+v", opts.settings, base)
	}

	opts, err = parseFlags([]string{"-mode", "grid", "-marbles", "0"}, base)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Mode != gsdef.Mode || opts.DemoMarbles != gsdef.DemoMarbles {
		t.Fatalf("flag values not normalized: %+v", opts.settings)
	}

	if _, err := parseFlags([]string{"-no-such-flag"}, base); err == nil {
		t.Fatalf("unknown flag accepted")
	}
}
