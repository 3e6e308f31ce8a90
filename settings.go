package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"marblerank/rank"
)

const SETTINGS_VERSION = 1

const settingsFile = "settings.json"

var gs settings = gsdef

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	WindowWidth:  960,
	WindowHeight: 600,

	Mode:  "full",
	Theme: "",

	DemoMarbles:    40,
	FinishInterval: 1200 * time.Millisecond,
	WinnerRank:     0,

	DesktopNotify: false,
	ShowClock:     true,

	WheelStep:       100,
	DoubleClickMS:   400,
	FontHeight:      16,
	PanelLineHeight: 18,
}

type settings struct {
	Version int

	WindowWidth  int
	WindowHeight int

	// Mode is "full" or "teams".
	Mode string
	// Language is a BCP 47 tag or POSIX locale; empty follows the system.
	Language string
	// Theme names a palette; empty follows the system dark mode setting.
	Theme string

	RosterPath     string
	DemoMarbles    int
	FinishInterval time.Duration
	Seed           uint64
	// WinnerRank is the finish index that gets the star; -1 for none.
	WinnerRank int

	FeedURL string

	DesktopNotify bool
	ShowClock     bool

	WheelStep       float64
	DoubleClickMS   int
	FontHeight      float64
	PanelLineHeight float64
}

// dataDirPath holds the directory settings and rosters are read from. It
// sits next to the executable so a portable install keeps its state.
var dataDirPath = func() string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, "Library", "Application Support", "marblerank")
			_ = os.MkdirAll(dir, 0o755)
			return dir
		}
	}
	if exe, err := os.Executable(); err == nil {
		if dir, err := filepath.Abs(filepath.Dir(exe)); err == nil {
			return filepath.Join(dir, "data")
		}
	}
	// Fallback to relative path.
	return "data"
}()

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		gs = gsdef
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		logWarn("settings %s: %v", path, err)
		gs = gsdef
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		gs = gsdef
		return false
	}
	gs = tmp
	gs.normalize()
	return true
}

// normalize replaces out-of-range values with their defaults.
func (s *settings) normalize() {
	if s.WindowWidth < 320 {
		s.WindowWidth = gsdef.WindowWidth
	}
	if s.WindowHeight < 240 {
		s.WindowHeight = gsdef.WindowHeight
	}
	if _, err := rank.ParseDisplayMode(s.Mode); err != nil {
		s.Mode = gsdef.Mode
	}
	if s.DemoMarbles <= 0 || s.DemoMarbles > 10000 {
		s.DemoMarbles = gsdef.DemoMarbles
	}
	if s.FinishInterval < 10*time.Millisecond {
		s.FinishInterval = gsdef.FinishInterval
	}
	if s.WinnerRank < -1 {
		s.WinnerRank = -1
	}
	if s.WheelStep <= 0 {
		s.WheelStep = gsdef.WheelStep
	}
	if s.DoubleClickMS < 100 || s.DoubleClickMS > 2000 {
		s.DoubleClickMS = gsdef.DoubleClickMS
	}
	if s.FontHeight < 8 || s.FontHeight > 64 {
		s.FontHeight = gsdef.FontHeight
	}
	if s.PanelLineHeight < 8 || s.PanelLineHeight > 64 {
		s.PanelLineHeight = gsdef.PanelLineHeight
	}
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.MkdirAll(dataDirPath, 0o755); err != nil {
		logError("save settings: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		logError("save settings: %v", err)
	}
}
