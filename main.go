package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"marblerank/eui"
	"marblerank/internal/sysclip"
	"marblerank/locale"
	"marblerank/rank"

	"github.com/leonelquinteros/gotext"
	dark "github.com/thiagokokada/dark-mode-go"
	"golang.org/x/text/language"
)

var doDebug bool

const demoTeams = 4

// runOptions are the command-line choices. They shape one run and are
// never written back to the settings file.
type runOptions struct {
	settings
	debug   bool
	catalog string
}

func parseFlags(args []string, base settings) (runOptions, error) {
	opts := runOptions{settings: base}
	fs := flag.NewFlagSet("marblerank", flag.ContinueOnError)
	fs.BoolVar(&opts.debug, "debug", false, "verbose/debug logging")
	fs.StringVar(&opts.Mode, "mode", base.Mode, "display mode: full or teams")
	fs.StringVar(&opts.Language, "lang", base.Language, "UI language (e.g. en, ko); empty follows the system")
	fs.StringVar(&opts.Theme, "theme", base.Theme, "palette name (Dark, Light); empty follows the system")
	fs.StringVar(&opts.RosterPath, "roster", base.RosterPath, "team roster JSON file")
	fs.IntVar(&opts.DemoMarbles, "marbles", base.DemoMarbles, "number of marbles in the demo race")
	fs.DurationVar(&opts.FinishInterval, "interval", base.FinishInterval, "time between finishes in the demo race")
	fs.Uint64Var(&opts.Seed, "seed", base.Seed, "demo race seed; 0 picks one from the clock")
	fs.IntVar(&opts.WinnerRank, "winner", base.WinnerRank, "finish index that gets the star, -1 for none")
	fs.StringVar(&opts.FeedURL, "feed", base.FeedURL, "websocket URL of a live race feed; replaces the demo race")
	fs.BoolVar(&opts.DesktopNotify, "notify", base.DesktopNotify, "also show messages as desktop notifications")
	fs.StringVar(&opts.catalog, "po", "", "load translations from this .po file instead of the built-in catalog")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.normalize()
	return opts, nil
}

func main() {
	loaded := loadSettings()
	opts, err := parseFlags(os.Args[1:], gs)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}
	doDebug = opts.debug

	setupLogging(doDebug)
	if !loaded {
		logDebug("no saved settings in %s; using defaults", dataDirPath)
	}
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v", r)
			panic(r)
		}
	}()

	mode, err := rank.ParseDisplayMode(opts.Mode)
	if err != nil {
		logWarn("%v; using %v", err, mode)
	}

	if err := eui.LoadDefaultFonts(); err != nil {
		log.Fatalf("fonts: %v", err)
	}
	if _, err := eui.AddFontDir(filepath.Join(dataDirPath, "fonts")); err != nil {
		logWarn("fonts: %v", err)
	}
	pal := loadPalette(opts.Theme)
	tr := loadTranslator(opts.Language, opts.catalog)
	tr = ensureDisplayable(tr)
	logDebug("font fallbacks: %v", eui.FallbackNames())

	cfg := rank.Config{
		Mode:       mode,
		Translator: tr,
		FontHeight: opts.FontHeight,
		LineHeight: opts.PanelLineHeight,
	}
	if clip, err := sysclip.Open(); err != nil {
		logWarn("clipboard: %v; export disabled", err)
	} else {
		logDebug("clipboard backend: %s", clip.Backend())
		cfg.Clipboard = clip
	}
	ranks := rank.New(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g := newGame(ctx, opts.settings, ranks, pal, tr)
	if opts.FeedURL != "" {
		g.feed = make(chan feedUpdate, 1)
		go runFeed(ctx, opts.FeedURL, g.feed, func(err error) {
			logWarn("feed %s: %v", opts.FeedURL, err)
			g.toasts.push(tr.Get("Feed disconnected"), time.Now())
		})
	} else {
		g.race = startDemoRace(opts.settings)
		ranks.SetTeams(g.race.teams)
	}

	runGame(g)
	cancel()
	ranks.Wait()
	saveSettings()
}

func startDemoRace(cfg settings) *race {
	marbles := demoMarbles(cfg.DemoMarbles)
	var teams []rank.Team
	if cfg.RosterPath != "" {
		t, err := loadRoster(cfg.RosterPath)
		if err != nil {
			logError("%v; using demo teams", err)
		} else {
			teams = t
		}
	}
	if teams == nil {
		teams = demoRoster(marbles, demoTeams)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logDebug("demo race: %d marbles, %d teams, seed %d", len(marbles), len(teams), seed)
	return newRace(marbles, teams, cfg.FinishInterval, seed, cfg.WinnerRank)
}

// loadPalette picks the named palette, or Dark/Light from the system
// setting when name is empty.
func loadPalette(name string) *eui.Palette {
	if name == "" {
		name = "Dark"
		if isDark, err := dark.IsDarkMode(); err == nil && !isDark {
			name = "Light"
		}
	}
	pal, err := eui.LoadPalette(name)
	if err != nil {
		logError("%v", err)
		if pal, err = eui.LoadPalette("Dark"); err != nil {
			log.Fatalf("builtin palette: %v", err)
		}
	}
	return pal
}

func loadTranslator(lang, poPath string) *gotext.Po {
	if poPath != "" {
		po, err := locale.LoadFile(poPath)
		if err == nil {
			return po
		}
		logError("%v", err)
	}
	tag := locale.Detect()
	if lang != "" {
		tag = locale.Match(lang)
	}
	logDebug("language: %v", tag)
	return locale.Load(tag)
}

// overlayMessages are the catalog keys drawn on screen.
func overlayMessages() []string {
	return append(rank.Messages(), "Race time %s", "Feed disconnected")
}

// ensureDisplayable makes sure the fonts can draw the overlay's glyphs and
// tr's strings, pulling fallbacks from the system fonts when needed. A
// catalog the fonts still cannot draw is replaced by English.
func ensureDisplayable(tr *gotext.Po) *gotext.Po {
	var sample strings.Builder
	sample.WriteString(rank.Glyphs())
	for _, id := range overlayMessages() {
		sample.WriteString(tr.Get(id))
	}
	if n, err := eui.AddSystemFallbacks(sample.String(), ""); err != nil {
		logWarn("fonts: %v", err)
	} else if n > 0 {
		logDebug("added %d system font fallback(s)", n)
	}
	if missing := eui.Missing(sample.String()); len(missing) > 0 {
		logWarn("no installed font draws %q; using English", string(missing))
		return locale.Load(language.English)
	}
	return tr
}
