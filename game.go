package main

import (
	"context"
	"image/color"
	"time"

	"marblerank/eui"
	"marblerank/rank"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game hosts the standings overlay: it feeds the renderer from the demo race
// or the live feed, routes gestures to it and shows its messages.
type Game struct {
	ctx context.Context
	// cfg is this run's settings: the saved ones with flag overrides.
	cfg settings

	ranks    *rank.Renderer
	canvas   *eui.Canvas
	gestures eui.Gestures
	palette  *eui.Palette
	tr       rank.Translator

	race   *race
	feed   chan feedUpdate
	params rank.Params
	// snap is what the last Draw put on screen; export copies it.
	snap rank.Snapshot

	toasts    *toasts
	lastFrame time.Time
	started   time.Time
}

func newGame(ctx context.Context, cfg settings, ranks *rank.Renderer, pal *eui.Palette, tr rank.Translator) *Game {
	g := &Game{
		ctx:     ctx,
		cfg:     cfg,
		ranks:   ranks,
		canvas:  eui.NewCanvas(nil),
		palette: pal,
		tr:      tr,
		toasts:  &toasts{},
		gestures: eui.Gestures{
			WheelStep:         cfg.WheelStep,
			DoubleClickWindow: time.Duration(cfg.DoubleClickMS) * time.Millisecond,
		},
		params: rank.Params{WinnerRank: -1, Theme: paletteTheme(pal)},
		// Until the first frame an export copies an empty table in the
		// renderer's mode.
		snap: rank.Snapshot{Mode: ranks.Mode(), WinnerRank: -1},
	}
	ranks.OnMessage(g.message)
	return g
}

// paletteTheme maps a palette onto the colours the renderer takes.
func paletteTheme(p *eui.Palette) rank.Theme {
	th := rank.Theme{MarbleLightness: p.MarbleLightness}
	if p.RankStroke != nil {
		th.RankStroke = *p.RankStroke
	}
	return th
}

// message is the renderer's message sink. It runs on the export goroutine.
func (g *Game) message(msg string) {
	g.toasts.push(msg, time.Now())
	if g.cfg.DesktopNotify {
		notifyDesktop("Marble Rank", msg)
	}
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	now := time.Now()
	var dt time.Duration
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame)
	} else {
		g.started = now
	}
	g.lastFrame = now

	g.pollFeed()
	if g.race != nil {
		if n := g.race.advance(dt); n > 0 {
			logDebug("%d marble(s) finished, %d racing", n, len(g.race.racing))
		}
		g.params = g.race.params(g.params.Theme)
	}
	g.ranks.Update(dt)

	if dy := g.gestures.Wheel(); dy != 0 {
		g.ranks.Wheel(dy)
	}
	if g.gestures.DoubleClicked(now) || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.export()
	}
	return nil
}

// export copies what the last Draw showed.
func (g *Game) export() {
	g.ranks.Export(g.snap)
}

func (g *Game) pollFeed() {
	if g.feed == nil {
		return
	}
	select {
	case u := <-g.feed:
		g.params.Winners = u.Winners
		g.params.Marbles = u.Marbles
		g.params.WinnerRank = -1
		if u.WinnerRank != nil {
			g.params.WinnerRank = *u.WinnerRank
		}
		if u.Teams != nil {
			g.ranks.SetTeams(u.Teams)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA(g.palette.Background))
	g.canvas.Reset(screen)

	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	g.snap = g.ranks.Render(g.canvas, g.params, w, h)

	if g.cfg.ShowClock {
		var clock time.Duration
		if g.race != nil {
			clock = g.race.clock()
		} else if !g.started.IsZero() {
			clock = g.lastFrame.Sub(g.started)
		}
		drawHUD(g.canvas, g.palette, g.tr, clock)
	}
	g.toasts.draw(g.canvas, g.palette, h, time.Now())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth >= 320 && outsideHeight >= 240 {
		gs.WindowWidth = outsideWidth
		gs.WindowHeight = outsideHeight
	}
	return outsideWidth, outsideHeight
}

func runGame(g *Game) {
	ebiten.SetWindowTitle("Marble Rank")
	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(g, op); err != nil {
		logError("ebiten: %v", err)
	}
}
