package rank

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"marblerank/eui"

	"github.com/dustin/go-humanize"
)

const (
	// listMargin insets the right-aligned text column from the right edge.
	listMargin = 5
	listWidth  = 150
	// listBaseline is the baseline of row 0 in list coordinates.
	listBaseline = 20
	// headerGap separates the count header from the clipped list.
	headerGap = 2

	starGlyph  = "☆"
	checkGlyph = "✔"
)

// Glyphs returns every pictograph the overlay draws, so a host can check
// its fonts cover them.
func Glyphs() string {
	return starGlyph + checkGlyph + teamTitleGlyph + mvpTitleGlyph + strings.Join(medals[:], "")
}

// Messages lists the catalog keys the overlay translates.
func Messages() []string {
	return []string{
		"Team Ranking",
		"MVP TOP 3",
		"%s pts",
		"Team ranking copied",
		"The result has been copied",
	}
}

var (
	listFont    = eui.Font{Size: 13, Bold: true}
	headerColor = color.White
)

// Snapshot is what one Render call drew. Export formats a snapshot, so the
// clipboard always matches the frame the gesture landed on.
type Snapshot struct {
	Mode       DisplayMode
	Winners    []Marble
	Marbles    []Marble
	WinnerRank int
	Teams      []TeamStat
	MVP        []MVPEntry
}

// Render draws one frame of the overlay into a width x height area and
// returns a snapshot of what it drew. The passed lists are not modified.
func (r *Renderer) Render(s Surface, p Params, width, height float64) Snapshot {
	stats := TeamStandings(r.teams)
	mvp := MVPStandings(r.teams)

	switch r.mode {
	case ModeTeams:
		// Two title rows on top of one row per team and MVP entry.
		r.scroll.setBounds(len(p.Winners), float64(len(stats)+len(mvp)+2)*r.lineHeight, 0)
		r.drawTeamColumn(s, stats, mvp, width, height)
	default:
		rows := len(p.Winners) + len(p.Marbles)
		r.scroll.setBounds(len(p.Winners), float64(rows)*r.fontHeight, float64(len(p.Winners))*r.fontHeight)
		r.drawFinishList(s, p, width, height)
		r.drawTeamBox(s, stats, mvp, width, height)
	}

	return Snapshot{
		Mode:       r.mode,
		Winners:    slices.Clone(p.Winners),
		Marbles:    slices.Clone(p.Marbles),
		WinnerRank: p.WinnerRank,
		Teams:      stats,
		MVP:        mvp,
	}
}

// visibleTop is the list offset drawn at the top of the viewport. The
// current scroll position sits mid-screen so the followed winner is centred.
func (r *Renderer) visibleTop(height float64) float64 {
	return math.Max(-r.fontHeight, r.scroll.Current-height/2)
}

func (r *Renderer) drawFinishList(s Surface, p Params, width, height float64) {
	fh := r.fontHeight
	x := width - listMargin
	top := r.visibleTop(height)
	total := len(p.Winners) + len(p.Marbles)

	s.Save()
	defer s.Restore()
	s.SetFont(listFont)
	s.SetTextAlign(eui.AlignRight)

	header := fmt.Sprintf("%s / %s", humanize.Comma(int64(len(p.Winners))), humanize.Comma(int64(total)))
	outlinedText(s, header, x, fh, headerColor, p.Theme.RankStroke, strokeWidth)

	s.ClipRect(width-listWidth, fh+headerGap, listWidth, height-fh-headerGap)
	s.Translate(0, -top)

	bottom := top + height
	for rank, m := range p.Winners {
		y := float64(rank) * fh
		if y > bottom {
			break
		}
		if y < top {
			continue
		}
		glyph := checkGlyph
		if rank == p.WinnerRank {
			glyph = starGlyph
		}
		label := fmt.Sprintf("%s %s #%d", glyph, m.Name, rank+1)
		outlinedText(s, label, x, listBaseline+y, marbleColor(m, p.Theme), p.Theme.RankStroke, strokeWidth)
	}
	for i, m := range p.Marbles {
		rank := len(p.Winners) + i
		y := float64(rank) * fh
		if y > bottom {
			break
		}
		if y < top {
			continue
		}
		label := fmt.Sprintf("%s #%d", m.Name, rank+1)
		outlinedText(s, label, x, listBaseline+y, marbleColor(m, p.Theme), p.Theme.RankStroke, strokeWidth)
	}
}

func marbleColor(m Marble, th Theme) color.Color {
	return eui.HueColor(m.Hue, th.MarbleLightness)
}
