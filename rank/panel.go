package rank

import (
	"image/color"
	"math"
	"strconv"

	"marblerank/eui"
)

const (
	// panelWidth is the teams-mode column width and the box's minimum width.
	panelWidth   = 160
	panelPadding = 8
	panelMargin  = 5

	firstBaseline = 20
	titleGap      = 5
	teamRowGap    = 12
	mvpRowGap     = 8
	sectionGap    = 10
	teamScoreDrop = 14
	mvpScoreDrop  = 12
	strokeWidth   = 3

	teamTitleGlyph = "🏆"
	mvpTitleGlyph  = "⭐"
)

var medals = [...]string{"🥇", "🥈", "🥉"}

var (
	titleFont     = eui.Font{Size: 16, Bold: true}
	teamFont      = eui.Font{Size: 14.5, Bold: true}
	teamScoreFont = eui.Font{Size: 13}
	mvpFont       = eui.Font{Size: 13}
	mvpScoreFont  = eui.Font{Size: 12}

	panelBackground = color.NRGBA{A: 204}
	panelBorder     = color.NRGBA{R: 0xff, G: 0xd7, A: 0x80}
	outlineColor    = color.Black
	titleColor      = eui.MustParseColor("#ffd700")
	mvpScoreColor   = color.White

	teamColors = [...]color.Color{
		eui.MustParseColor("#ff6b6b"),
		eui.MustParseColor("#4ecdc4"),
		eui.MustParseColor("#45b7d1"),
	}
	mvpColors = [mvpLimit]color.Color{
		eui.MustParseColor("gold"),
		eui.MustParseColor("silver"),
		eui.MustParseColor("bronze"),
	}
)

// panelLine is one text run of the team/MVP panel. y is a baseline relative
// to the panel top.
type panelLine struct {
	text string
	font eui.Font
	fill color.Color
	y    float64
}

// rankGlyph is a medal for the podium and "n." below it.
func rankGlyph(i int) string {
	if i < len(medals) {
		return medals[i]
	}
	return strconv.Itoa(i+1) + "."
}

func teamColor(i int) color.Color {
	if i < len(teamColors) {
		return teamColors[i]
	}
	return color.White
}

// layoutStandings places the panel's lines and returns the height they
// take. Both the drawn box and its size come from this one layout.
func (r *Renderer) layoutStandings(stats []TeamStat, mvp []MVPEntry) ([]panelLine, float64) {
	lh := r.lineHeight
	lines := make([]panelLine, 0, 2+2*len(stats)+2*len(mvp))

	y := float64(firstBaseline)
	lines = append(lines, panelLine{teamTitleGlyph + " " + r.tr("Team Ranking"), titleFont, titleColor, y})
	y += lh + titleGap
	for i, st := range stats {
		lines = append(lines,
			panelLine{rankGlyph(i) + " " + st.Name, teamFont, teamColor(i), y},
			panelLine{FormatAverage(st.Average), teamScoreFont, titleColor, y + teamScoreDrop},
		)
		y += lh + teamRowGap
	}
	y += sectionGap

	lines = append(lines, panelLine{mvpTitleGlyph + " " + r.tr("MVP TOP 3"), titleFont, titleColor, y})
	y += lh + titleGap
	for i, e := range mvp {
		lines = append(lines,
			panelLine{rankGlyph(i) + " " + e.Name, mvpFont, mvpColors[i], y},
			panelLine{r.tr("%s pts", formatScore(e.Score)), mvpScoreFont, mvpScoreColor, y + mvpScoreDrop},
		)
		y += lh + mvpRowGap
	}
	return lines, y
}

func drawPanelLines(s Surface, lines []panelLine, x, top float64) {
	s.SetTextAlign(eui.AlignRight)
	for _, l := range lines {
		s.SetFont(l.font)
		outlinedText(s, l.text, x, top+l.y, l.fill, outlineColor, strokeWidth)
	}
}

func widestLine(s Surface, lines []panelLine) float64 {
	var w float64
	for _, l := range lines {
		s.SetFont(l.font)
		w = math.Max(w, s.MeasureText(l.text))
	}
	return w
}

// drawTeamColumn is the teams-mode layout: a full-height column on the
// right edge.
func (r *Renderer) drawTeamColumn(s Surface, stats []TeamStat, mvp []MVPEntry, width, height float64) {
	lines, _ := r.layoutStandings(stats, mvp)

	s.Save()
	defer s.Restore()
	left := width - panelWidth
	s.FillRect(left, 0, panelWidth, height, panelBackground)
	s.ClipRect(left, 0, panelWidth, height)
	drawPanelLines(s, lines, width-panelMargin, 0)
}

// drawTeamBox is the full-mode layout: a box in the bottom-right corner
// sized to its content every frame. Nothing is drawn without teams.
func (r *Renderer) drawTeamBox(s Surface, stats []TeamStat, mvp []MVPEntry, width, height float64) {
	if len(stats) == 0 {
		return
	}
	lines, contentH := r.layoutStandings(stats, mvp)

	s.Save()
	defer s.Restore()
	w := math.Max(panelWidth, widestLine(s, lines)+2*panelPadding)
	h := contentH + panelPadding
	left := width - w - panelMargin
	top := math.Max(0, height-h-panelMargin)

	s.FillRect(left, top, w, h, panelBackground)
	s.StrokeRect(left, top, w, h, 1, panelBorder)
	s.ClipRect(left, top, w, h)
	drawPanelLines(s, lines, left+w-panelPadding, top)
}
