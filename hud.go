package main

import (
	"time"

	"marblerank/eui"
	"marblerank/rank"

	"github.com/hako/durafmt"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var hudFont = eui.Font{Size: 13}

// formatClock renders a race time to the second, at most two units.
func formatClock(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d <= 0 {
		return "0 s"
	}
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

// drawHUD prints the race clock in the top-left corner.
func drawHUD(c *eui.Canvas, pal *eui.Palette, tr rank.Translator, clock time.Duration) {
	c.Save()
	defer c.Restore()
	c.SetFont(hudFont)
	c.SetTextAlign(eui.AlignLeft)
	line := tr.Get("Race time %s", formatClock(clock))
	if pal.RankStroke != nil {
		c.StrokeText(line, 8, 20, 3, *pal.RankStroke)
	}
	c.FillText(line, 8, 20, pal.Text)
}
