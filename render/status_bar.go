package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
)

// drawStatus draws the two-line panel starting at row y
func (v *Viewer) drawStatus(width, y int) {
	for row := y; row < y+StatusLines; row++ {
		for x := 0; x < width; x++ {
			v.screen.SetContent(x, row, ' ', nil, styleStatus)
		}
	}

	view := v.board.View()
	budget := v.ctrl.Context().FrameBudget()

	// Line 1: run state and toggles
	x := 0
	runText, runBg := " RUNNING ", RgbRunningBg
	if view.Paused {
		runText, runBg = " PAUSED ", RgbPausedBg
	}
	x = v.drawText(x, y, width, runText, styleStatus.Background(runBg).Bold(true))
	x = v.drawText(x, y, width, " ", styleStatus)

	x = v.drawToggle(x, y, width, "AI", view.AIEnabled)
	x = v.drawToggle(x, y, width, "RANDOM", view.Mode == "random")
	x = v.drawToggle(x, y, width, "MULTI", v.settings.Multi)
	x = v.drawToggle(x, y, width, "SKIP", v.settings.FrameSkip)
	x = v.drawToggle(x, y, width, "SLOW", v.settings.Slow)
	x = v.drawToggle(x, y, width, "DRAW", v.settings.Draw)

	counters := fmt.Sprintf(" GEN %s  FRAME %d/%d  POP %s  DONE %s  KEY %s  DEAD %s",
		humanize.Comma(int64(view.Generation)),
		view.Frame, budget,
		humanize.Comma(int64(view.Population)),
		humanize.Comma(int64(view.Completed)),
		humanize.Comma(int64(view.KeyHolders)),
		humanize.Comma(int64(view.Dead)),
	)
	v.drawText(x, y, width, counters, styleStatus)

	// Line 2: last generation scores
	y++
	scores := fmt.Sprintf(" BEST %s  MEAN %s  DIV %.2f  TOP %s  %s/gen",
		humanize.CommafWithDigits(view.Best, 1),
		humanize.CommafWithDigits(view.Mean, 1),
		view.Diversity,
		humanize.CommafWithDigits(view.BestEver, 1),
		view.GenerationTime.Round(time.Millisecond),
	)
	x = v.drawText(0, y, width, scores, styleStatus)

	if view.SolvedAt > 0 {
		solved := fmt.Sprintf("  SOLVED @ GEN %s ", humanize.Comma(int64(view.SolvedAt)))
		v.drawText(x, y, width, solved, styleStatus.Foreground(RgbSolvedBanner).Background(RgbStatusText).Bold(true))
	}
}

func (v *Viewer) drawToggle(x, y, width int, label string, on bool) int {
	bg := RgbToggleOff
	if on {
		bg = RgbToggleOn
	}
	x = v.drawText(x, y, width, " "+label+" ", styleStatus.Background(bg))
	return v.drawText(x, y, width, " ", styleStatus)
}

// drawText writes s clipped to width and returns the next column
func (v *Viewer) drawText(x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= width {
			return x
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
