// Package render draws the running population to a tcell screen and maps keys to controller toggles
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/engine"
	"github.com/lixenwraith/escape/game"
	"github.com/lixenwraith/escape/hazard"
	"github.com/lixenwraith/escape/maze"
	"github.com/lixenwraith/escape/parameter"
	"github.com/lixenwraith/escape/status"
)

// StatusLines is the height of the status panel
const StatusLines = 2

// Settings are the viewer toggles read by the frame loop
type Settings struct {
	Multi     bool // Grid of candidates instead of candidate 0
	Draw      bool // Draw games; off leaves only the panel
	Panel     bool // Status panel visible
	FrameSkip bool // Run FrameSkipTicks ticks per frame
	Slow      bool // Sleep SlowModeDelay after every tick
}

// DefaultSettings draws a single game with the panel on
func DefaultSettings() Settings {
	return Settings{Draw: true, Panel: true}
}

// Viewer renders the controller state; all methods run on the simulation goroutine
type Viewer struct {
	screen      tcell.Screen
	ctrl        *engine.Controller
	board       *status.Board
	settings    Settings
	gamesPerRow int
}

// NewViewer binds a screen to a controller and board
func NewViewer(screen tcell.Screen, ctrl *engine.Controller, board *status.Board, settings Settings, gamesPerRow int) *Viewer {
	if gamesPerRow <= 0 {
		gamesPerRow = parameter.GamesPerRow
	}
	return &Viewer{
		screen:      screen,
		ctrl:        ctrl,
		board:       board,
		settings:    settings,
		gamesPerRow: gamesPerRow,
	}
}

// Settings returns the current toggles
func (v *Viewer) Settings() Settings {
	return v.settings
}

// Draw renders one frame and shows it
func (v *Viewer) Draw() {
	v.screen.SetStyle(styleBackground)
	v.screen.Clear()

	width, height := v.screen.Size()
	gameHeight := height
	if v.settings.Panel {
		gameHeight -= StatusLines
	}

	if v.settings.Draw && gameHeight > 0 {
		snaps := v.ctrl.Snapshots()
		if v.settings.Multi {
			v.drawGrid(snaps, width, gameHeight)
		} else if len(snaps) > 0 {
			v.drawGame(0, 0, snaps[0])
		}
	}

	if v.settings.Panel && height >= StatusLines {
		v.drawStatus(width, height-StatusLines)
	}

	v.screen.Show()
}

// GridCapacity returns how many games fit in a width x height area
func GridCapacity(levelW, levelH, width, height, gamesPerRow int) (cols, rows int) {
	pad := parameter.GameGridPadding
	cols = min(gamesPerRow, (width+pad)/(levelW+pad))
	rows = (height + pad) / (levelH + pad)
	return max(cols, 0), max(rows, 0)
}

func (v *Viewer) drawGrid(snaps []game.Snapshot, width, height int) {
	level := v.ctrl.Context().Level
	lw, lh := level.Size()
	cols, rows := GridCapacity(lw, lh, width, height, v.gamesPerRow)
	if cols == 0 || rows == 0 {
		return
	}

	pad := parameter.GameGridPadding
	n := min(len(snaps), cols*rows)
	for i := 0; i < n; i++ {
		ox := (i % cols) * (lw + pad)
		oy := (i / cols) * (lh + pad)
		v.drawGame(ox, oy, snaps[i])
	}
}

// drawGame draws one candidate with its top-left corner at (ox, oy)
func (v *Viewer) drawGame(ox, oy int, s game.Snapshot) {
	level := v.ctrl.Context().Level
	lw, lh := level.Size()

	base := styleBackground
	if s.Complete {
		base = base.Background(RgbCompleteBg)
	}

	for y := 0; y < lh; y++ {
		for x := 0; x < lw; x++ {
			r, style := tileGlyph(level, core.Point{X: x, Y: y}, s, base)
			v.screen.SetContent(ox+x, oy+y, r, nil, style)
		}
	}

	for _, h := range s.Hazards {
		r, ok := HazardRune(h)
		if !ok {
			continue
		}
		v.screen.SetContent(ox+h.Pos.X, oy+h.Pos.Y, r, nil, hazardStyle(h, base))
	}

	if !s.Dead {
		fg := RgbAgent
		if s.KeyCollected {
			fg = RgbAgentKey
		}
		v.screen.SetContent(ox+s.Pos.X, oy+s.Pos.Y, '@', nil, base.Foreground(fg).Bold(true))
	}
}

// tileGlyph returns the static tile at p; key and door hide once the key is collected
func tileGlyph(level *maze.Level, p core.Point, s game.Snapshot, base tcell.Style) (rune, tcell.Style) {
	_, bg, _ := base.Decompose()
	switch {
	case level.IsWall(p):
		return '█', styleWall.Background(bg)
	case p == level.Key() && !s.KeyCollected:
		return 'K', styleKey.Background(bg)
	case level.IsDoor(p) && !s.KeyCollected:
		return 'D', styleDoor.Background(bg)
	default:
		return '·', styleFloor.Background(bg)
	}
}

// HazardRune returns the glyph for a live hazard; blank spikes have none
func HazardRune(h hazard.Hazard) (rune, bool) {
	if h.Kind == maze.HazardPatrol {
		switch h.Heading() {
		case core.Up:
			return '▲', true
		case core.Left:
			return '◀', true
		case core.Down:
			return '▼', true
		default:
			return '▶', true
		}
	}

	// Rotators alternate glyphs every 45 degrees
	spin := int(h.Rotator.Phase/45)%2 == 1
	switch h.Variant {
	case parameter.HazardSmallSpike:
		if spin {
			return '×', true
		}
		return '+', true
	case parameter.HazardLargeSpike:
		if spin {
			return '✖', true
		}
		return '✚', true
	default:
		return 0, false
	}
}

func hazardStyle(h hazard.Hazard, base tcell.Style) tcell.Style {
	if h.Kind == maze.HazardPatrol {
		return base.Foreground(RgbPatrol).Bold(true)
	}
	return base.Foreground(RgbSpike)
}
