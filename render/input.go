package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/engine"
)

// Action tells the frame loop what to do after an event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
)

// HandleEvent applies a key or resize event to the controller and viewer
//
//	space      pause
//	tab        status panel
//	r          restart with a fresh population
//	backspace  slow mode
//	\          AI on/off
//	x          random (non-selective) turnover
//	f          frame skip
//	m          multi-game grid
//	v          draw games on/off
//	w a s d    move candidate 0 (arrow keys too)
//	q esc      quit
func (v *Viewer) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		return ActionNone
	case *tcell.EventKey:
		return v.handleKey(ev)
	default:
		return ActionNone
	}
}

func (v *Viewer) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyTab:
		v.settings.Panel = !v.settings.Panel
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.settings.Slow = !v.settings.Slow
	case tcell.KeyUp:
		v.ctrl.ApplyManual(core.Up)
	case tcell.KeyLeft:
		v.ctrl.ApplyManual(core.Left)
	case tcell.KeyDown:
		v.ctrl.ApplyManual(core.Down)
	case tcell.KeyRight:
		v.ctrl.ApplyManual(core.Right)
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return ActionNone
}

func (v *Viewer) handleRune(r rune) Action {
	switch r {
	case 'q', 'Q':
		return ActionQuit
	case ' ':
		v.ctrl.TogglePause()
	case 'r', 'R':
		v.ctrl.Restart()
		v.board.Reset()
	case '\\':
		v.ctrl.SetAIEnabled(!v.ctrl.AIEnabled())
	case 'x', 'X':
		if v.ctrl.Mode() == engine.ModeRandom {
			v.ctrl.SetMode(engine.ModeSelective)
		} else {
			v.ctrl.SetMode(engine.ModeRandom)
		}
	case 'f', 'F':
		v.settings.FrameSkip = !v.settings.FrameSkip
	case 'm', 'M':
		v.settings.Multi = !v.settings.Multi
	case 'v', 'V':
		v.settings.Draw = !v.settings.Draw
	case 'w', 'W':
		v.ctrl.ApplyManual(core.Up)
	case 'a', 'A':
		v.ctrl.ApplyManual(core.Left)
	case 's', 'S':
		v.ctrl.ApplyManual(core.Down)
	case 'd', 'D':
		v.ctrl.ApplyManual(core.Right)
	}
	v.board.SetControls(v.ctrl)
	return ActionNone
}
