package hazard

import (
	"math"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/maze"
	"github.com/lixenwraith/escape/parameter"
)

// Axis is the line a patrol moves along
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Blocker reports whether a hazard may not enter p
type Blocker interface {
	Blocked(p core.Point) bool
}

// Patrol walks back and forth along one axis, reversing on contact
type Patrol struct {
	Axis    Axis
	Forward bool
}

// Rotator spins in place; Phase is presentation-only
type Rotator struct {
	Phase float64 // Degrees in [0, 360)
}

// Hazard is a tagged union over Patrol and Rotator
// Exactly one of Patrol / Rotator is meaningful, selected by Kind
type Hazard struct {
	Pos     core.Point
	Kind    maze.HazardKind
	Variant uint32

	Patrol  Patrol
	Rotator Rotator
}

// FromSpawn builds the initial hazard state for a level descriptor
func FromSpawn(s maze.HazardSpawn) Hazard {
	h := Hazard{
		Pos:     s.Pos,
		Kind:    s.Kind,
		Variant: s.Variant,
	}

	if s.Kind == maze.HazardPatrol {
		h.Patrol.Axis = AxisHorizontal
		if s.Variant == parameter.HazardVerticalPatrol {
			h.Patrol.Axis = AxisVertical
		}
	}
	return h
}

// Step advances the hazard by one frame
func (h *Hazard) Step(b Blocker) {
	switch h.Kind {
	case maze.HazardPatrol:
		h.stepPatrol(b)
	case maze.HazardRotator:
		h.Rotator.Phase = math.Mod(h.Rotator.Phase+parameter.RotatorStepDegrees, parameter.RotatorFullTurn)
	}
}

// heading returns the patrol unit step for its current direction
// Vertical: forward is down. Horizontal: forward is left.
func (p Patrol) heading() core.Point {
	if p.Axis == AxisVertical {
		if p.Forward {
			return core.Down.Offset()
		}
		return core.Up.Offset()
	}
	if p.Forward {
		return core.Left.Offset()
	}
	return core.Right.Offset()
}

func (h *Hazard) stepPatrol(b Blocker) {
	step := h.Patrol.heading()
	next := h.Pos.Add(step)

	if !b.Blocked(next) {
		h.Pos = next
		return
	}

	// Reverse: undo the blocked step and take one in the new direction
	h.Patrol.Forward = !h.Patrol.Forward
	back := next.Sub(step).Sub(step)
	if b.Blocked(back) {
		return
	}
	h.Pos = back
}

// Heading returns the patrol direction as a move command, Up for rotators
func (h *Hazard) Heading() core.Direction {
	if h.Kind != maze.HazardPatrol {
		return core.Up
	}
	switch h.Patrol.heading() {
	case core.Down.Offset():
		return core.Down
	case core.Left.Offset():
		return core.Left
	case core.Right.Offset():
		return core.Right
	default:
		return core.Up
	}
}
