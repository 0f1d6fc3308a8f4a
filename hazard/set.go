package hazard

import (
	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/maze"
)

// Set is the hazard state owned by a single candidate
type Set struct {
	hazards []Hazard
}

// NewSet builds fresh hazard state from the level spawns
func NewSet(spawns []maze.HazardSpawn) *Set {
	s := &Set{hazards: make([]Hazard, len(spawns))}
	for i, sp := range spawns {
		s.hazards[i] = FromSpawn(sp)
	}
	return s
}

// Step advances every hazard one frame and reports whether any now occupies agent
func (s *Set) Step(b Blocker, agent core.Point) bool {
	for i := range s.hazards {
		s.hazards[i].Step(b)
	}
	return s.Collides(agent)
}

// Collides reports whether any hazard occupies p
func (s *Set) Collides(p core.Point) bool {
	for i := range s.hazards {
		if s.hazards[i].Pos == p {
			return true
		}
	}
	return false
}

// Len returns the number of hazards
func (s *Set) Len() int {
	return len(s.hazards)
}

// Snapshot returns a copy of the hazard states
func (s *Set) Snapshot() []Hazard {
	out := make([]Hazard, len(s.hazards))
	copy(out, s.hazards)
	return out
}
