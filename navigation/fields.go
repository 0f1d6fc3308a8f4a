package navigation

import (
	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/maze"
)

// Fields holds the two fitness landscapes of a level
// Computed once per level and shared read-only by every candidate
type Fields struct {
	Key  *DistanceField
	Door *DistanceField
}

// NewFields solves the key-rooted and door-rooted fields of level
// Only walls block; the door tile itself is walkable for the fill
func NewFields(level *maze.Level) *Fields {
	w, h := level.Size()
	blocked := func(p core.Point) bool { return level.IsWall(p) }

	return &Fields{
		Key:  Solve(w, h, level.Key(), blocked),
		Door: Solve(w, h, level.Door(), blocked),
	}
}

// KeyDistance returns the key-rooted distance at p
func (f *Fields) KeyDistance(p core.Point) (int, bool) {
	return f.Key.Get(p)
}

// DoorDistance returns the door-rooted distance at p
func (f *Fields) DoorDistance(p core.Point) (int, bool) {
	return f.Door.Get(p)
}

// KeyEstimate returns the key distance at p, manhattan-based when unreachable
func (f *Fields) KeyEstimate(p core.Point) int {
	return f.Key.Estimate(p)
}

// DoorEstimate returns the door distance at p, manhattan-based when unreachable
func (f *Fields) DoorEstimate(p core.Point) int {
	return f.Door.Estimate(p)
}
