package game

import (
	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/hazard"
)

// Snapshot is a read-only view of a candidate for presentation
type Snapshot struct {
	Pos          core.Point
	Complete     bool
	Dead         bool
	KeyCollected bool
	StepsToKey   int
	StepsToDoor  int
	Fitness      float64
	Hazards      []hazard.Hazard
}

// Snapshot copies the candidate state, including its hazards
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Pos:          g.Pos,
		Complete:     g.Complete,
		Dead:         g.Dead,
		KeyCollected: g.KeyCollected,
		StepsToKey:   g.StepsToKey,
		StepsToDoor:  g.StepsToDoor,
		Fitness:      g.Fitness,
		Hazards:      g.hazards.Snapshot(),
	}
}
