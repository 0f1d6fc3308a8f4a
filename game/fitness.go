package game

import (
	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/navigation"
	"github.com/lixenwraith/escape/parameter"
)

// Score computes the candidate's fitness from its final state and caches it
//
// Regimes, in precedence order:
//  1. complete: (F-k+1)*20 + (F-d+1)*20 + 2*threshold
//  2. no key:   1000 / keyDistance
//  3. key held: 10 + F/k + 1000/doorDistance + 1000
//
// A position outside a field is scored by its manhattan estimate instead.
func (g *Game) Score(fields *navigation.Fields) float64 {
	g.Fitness = Fitness(g.State(), g.ctx.Tunables.FrameBudget, g.ctx.Tunables.Threshold, fields)
	return g.Fitness
}

// State is the part of a candidate fitness depends on
type State struct {
	Pos          core.Point
	KeyCollected bool
	Complete     bool
	StepsToKey   int
	StepsToDoor  int
}

// State returns the fitness-relevant state
func (g *Game) State() State {
	return State{
		Pos:          g.Pos,
		KeyCollected: g.KeyCollected,
		Complete:     g.Complete,
		StepsToKey:   g.StepsToKey,
		StepsToDoor:  g.StepsToDoor,
	}
}

// Fitness is the pure three-regime fitness function
func Fitness(s State, budget int, threshold float64, fields *navigation.Fields) float64 {
	f := float64(budget)

	if s.Complete {
		keyTerm := (f - float64(s.StepsToKey) + 1) * parameter.GAFitnessStepWeight
		doorTerm := (f - float64(s.StepsToDoor) + 1) * parameter.GAFitnessStepWeight
		return keyTerm + doorTerm + 2*threshold
	}

	if !s.KeyCollected {
		return inverse(fields.KeyEstimate(s.Pos))
	}

	speed := 0.0
	if s.StepsToKey > 0 {
		speed = f / float64(s.StepsToKey)
	}
	return parameter.GAFitnessKeyBase + speed + inverse(fields.DoorEstimate(s.Pos)) + parameter.GAFitnessKeyBonus
}

func inverse(d int) float64 {
	if d <= 0 {
		return 0
	}
	return parameter.GAFitnessDistanceScale / float64(d)
}
