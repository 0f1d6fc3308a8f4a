package resource

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/escape/maze"
	"github.com/lixenwraith/escape/navigation"
	"github.com/lixenwraith/escape/parameter"
)

// ErrNilLevel is returned when a context is built without a level
var ErrNilLevel = errors.New("resource: nil level")

// Tunables are the run-wide evolution settings
type Tunables struct {
	PopulationSize      int
	FrameBudget         int
	Workers             int
	MutationProbability float64 // Per-mille per frame
	RetentionRate       float64 // Percent of population
	ExplorationRate     float64 // Percent of population
	WeightScale         float64
	Threshold           float64
}

// DefaultTunables returns the compiled-in settings
func DefaultTunables() Tunables {
	return Tunables{
		PopulationSize:      parameter.GAPopulationSize,
		FrameBudget:         parameter.GAFrameBudget,
		Workers:             parameter.GAWorkers,
		MutationProbability: parameter.GAMutationProbability,
		RetentionRate:       parameter.GARetentionRate,
		ExplorationRate:     parameter.GAExplorationRate,
		WeightScale:         parameter.GAWeightScale,
		Threshold:           parameter.GAFitnessThreshold,
	}
}

// Context is the read-only state shared by every candidate of a run
// Built once before simulation starts and never mutated afterward
type Context struct {
	Level    *maze.Level
	Fields   *navigation.Fields
	Tunables Tunables
}

// New solves both distance fields for level and bundles them with the tunables
func New(level *maze.Level, t Tunables) (*Context, error) {
	if level == nil {
		return nil, ErrNilLevel
	}
	if t.FrameBudget < 1 {
		return nil, fmt.Errorf("resource: frame budget %d < 1", t.FrameBudget)
	}
	if t.PopulationSize < 1 {
		return nil, fmt.Errorf("resource: population size %d < 1", t.PopulationSize)
	}
	if t.Workers < 1 {
		t.Workers = 1
	}
	if t.WeightScale <= 0 {
		t.WeightScale = parameter.GAWeightScale
	}

	return &Context{
		Level:    level,
		Fields:   navigation.NewFields(level),
		Tunables: t,
	}, nil
}

// FrameBudget is shorthand for Tunables.FrameBudget
func (c *Context) FrameBudget() int {
	return c.Tunables.FrameBudget
}
