package population

import (
	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/game"
	"github.com/lixenwraith/escape/genetic"
)

// Summary aggregates a scored generation
type Summary struct {
	genetic.PoolStats[float64]
	Completed  int
	KeyHolders int
	Dead       int
}

// Summary reports score statistics from cached fitness and outcome counts
// Call after Score for meaningful score fields
func (p *Population) Summary() Summary {
	scores := make([]float64, len(p.games))
	seqs := make([]game.Sequence, len(p.games))

	var s Summary
	for i, g := range p.games {
		scores[i] = g.Fitness
		seqs[i] = g.Moves()
		if g.Complete {
			s.Completed++
		}
		if g.KeyCollected {
			s.KeyHolders++
		}
		if g.Dead {
			s.Dead++
		}
	}

	s.PoolStats = genetic.ComputeStats(scores)
	s.Diversity = genetic.Diversity(seqs, core.DirectionCount)
	return s
}
