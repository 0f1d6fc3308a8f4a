package population

import (
	"fmt"
	"math/rand/v2"

	"github.com/sourcegraph/conc/pool"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/game"
	"github.com/lixenwraith/escape/genetic"
	"github.com/lixenwraith/escape/resource"
)

// Population owns the N candidates of the current generation
type Population struct {
	ctx   *resource.Context
	rng   *rand.Rand
	games []*game.Game

	scores  []float64
	sampler genetic.Selector

	combiner genetic.Combiner[game.Sequence]
	mutator  genetic.Perturbator[game.Sequence]
}

// New creates a population of random candidates
func New(ctx *resource.Context, rng *rand.Rand) *Population {
	if ctx == nil {
		panic("population: nil context")
	}
	p := &Population{
		ctx:      ctx,
		rng:      rng,
		combiner: genetic.SinglePointCombiner[game.Sequence, core.Direction]{},
		mutator:  &genetic.RandomResetPerturbator[game.Sequence, core.Direction]{Allele: game.RandomDirection},
	}
	p.Reset()
	return p
}

// Size returns the number of candidates
func (p *Population) Size() int {
	return len(p.games)
}

// Game returns candidate i
func (p *Population) Game(i int) *game.Game {
	return p.games[i]
}

// Step advances every candidate one frame
// With more than one worker the population is sharded across a bounded pool
// and Step returns only after every shard finished
func (p *Population) Step(frame int) {
	workers := p.ctx.Tunables.Workers
	n := len(p.games)

	if workers <= 1 || n < 2*workers {
		for _, g := range p.games {
			g.Step(frame)
		}
		return
	}

	wp := pool.New().WithMaxGoroutines(workers)
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		shard := p.games[start:min(start+chunk, n)]
		wp.Go(func() {
			for _, g := range shard {
				g.Step(frame)
			}
		})
	}
	wp.Wait()
}

// Score computes every candidate's fitness and builds the parent sampler
// Weights are normalized to [0, WeightScale] by the best fitness
func (p *Population) Score() error {
	p.scores = make([]float64, len(p.games))
	for i, g := range p.games {
		p.scores[i] = g.Score(p.ctx.Fields)
	}

	weights := genetic.Normalize(p.scores, p.ctx.Tunables.WeightScale)
	sampler, err := genetic.NewWeightedSampler(weights)
	if err != nil {
		p.sampler = nil
		return fmt.Errorf("population: build sampler: %w", err)
	}
	p.sampler = sampler
	return nil
}

// Counts partitions n into retained, exploratory and children
// Percentages truncate, children absorb the remainder
func Counts(n int, retentionRate, explorationRate float64) (retained, exploratory, children int) {
	retained = int(float64(n) * retentionRate / 100)
	exploratory = int(float64(n) * explorationRate / 100)

	retained = max(0, min(retained, n))
	exploratory = max(0, min(exploratory, n-retained))
	children = n - retained - exploratory
	return retained, exploratory, children
}

// Evolve replaces the population with the next generation
// Order: retained elites, fresh random candidates, crossover children
func (p *Population) Evolve() error {
	if p.sampler == nil {
		if err := p.Score(); err != nil {
			return err
		}
	}

	t := p.ctx.Tunables
	n := len(p.games)
	retained, exploratory, children := Counts(n, t.RetentionRate, t.ExplorationRate)

	next := make([]*game.Game, 0, n)

	order := genetic.RankDescending(p.scores)
	for _, idx := range order[:retained] {
		next = append(next, game.New(p.ctx, p.games[idx].Moves()))
	}

	for i := 0; i < exploratory; i++ {
		next = append(next, game.NewRandom(p.ctx, p.rng))
	}

	rate := t.MutationProbability / 1000
	for i := 0; i < children; i++ {
		a := p.games[p.sampler.Sample(p.rng)].Moves()
		b := p.games[p.sampler.Sample(p.rng)].Moves()

		child := p.combiner.Combine(a, b, p.rng)
		p.mutator.Perturb(&child, rate, p.rng)
		next = append(next, game.New(p.ctx, child))
	}

	p.install(next)
	return nil
}

// Reset discards every candidate for fresh random ones
func (p *Population) Reset() {
	n := p.ctx.Tunables.PopulationSize
	next := make([]*game.Game, n)
	for i := range next {
		next[i] = game.NewRandom(p.ctx, p.rng)
	}
	p.install(next)
}

func (p *Population) install(games []*game.Game) {
	p.games = games
	p.scores = nil
	p.sampler = nil
}

// ApplyManual drives candidate 0 one frame with dir
func (p *Population) ApplyManual(dir core.Direction) {
	if len(p.games) == 0 {
		return
	}
	p.games[0].ApplyManual(dir)
}

// Best returns the sequence of the highest cached fitness, ties to the lowest index
func (p *Population) Best() game.Sequence {
	best := 0
	for i, g := range p.games {
		if g.Fitness > p.games[best].Fitness {
			best = i
		}
	}
	return p.games[best].Moves()
}

// Snapshots returns a read-only view of every candidate
func (p *Population) Snapshots() []game.Snapshot {
	out := make([]game.Snapshot, len(p.games))
	for i, g := range p.games {
		out[i] = g.Snapshot()
	}
	return out
}
