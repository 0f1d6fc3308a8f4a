package game

import (
	"math/rand/v2"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/hazard"
	"github.com/lixenwraith/escape/resource"
)

// Game simulates one candidate: an agent driven by a fixed move sequence
type Game struct {
	ctx     *resource.Context
	moves   Sequence
	hazards *hazard.Set

	Pos          core.Point
	KeyCollected bool
	Complete     bool
	Dead         bool
	StepsToKey   int
	StepsToDoor  int
	Fitness      float64 // Cached by the last Score call
}

// New places an agent at the level spawn with a fresh hazard set
// The sequence is copied
func New(ctx *resource.Context, seq Sequence) *Game {
	if ctx == nil {
		panic("game: nil context")
	}

	moves := make(Sequence, len(seq))
	copy(moves, seq)

	return &Game{
		ctx:     ctx,
		moves:   moves,
		hazards: hazard.NewSet(ctx.Level.Hazards()),
		Pos:     ctx.Level.Spawn(),
	}
}

// NewRandom creates a candidate with a uniform random sequence of frame-budget length
func NewRandom(ctx *resource.Context, rng *rand.Rand) *Game {
	return New(ctx, RandomSequence(ctx.FrameBudget(), rng))
}

// Step advances the candidate one frame
func (g *Game) Step(frame int) {
	if g.Complete {
		return
	}
	if g.Dead {
		// Dying early never improves the score
		budget := g.ctx.FrameBudget()
		g.StepsToKey = budget
		g.StepsToDoor = budget
		return
	}

	g.StepsToDoor++
	if !g.KeyCollected {
		g.StepsToKey++
	}

	dest := g.Pos.Add(g.moves.At(frame).Offset())
	if g.CanEnter(dest) {
		g.Pos = dest
	}

	level := g.ctx.Level
	if g.hazards.Step(level, g.Pos) {
		g.Dead = true
		return
	}

	if g.Pos == level.Key() {
		g.KeyCollected = true
	}
	if g.KeyCollected && g.Pos == level.Door() {
		g.Complete = true
	}
}

// CanEnter reports whether the agent may move onto p
// The door acts as a wall until the key is collected
func (g *Game) CanEnter(p core.Point) bool {
	level := g.ctx.Level
	if level.Blocked(p) {
		return false
	}
	if level.IsDoor(p) && !g.KeyCollected {
		return false
	}
	return true
}

// Done reports whether further steps can change the candidate
func (g *Game) Done() bool {
	return g.Complete || g.Dead
}

// ApplyManual overwrites frame 0 with dir and steps it
func (g *Game) ApplyManual(dir core.Direction) {
	if len(g.moves) == 0 {
		g.moves = Sequence{dir}
	} else {
		g.moves[0] = dir
	}
	g.Step(0)
}

// Moves returns a copy of the sequence
func (g *Game) Moves() Sequence {
	out := make(Sequence, len(g.moves))
	copy(out, g.moves)
	return out
}

// Hazards returns the live hazard count
func (g *Game) Hazards() int {
	return g.hazards.Len()
}
