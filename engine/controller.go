package engine

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/escape/core"
	"github.com/lixenwraith/escape/game"
	"github.com/lixenwraith/escape/parameter"
	"github.com/lixenwraith/escape/population"
	"github.com/lixenwraith/escape/resource"
)

// Stats are the read-only loop counters
type Stats struct {
	Frame      int
	Generation int
}

// Report describes a finished generation, emitted before it is replaced
type Report struct {
	Generation int
	Mode       Mode
	Summary    population.Summary
	Best       game.Sequence
	FirstSolve bool          // First generation of the run with a completed candidate
	Elapsed    time.Duration // Unpaused run time of the generation
}

// Controller drives the frame loop over a population
// Tick must be called from a single goroutine; toggles are safe from any goroutine
type Controller struct {
	ctx *resource.Context
	rng *rand.Rand
	pop *population.Population

	frame      int
	generation int

	paused    atomic.Bool
	aiEnabled atomic.Bool
	mode      atomic.Uint32
	solved    bool

	clock *PausableClock
	hooks []func(Report)
}

// NewController creates a controller over a fresh random population
func NewController(ctx *resource.Context, rng *rand.Rand, mode Mode) *Controller {
	c := &Controller{
		ctx:        ctx,
		rng:        rng,
		pop:        population.New(ctx, rng),
		generation: parameter.FirstGeneration,
		clock:      NewPausableClock(nil),
	}
	c.aiEnabled.Store(true)
	c.mode.Store(uint32(mode))
	return c
}

// OnGeneration registers a hook called with every generation report
func (c *Controller) OnGeneration(fn func(Report)) {
	c.hooks = append(c.hooks, fn)
}

// Tick advances the loop by one frame
// Paused: no-op returning the last stats
func (c *Controller) Tick() (Stats, error) {
	if c.paused.Load() {
		return c.Stats(), nil
	}

	ai := c.aiEnabled.Load()
	if ai {
		c.pop.Step(c.frame)
	}
	c.frame++

	if c.frame >= c.ctx.FrameBudget() && ai {
		if err := c.nextGeneration(); err != nil {
			return c.Stats(), err
		}
	}
	return c.Stats(), nil
}

func (c *Controller) nextGeneration() error {
	mode := c.Mode()

	if err := c.pop.Score(); err != nil {
		return fmt.Errorf("generation %d: %w", c.generation, err)
	}

	summary := c.pop.Summary()
	report := Report{
		Generation: c.generation,
		Mode:       mode,
		Summary:    summary,
		Best:       c.pop.Best(),
		FirstSolve: !c.solved && summary.Completed > 0,
		Elapsed:    c.clock.Elapsed(),
	}
	if summary.Completed > 0 {
		c.solved = true
	}

	switch mode {
	case ModeRandom:
		c.pop.Reset()
	default:
		if err := c.pop.Evolve(); err != nil {
			return fmt.Errorf("generation %d: %w", c.generation, err)
		}
	}

	c.frame = 0
	c.generation++
	c.clock.Reset()

	for _, fn := range c.hooks {
		fn(report)
	}
	return nil
}

// Stats returns the current frame and generation
func (c *Controller) Stats() Stats {
	return Stats{Frame: c.frame, Generation: c.generation}
}

// SetPaused sets the global pause flag
func (c *Controller) SetPaused(paused bool) {
	c.paused.Store(paused)
	if paused {
		c.clock.Pause()
	} else {
		c.clock.Resume()
	}
}

// TogglePause flips pause and returns the new state
func (c *Controller) TogglePause() bool {
	paused := !c.paused.Load()
	c.SetPaused(paused)
	return paused
}

// Paused reports the pause flag
func (c *Controller) Paused() bool {
	return c.paused.Load()
}

// SetAIEnabled toggles automatic stepping and generation turnover
func (c *Controller) SetAIEnabled(enabled bool) {
	c.aiEnabled.Store(enabled)
}

// AIEnabled reports whether candidates are stepped automatically
func (c *Controller) AIEnabled() bool {
	return c.aiEnabled.Load()
}

// SetMode selects selective or random generation turnover
func (c *Controller) SetMode(m Mode) {
	c.mode.Store(uint32(m))
}

// Mode returns the turnover mode
func (c *Controller) Mode() Mode {
	return Mode(c.mode.Load())
}

// Restart replaces the population with fresh random candidates and resets the counters
func (c *Controller) Restart() {
	c.pop.Reset()
	c.frame = 0
	c.generation = parameter.FirstGeneration
	c.solved = false
	c.clock.Reset()
}

// ApplyManual drives candidate 0 with dir
func (c *Controller) ApplyManual(dir core.Direction) {
	c.pop.ApplyManual(dir)
}

// Snapshots returns the presentation view of every candidate
func (c *Controller) Snapshots() []game.Snapshot {
	return c.pop.Snapshots()
}

// Context returns the shared read-only run context
func (c *Controller) Context() *resource.Context {
	return c.ctx
}
