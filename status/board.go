package status

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/escape/engine"
)

// Board holds live run metrics
// The simulation goroutine writes, the viewer reads; every field is lock-free
type Board struct {
	Frame      atomic.Int64
	Generation atomic.Int64

	Population atomic.Int64
	Completed  atomic.Int64
	KeyHolders atomic.Int64
	Dead       atomic.Int64

	Best      AtomicFloat
	Mean      AtomicFloat
	Diversity AtomicFloat
	BestEver  AtomicFloat

	SolvedAt       atomic.Int64 // First generation with a completed candidate, 0 if none yet
	GenerationTime atomic.Int64 // Nanoseconds

	Paused    atomic.Bool
	AIEnabled atomic.Bool
	Mode      AtomicString
}

// View is a plain copy of the board for one frame of presentation
type View struct {
	Frame, Generation                      int
	Population, Completed, KeyHolders, Dead int
	Best, Mean, Diversity, BestEver         float64
	SolvedAt                                int
	GenerationTime                          time.Duration
	Paused, AIEnabled                       bool
	Mode                                    string
}

// NewBoard creates a board with AI enabled
func NewBoard() *Board {
	b := &Board{}
	b.AIEnabled.Store(true)
	b.Mode.Store(engine.ModeSelective.String())
	return b
}

// SetStats records the loop counters
func (b *Board) SetStats(s engine.Stats) {
	b.Frame.Store(int64(s.Frame))
	b.Generation.Store(int64(s.Generation))
}

// SetControls mirrors the controller toggles
func (b *Board) SetControls(c *engine.Controller) {
	b.Paused.Store(c.Paused())
	b.AIEnabled.Store(c.AIEnabled())
	b.Mode.Store(c.Mode().String())
}

// Publish records a finished generation; usable as an engine.Controller hook
func (b *Board) Publish(r engine.Report) {
	s := r.Summary
	b.Population.Store(int64(s.Size))
	b.Completed.Store(int64(s.Completed))
	b.KeyHolders.Store(int64(s.KeyHolders))
	b.Dead.Store(int64(s.Dead))
	b.Best.Set(s.BestScore)
	b.Mean.Set(s.AverageScore)
	b.Diversity.Set(s.Diversity)
	b.BestEver.Max(s.BestScore)
	b.GenerationTime.Store(int64(r.Elapsed))
	b.Mode.Store(r.Mode.String())

	if r.FirstSolve {
		b.SolvedAt.CompareAndSwap(0, int64(r.Generation))
	}
}

// Reset clears generation results, keeping toggles
func (b *Board) Reset() {
	b.Frame.Store(0)
	b.Generation.Store(0)
	b.Population.Store(0)
	b.Completed.Store(0)
	b.KeyHolders.Store(0)
	b.Dead.Store(0)
	b.Best.Set(0)
	b.Mean.Set(0)
	b.Diversity.Set(0)
	b.BestEver.Set(0)
	b.SolvedAt.Store(0)
	b.GenerationTime.Store(0)
}

// View loads every field
func (b *Board) View() View {
	return View{
		Frame:          int(b.Frame.Load()),
		Generation:     int(b.Generation.Load()),
		Population:     int(b.Population.Load()),
		Completed:      int(b.Completed.Load()),
		KeyHolders:     int(b.KeyHolders.Load()),
		Dead:           int(b.Dead.Load()),
		Best:           b.Best.Get(),
		Mean:           b.Mean.Get(),
		Diversity:      b.Diversity.Get(),
		BestEver:       b.BestEver.Get(),
		SolvedAt:       int(b.SolvedAt.Load()),
		GenerationTime: time.Duration(b.GenerationTime.Load()),
		Paused:         b.Paused.Load(),
		AIEnabled:      b.AIEnabled.Load(),
		Mode:           b.Mode.Load(),
	}
}
