package history

import (
	"context"
	"sync"

	"github.com/lixenwraith/escape/engine"
)

// Recorder appends controller reports to a store under one run
type Recorder struct {
	ctx   context.Context
	store Store
	runID string

	mu  sync.Mutex
	err error
}

// NewRecorder saves run and returns a recorder appending to it
func NewRecorder(ctx context.Context, store Store, run Run) (*Recorder, error) {
	if err := store.SaveRun(ctx, run); err != nil {
		return nil, err
	}
	return &Recorder{ctx: ctx, store: store, runID: run.ID}, nil
}

// FromReport converts a controller report into a generation record
func FromReport(runID string, r engine.Report) Generation {
	s := r.Summary
	return Generation{
		RunID:      runID,
		Index:      r.Generation,
		Mode:       r.Mode.String(),
		Best:       s.BestScore,
		Mean:       s.AverageScore,
		Worst:      s.WorstScore,
		Diversity:  s.Diversity,
		Completed:  s.Completed,
		KeyHolders: s.KeyHolders,
		Dead:       s.Dead,
		BestMoves:  r.Best.String(),
		Elapsed:    r.Elapsed,
	}
}

// Record is an engine.Controller hook
// The first store error is kept and later records are dropped
func (r *Recorder) Record(rep engine.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return
	}
	r.err = r.store.AppendGeneration(r.ctx, FromReport(r.runID, rep))
}

// Err returns the first store error
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// RunID returns the run being recorded
func (r *Recorder) RunID() string {
	return r.runID
}
