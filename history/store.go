package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotInitialized is returned by stores used before Init
	ErrNotInitialized = errors.New("history: store is not initialized")
	// ErrUnknownRun is returned when appending to a run that was never saved
	ErrUnknownRun = errors.New("history: unknown run")
)

// Run describes one invocation of the simulator
type Run struct {
	ID             string
	Started        time.Time
	Seed           uint64
	PopulationSize int
	FrameBudget    int
	Mode           string
	Level          string // Level in text format
}

// Generation is the record of one finished generation
type Generation struct {
	RunID      string
	Index      int
	Mode       string
	Best       float64
	Mean       float64
	Worst      float64
	Diversity  float64
	Completed  int
	KeyHolders int
	Dead       int
	BestMoves  string // U/L/D/R letters
	Elapsed    time.Duration
}

// Store persists run statistics
// Population state is never stored; runs cannot be resumed from history
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)
	AppendGeneration(ctx context.Context, gen Generation) error
	GetGenerations(ctx context.Context, runID string) ([]Generation, bool, error)
}

// NewRun creates a run record with a fresh ID
func NewRun(seed uint64, populationSize, frameBudget int, mode, level string) Run {
	return Run{
		ID:             uuid.New().String(),
		Started:        time.Now().UTC(),
		Seed:           seed,
		PopulationSize: populationSize,
		FrameBudget:    frameBudget,
		Mode:           mode,
		Level:          level,
	}
}
