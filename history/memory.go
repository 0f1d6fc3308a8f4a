package history

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryStore keeps history for the lifetime of the process
type MemoryStore struct {
	mu          sync.RWMutex
	runs        map[string]Run
	order       []string
	generations map[string][]Generation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:        make(map[string]Run),
		generations: make(map[string][]Generation),
	}
}

func (s *MemoryStore) Init(context.Context) error {
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[run.ID]; !ok {
		s.order = append(s.order, run.ID)
	}
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Run, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.runs[id])
	}
	return out, nil
}

func (s *MemoryStore) AppendGeneration(_ context.Context, gen Generation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[gen.RunID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRun, gen.RunID)
	}
	s.generations[gen.RunID] = append(s.generations[gen.RunID], gen)
	return nil
}

func (s *MemoryStore) GetGenerations(_ context.Context, runID string) ([]Generation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gens, ok := s.generations[runID]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(gens), true, nil
}
