package results

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps runs in process memory. Useful for tests and for crack
// sessions that only print their results.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]Run
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runs == nil {
		s.runs = make(map[string]Run)
	}
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runs == nil {
		s.runs = make(map[string]Run)
	}
	s.runs[run.ID] = cloneRun(run)
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return Run{}, false, nil
	}
	return cloneRun(run), true, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, cloneRun(run))
	}
	slices.SortFunc(runs, func(a, b Run) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return runs, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func cloneRun(run Run) Run {
	run.RotorPool = slices.Clone(run.RotorPool)
	run.Configurations = slices.Clone(run.Configurations)
	for i := range run.Configurations {
		run.Configurations[i].Rotors = slices.Clone(run.Configurations[i].Rotors)
	}
	return run
}
