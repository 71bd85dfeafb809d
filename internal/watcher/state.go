package watcher

import (
	"sync"

	"deskflow/internal/domain"
)

// State holds the client's shared view: the latest window observation and
// snapshot, the current category summary, and the derived score. Each value
// has exactly one writer component and every update is a whole-value
// replacement, so last completion wins and no value is ever merged.
// Getters hand out copies of map/slice state; readers never alias the
// writer's data.
type State struct {
	mu          sync.RWMutex
	observation domain.WindowObservation
	snapshot    domain.WindowSnapshot
	summary     domain.CategorySummary
	score       domain.ProductivityScore
}

func NewState() *State {
	return &State{summary: domain.CategorySummary{}}
}

func (s *State) SetObservation(obs domain.WindowObservation) {
	s.mu.Lock()
	s.observation = obs
	s.mu.Unlock()
}

func (s *State) Observation() domain.WindowObservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.observation
}

func (s *State) SetSnapshot(snap domain.WindowSnapshot) {
	copied := make(domain.WindowSnapshot, len(snap))
	copy(copied, snap)
	s.mu.Lock()
	s.snapshot = copied
	s.mu.Unlock()
}

func (s *State) Snapshot() domain.WindowSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make(domain.WindowSnapshot, len(s.snapshot))
	copy(copied, s.snapshot)
	return copied
}

func (s *State) SetSummary(summary domain.CategorySummary) {
	copied := summary.Clone()
	s.mu.Lock()
	s.summary = copied
	s.mu.Unlock()
}

func (s *State) Summary() domain.CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary.Clone()
}

func (s *State) SetScore(score domain.ProductivityScore) {
	s.mu.Lock()
	s.score = score
	s.mu.Unlock()
}

func (s *State) Score() domain.ProductivityScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}
