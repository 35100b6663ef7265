package storage

import (
	"sync"

	"github.com/hammamikhairi/commentscreen/internal/domain"
)

// VisualSet is the render-side mirror of the lanes: what a surface draws.
// Writers are the engine's owner goroutine; readers are render loops.
// Safe for concurrent access.
type VisualSet struct {
	mu      sync.RWMutex
	visuals map[domain.LaneID]domain.Visual
	order   []domain.LaneID
}

// NewVisualSet creates an empty set.
func NewVisualSet() *VisualSet {
	return &VisualSet{visuals: make(map[domain.LaneID]domain.Visual)}
}

// Attach adds or replaces a visual. New visuals draw above older ones.
func (s *VisualSet) Attach(v domain.Visual) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.visuals[v.ID]; !ok {
		s.order = append(s.order, v.ID)
	}
	s.visuals[v.ID] = v
}

// Detach removes a visual. Unknown ids are ignored.
func (s *VisualSet) Detach(id domain.LaneID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.visuals[id]; !ok {
		return
	}
	delete(s.visuals, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Sync moves a visual. It reports false for unknown ids.
func (s *VisualSet) Sync(id domain.LaneID, rect domain.Rect) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visuals[id]
	if !ok {
		return false
	}
	v.Rect = rect
	s.visuals[id] = v
	return true
}

// Snapshot returns the visuals in draw order.
func (s *VisualSet) Snapshot() []domain.Visual {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Visual, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.visuals[id])
	}
	return out
}

// Len returns the number of visuals.
func (s *VisualSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Reset drops every visual.
func (s *VisualSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visuals = make(map[domain.LaneID]domain.Visual)
	s.order = nil
}
