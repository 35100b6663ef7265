// Package storage provides the in-memory lane collection and its
// render-side mirror.
package storage

import (
	"sync"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/lane"
	"github.com/hammamikhairi/commentscreen/internal/logger"
)

// LaneStore holds lanes keyed by id and remembers insertion order, which
// is also the stacking order. Safe for concurrent access.
type LaneStore struct {
	mu    sync.RWMutex
	lanes map[domain.LaneID]*lane.Lane
	order []domain.LaneID
	log   *logger.Logger
}

// NewLaneStore creates an empty lane store.
func NewLaneStore(log *logger.Logger) *LaneStore {
	return &LaneStore{
		lanes: make(map[domain.LaneID]*lane.Lane),
		log:   log,
	}
}

// Put adds a lane at the end of the order.
func (s *LaneStore) Put(l *lane.Lane) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lanes[l.ID()]; ok {
		return domain.ErrAlreadyExists
	}
	s.lanes[l.ID()] = l
	s.order = append(s.order, l.ID())
	s.log.Debug("stored %s (count=%d)", l.ID(), len(s.order))
	return nil
}

// Get retrieves a lane by id.
func (s *LaneStore) Get(id domain.LaneID) (*lane.Lane, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lanes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

// Delete removes a lane by id.
func (s *LaneStore) Delete(id domain.LaneID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lanes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.lanes, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.Debug("deleted %s", id)
	return nil
}

// IDs returns the ids in insertion order. The slice is a copy.
func (s *LaneStore) IDs() []domain.LaneID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LaneID, len(s.order))
	copy(out, s.order)
	return out
}

// List returns the lanes in insertion order.
func (s *LaneStore) List() []*lane.Lane {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*lane.Lane, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.lanes[id])
	}
	return out
}

// Len returns the number of stored lanes.
func (s *LaneStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Clear removes every lane.
func (s *LaneStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lanes = make(map[domain.LaneID]*lane.Lane)
	s.order = nil
}
