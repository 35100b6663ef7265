// Package scheduler owns the collection of comment lanes and advances them
// on each tick.
//
// A Scheduler is not safe for concurrent use. It is meant to live on a
// single owner goroutine (see the engine package) which serializes ticks
// with registrations and removals.
package scheduler

import (
	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/lane"
	"github.com/hammamikhairi/commentscreen/internal/logger"
	"github.com/hammamikhairi/commentscreen/internal/storage"
)

// Defaults match the stock overlay configuration.
const (
	DefaultLaneWidth  = 400
	DefaultLaneHeight = 60
	DefaultSpeed      = 10
)

// Option configures the scheduler.
type Option func(*Scheduler)

// WithLaneSize sets the width and height of new lanes.
func WithLaneSize(width, height int) Option {
	return func(s *Scheduler) {
		if width > 0 {
			s.laneWidth = width
		}
		if height > 0 {
			s.laneHeight = height
		}
	}
}

// WithSpeed sets the scroll speed of new lanes in pixels per tick.
func WithSpeed(px int) Option {
	return func(s *Scheduler) {
		s.speed = px
	}
}

// WithWrapPolicy sets the policy applied to new lanes.
func WithWrapPolicy(p domain.WrapPolicy) Option {
	return func(s *Scheduler) {
		s.policy = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(s *Scheduler) {
		s.log = log
	}
}

// TickResult reports the lanes whose wrap policy fired during a tick.
type TickResult struct {
	Wrapped []domain.LaneID
	Removed []domain.LaneID
}

// Scheduler advances every active lane in lockstep.
type Scheduler struct {
	bounds     domain.Rect
	laneWidth  int
	laneHeight int
	speed      int
	policy     domain.WrapPolicy
	log        *logger.Logger

	lanes *storage.LaneStore
	ticks uint64
}

// New creates a scheduler for a surface with the given bounds.
func New(bounds domain.Rect, opts ...Option) *Scheduler {
	s := &Scheduler{
		bounds:     bounds,
		laneWidth:  DefaultLaneWidth,
		laneHeight: DefaultLaneHeight,
		speed:      DefaultSpeed,
		policy:     domain.WrapLoop,
		log:        logger.New(logger.LevelOff, nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lanes = storage.NewLaneStore(s.log)
	return s
}

// Bounds returns the surface bounds the scheduler lays lanes out in.
func (s *Scheduler) Bounds() domain.Rect { return s.bounds }

// Ticks returns how many ticks have run.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Register creates a lane at the right edge of the surface, stacked below
// every lane that is still active, and returns it.
func (s *Scheduler) Register(text string, style domain.Style) *lane.Lane {
	offset := 0
	for _, l := range s.lanes.List() {
		offset += l.Rect().Height
	}

	rect := domain.Rect{
		X:      s.bounds.Width - s.laneWidth,
		Y:      s.bounds.Height - offset - s.laneHeight,
		Width:  s.laneWidth,
		Height: s.laneHeight,
	}

	l := lane.New(laneIDs.next(), text, style, rect, s.speed, s.policy)
	// IDs are unique by construction, so Put cannot collide.
	_ = s.lanes.Put(l)
	s.log.Debug("registered %s at %s (%s)", l.ID(), rect, s.policy)
	return l
}

// Unregister removes a lane. Unknown ids are ignored because a one-shot
// lane may already have been removed by a tick; it reports whether a lane
// was removed.
func (s *Scheduler) Unregister(id domain.LaneID) bool {
	l, err := s.lanes.Get(id)
	if err != nil {
		return false
	}
	l.Deactivate()
	_ = s.lanes.Delete(id)
	s.log.Debug("unregistered %s", id)
	return true
}

// Tick advances every active lane once and then applies wrap policies.
//
// The set of lanes is fixed when the tick starts. All lanes are advanced
// before any policy is evaluated, so no lane observes another lane's
// post-tick state within the same tick.
func (s *Scheduler) Tick() TickResult {
	s.ticks++
	current := s.lanes.List()

	for _, l := range current {
		l.Advance(1)
	}

	var res TickResult
	for _, l := range current {
		if !l.IsFullyOffscreen() {
			continue
		}
		switch l.Policy() {
		case domain.WrapOneShot:
			l.Deactivate()
			_ = s.lanes.Delete(l.ID())
			res.Removed = append(res.Removed, l.ID())
		default:
			l.ResetToRightEdge(s.bounds.Width)
			res.Wrapped = append(res.Wrapped, l.ID())
		}
	}

	if len(res.Wrapped) > 0 || len(res.Removed) > 0 {
		s.log.Debug("tick %d: wrapped=%v removed=%v", s.ticks, res.Wrapped, res.Removed)
	}
	return res
}

// Get returns the lane with the given id.
func (s *Scheduler) Get(id domain.LaneID) (*lane.Lane, error) {
	return s.lanes.Get(id)
}

// Lanes returns copies of the active lanes in stacking order.
func (s *Scheduler) Lanes() []lane.Lane {
	list := s.lanes.List()
	out := make([]lane.Lane, len(list))
	for i, l := range list {
		out[i] = *l
	}
	return out
}

// Len returns the number of active lanes.
func (s *Scheduler) Len() int { return s.lanes.Len() }

// Clear deactivates and drops every lane, returning their ids.
func (s *Scheduler) Clear() []domain.LaneID {
	list := s.lanes.List()
	ids := make([]domain.LaneID, len(list))
	for i, l := range list {
		l.Deactivate()
		ids[i] = l.ID()
	}
	s.lanes.Clear()
	return ids
}
