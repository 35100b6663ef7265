// Package engine implements the overlay engine: the public façade that
// brings up a display surface, owns the lane scheduler, and drives it from
// a tick source.
//
// All lane state lives on one owner goroutine per presented overlay.
// AddComment, RemoveComment, Lanes and every tick are marshaled onto it and
// run strictly one at a time, so lane rectangles are never touched
// concurrently.
package engine

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/lane"
	"github.com/hammamikhairi/commentscreen/internal/logger"
	"github.com/hammamikhairi/commentscreen/internal/scheduler"
)

// Option configures the engine.
type Option func(*Engine)

// WithLaneSize sets the size of every new lane.
func WithLaneSize(width, height int) Option {
	return func(e *Engine) {
		e.laneWidth = width
		e.laneHeight = height
	}
}

// WithScrollSpeed sets how many pixels a lane moves per tick.
func WithScrollSpeed(px int) Option {
	return func(e *Engine) {
		e.speed = px
	}
}

// WithWrapPolicy sets what happens to lanes that leave the screen.
func WithWrapPolicy(p domain.WrapPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithDefaultStyle sets the style used for zero fields of a comment style.
func WithDefaultStyle(s domain.Style) Option {
	return func(e *Engine) {
		e.defaultStyle = s.Merge(e.defaultStyle)
	}
}

// WithSurfaceOptions sets the window attributes requested at Present.
func WithSurfaceOptions(o domain.SurfaceOptions) Option {
	return func(e *Engine) {
		e.surfaceOpts = o
	}
}

// WithCue rings c every time a comment is added.
func WithCue(c domain.Cue) Option {
	return func(e *Engine) {
		e.cue = c
	}
}

// Engine is the overlay handle. The zero value is not usable; call New.
type Engine struct {
	surface domain.Surface
	ticks   domain.TickSource
	cue     domain.Cue
	log     *logger.Logger

	laneWidth    int
	laneHeight   int
	speed        int
	policy       domain.WrapPolicy
	defaultStyle domain.Style
	surfaceOpts  domain.SurfaceOptions

	life sync.Mutex // serializes Present and Shutdown
	mu   sync.Mutex // guards loop
	loop *ownerLoop // nil when not presented
}

// New creates an engine that draws on surface and animates on ticks.
// Nothing is shown until Present is called.
func New(surface domain.Surface, ticks domain.TickSource, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		surface:    surface,
		ticks:      ticks,
		log:        log,
		laneWidth:  scheduler.DefaultLaneWidth,
		laneHeight: scheduler.DefaultLaneHeight,
		speed:      scheduler.DefaultSpeed,
		policy:     domain.WrapLoop,
		defaultStyle: domain.Style{
			FontSize: 36,
			Color:    color.White,
		},
		surfaceOpts: domain.SurfaceOptions{
			Transparent:   true,
			ClickThrough:  true,
			Topmost:       true,
			AllWorkspaces: true,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Present creates the surface over region and starts animating.
// If the surface cannot be created the engine stays not presented.
func (e *Engine) Present(region domain.Rect) error {
	e.life.Lock()
	defer e.life.Unlock()

	if e.Presented() {
		return domain.ErrAlreadyPresented
	}
	if region.Empty() {
		return fmt.Errorf("presenting over %s: empty region", region)
	}

	if err := e.surface.Create(region, e.surfaceOpts); err != nil {
		return fmt.Errorf("creating surface: %w", err)
	}

	sched := scheduler.New(region,
		scheduler.WithLaneSize(e.laneWidth, e.laneHeight),
		scheduler.WithSpeed(e.speed),
		scheduler.WithWrapPolicy(e.policy),
		scheduler.WithLogger(e.log.Named("scheduler")),
	)
	l := newOwnerLoop(sched)
	go l.run()

	e.ticks.Start(func() {
		// Fails only once the loop is stopping; the tick is simply dropped.
		_ = l.do(func(s *scheduler.Scheduler) { e.tick(s) })
	})

	e.mu.Lock()
	e.loop = l
	e.mu.Unlock()
	e.log.Info("overlay presented over %s (wrap=%s, speed=%dpx/tick)", region, e.policy, e.speed)
	return nil
}

// Presented reports whether the overlay is currently up.
func (e *Engine) Presented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loop != nil
}

// AddComment starts a new lane for text and returns its id. Zero fields of
// style are filled from the default style.
func (e *Engine) AddComment(text string, style domain.Style) (domain.LaneID, error) {
	if strings.TrimSpace(text) == "" {
		return 0, domain.ErrEmptyComment
	}
	style = style.Merge(e.defaultStyle)

	var id domain.LaneID
	err := e.do(func(s *scheduler.Scheduler) {
		l := s.Register(text, style)
		e.surface.Attach(l.Visual())
		id = l.ID()
	})
	if err != nil {
		return 0, err
	}

	if e.cue != nil {
		e.cue.Ring()
	}
	e.log.Debug("added %s %q", id, text)
	return id, nil
}

// RemoveComment removes a lane. Unknown ids are ignored: a one-shot lane
// may already have been removed by the animation.
func (e *Engine) RemoveComment(id domain.LaneID) error {
	return e.do(func(s *scheduler.Scheduler) {
		if s.Unregister(id) {
			e.surface.Detach(id)
			e.log.Debug("removed %s", id)
		}
	})
}

// Lanes returns a snapshot of the active lanes in stacking order.
func (e *Engine) Lanes() ([]lane.Lane, error) {
	var out []lane.Lane
	err := e.do(func(s *scheduler.Scheduler) {
		out = s.Lanes()
	})
	return out, err
}

// Shutdown stops the animation, drops every lane and destroys the
// surface. No tick runs after Shutdown returns. Calling it when the
// overlay is not presented is a no-op.
func (e *Engine) Shutdown() error {
	e.life.Lock()
	defer e.life.Unlock()

	e.mu.Lock()
	l := e.loop
	e.loop = nil
	e.mu.Unlock()

	if l == nil {
		return nil
	}

	// Ticks marshal onto the loop, so the loop must outlive the ticker.
	e.ticks.Stop()
	l.stop()

	// The loop has exited; this goroutine is now the sole owner.
	for _, id := range l.sched.Clear() {
		e.surface.Detach(id)
	}
	if err := e.surface.Destroy(); err != nil {
		return fmt.Errorf("destroying surface: %w", err)
	}

	e.log.Info("overlay shut down after %d ticks", l.sched.Ticks())
	return nil
}

// tick runs on the owner goroutine.
func (e *Engine) tick(s *scheduler.Scheduler) {
	res := s.Tick()
	for _, id := range res.Removed {
		e.surface.Detach(id)
	}
	for _, l := range s.Lanes() {
		e.surface.Sync(l.ID(), l.Rect())
	}
}

func (e *Engine) do(fn func(*scheduler.Scheduler)) error {
	e.mu.Lock()
	l := e.loop
	e.mu.Unlock()

	if l == nil {
		return domain.ErrNotPresented
	}
	return l.do(fn)
}
