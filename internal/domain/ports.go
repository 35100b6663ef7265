package domain

// SurfaceOptions are the window attributes applied when a surface is
// created. They are applied together; a surface never appears with only
// some of them set.
type SurfaceOptions struct {
	Transparent   bool
	ClickThrough  bool
	Topmost       bool
	AllWorkspaces bool
}

// Surface is a drawing target for lanes. Implementations can be a real
// overlay window, a terminal preview, or a recorder in tests.
//
// Surfaces only mirror lane state. Sync must never block for longer than a
// short mutex hold because it is called from the engine's owner goroutine
// on every tick.
type Surface interface {
	Create(region Rect, opts SurfaceOptions) error
	Attach(v Visual)
	Detach(id LaneID)
	Sync(id LaneID, rect Rect)
	Destroy() error
}

// TickSource invokes a callback at a fixed cadence. Stop must not return
// while a callback is still running, and no callback may start after it
// returns.
type TickSource interface {
	Start(tick func())
	Stop()
}

// Cue signals the arrival of a new comment, e.g. with a short sound.
// Ring must not block.
type Cue interface {
	Ring()
}
