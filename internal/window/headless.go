//go:build headless

package window

import (
	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/logger"
)

// Compile-time interface check.
var _ domain.Surface = (*Window)(nil)

// Window is unavailable in headless builds.
type Window struct {
	log *logger.Logger
}

// New creates a stub window.
func New(log *logger.Logger) *Window { return &Window{log: log} }

// ScreenBounds always reports ErrPlatformUnavailable.
func (w *Window) ScreenBounds() (domain.Rect, error) {
	return domain.Rect{}, domain.ErrPlatformUnavailable
}

// Create always reports ErrPlatformUnavailable.
func (w *Window) Create(domain.Rect, domain.SurfaceOptions) error {
	w.log.Debug("headless build: no overlay window")
	return domain.ErrPlatformUnavailable
}

// Run always reports ErrPlatformUnavailable.
func (w *Window) Run() error { return domain.ErrPlatformUnavailable }

// Attach does nothing.
func (w *Window) Attach(domain.Visual) {}

// Detach does nothing.
func (w *Window) Detach(domain.LaneID) {}

// Sync does nothing.
func (w *Window) Sync(domain.LaneID, domain.Rect) {}

// Destroy does nothing.
func (w *Window) Destroy() error { return nil }
