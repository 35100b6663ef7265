//go:build !headless

package window

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/logger"
	"github.com/hammamikhairi/commentscreen/internal/storage"
)

// Compile-time interface check.
var _ domain.Surface = (*Window)(nil)

// Window is the Ebitengine overlay surface.
type Window struct {
	log     *logger.Logger
	visuals *storage.VisualSet

	mu      sync.RWMutex
	region  domain.Rect
	opts    domain.SurfaceOptions
	created bool
	source  *text.GoTextFaceSource
	faces   map[float64]*text.GoTextFace

	closing atomic.Bool
}

// New creates a window surface. Nothing is shown until Create and Run.
func New(log *logger.Logger) *Window {
	return &Window{
		log:     log,
		visuals: storage.NewVisualSet(),
		faces:   make(map[float64]*text.GoTextFace),
	}
}

// ScreenBounds returns the bounds of the monitor the window will open on.
func (w *Window) ScreenBounds() (domain.Rect, error) {
	if !displayReachable(hostGOOS(), os.Getenv) {
		return domain.Rect{}, domain.ErrPlatformUnavailable
	}
	m := ebiten.Monitor()
	if m == nil {
		return domain.Rect{}, domain.ErrPlatformUnavailable
	}
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return domain.Rect{}, fmt.Errorf("monitor %q reports %dx%d: %w", m.Name(), width, height, domain.ErrPlatformUnavailable)
	}
	return domain.Rect{Width: width, Height: height}, nil
}

// Create configures the window over region. Every window attribute is
// set here, before Run shows the window.
func (w *Window) Create(region domain.Rect, opts domain.SurfaceOptions) error {
	if !displayReachable(hostGOOS(), os.Getenv) {
		return domain.ErrPlatformUnavailable
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.created {
		return domain.ErrAlreadyPresented
	}

	ebiten.SetWindowTitle("commentscreen")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(region.Width, region.Height)
	ebiten.SetWindowPosition(region.X, region.Y)
	ebiten.SetWindowFloating(opts.Topmost)
	ebiten.SetWindowMousePassthrough(opts.ClickThrough)
	ebiten.SetRunnableOnUnfocused(true)
	if opts.AllWorkspaces {
		// Ebitengine has no per-workspace switch; floating windows follow
		// the platform default.
		w.log.Debug("all-workspaces visibility left to the window manager")
	}

	w.region = region
	w.opts = opts
	w.source = src
	w.created = true
	w.closing.Store(false)
	w.log.Info("window configured %s (transparent=%v click-through=%v topmost=%v)",
		region, opts.Transparent, opts.ClickThrough, opts.Topmost)
	return nil
}

// Run shows the window and blocks until it is destroyed or closed. It must
// be called from the main goroutine.
func (w *Window) Run() error {
	w.mu.RLock()
	created, opts := w.created, w.opts
	w.mu.RUnlock()

	if !created {
		if w.closing.Load() {
			return nil
		}
		return errors.New("window: Run before Create")
	}

	err := ebiten.RunGameWithOptions(w, &ebiten.RunGameOptions{
		ScreenTransparent: opts.Transparent,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Attach starts drawing v.
func (w *Window) Attach(v domain.Visual) { w.visuals.Attach(v) }

// Detach stops drawing the lane.
func (w *Window) Detach(id domain.LaneID) { w.visuals.Detach(id) }

// Sync moves the lane's visual to rect.
func (w *Window) Sync(id domain.LaneID, rect domain.Rect) { w.visuals.Sync(id, rect) }

// Destroy drops every visual and makes Run return on the next frame.
func (w *Window) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.created {
		return nil
	}
	w.visuals.Reset()
	w.created = false
	w.closing.Store(true)
	w.log.Info("window destroyed")
	return nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.closing.Load() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	width, height := w.region.Width, w.region.Height
	for _, v := range w.visuals.Snapshot() {
		if !visible(v, width, height) {
			continue
		}
		x, y := anchor(v, height)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(v.Style.Color)
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, v.Text, w.face(v.Style.FontSize), op)
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.region.Width, w.region.Height
}

// face returns a cached face for size. Callers hold w.mu.
func (w *Window) face(size float64) *text.GoTextFace {
	if f, ok := w.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: w.source, Size: size}
	w.faces[size] = f
	return f
}
