//go:build !headless

package window

import (
	"errors"
	"runtime"
	"testing"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/logger"
)

func TestWindowWithoutDisplay(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("display detection only applies to X11/Wayland hosts")
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	w := New(logger.New(logger.LevelOff, nil))
	if _, err := w.ScreenBounds(); !errors.Is(err, domain.ErrPlatformUnavailable) {
		t.Fatalf("ScreenBounds: expected ErrPlatformUnavailable, got %v", err)
	}
	err := w.Create(domain.Rect{Width: 1920, Height: 1080}, domain.SurfaceOptions{})
	if !errors.Is(err, domain.ErrPlatformUnavailable) {
		t.Fatalf("Create: expected ErrPlatformUnavailable, got %v", err)
	}

	w.Attach(domain.Visual{ID: 1, Text: "a"})
	if w.visuals.Len() != 1 {
		t.Fatalf("attach not mirrored")
	}
	for i := 0; i < 2; i++ {
		if err := w.Destroy(); err != nil {
			t.Fatalf("destroy #%d: %v", i+1, err)
		}
	}
}
