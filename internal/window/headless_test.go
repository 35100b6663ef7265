//go:build headless

package window

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/logger"
)

func TestHeadlessWindowIsUnavailable(t *testing.T) {
	w := New(logger.New(logger.LevelOff, nil))

	if _, err := w.ScreenBounds(); !errors.Is(err, domain.ErrPlatformUnavailable) {
		t.Fatalf("ScreenBounds: expected ErrPlatformUnavailable, got %v", err)
	}
	err := w.Create(domain.Rect{Width: 1920, Height: 1080}, domain.SurfaceOptions{})
	if !errors.Is(err, domain.ErrPlatformUnavailable) {
		t.Fatalf("Create: expected ErrPlatformUnavailable, got %v", err)
	}
	if err := w.Run(); !errors.Is(err, domain.ErrPlatformUnavailable) {
		t.Fatalf("Run: expected ErrPlatformUnavailable, got %v", err)
	}

	w.Attach(domain.Visual{ID: 1, Text: "a"})
	w.Sync(1, domain.Rect{})
	w.Detach(1)
	for i := 0; i < 2; i++ {
		if err := w.Destroy(); err != nil {
			t.Fatalf("destroy #%d: %v", i+1, err)
		}
	}
}
