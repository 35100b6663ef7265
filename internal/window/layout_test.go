package window

import (
	"testing"

	"github.com/hammamikhairi/commentscreen/internal/domain"
)

func TestAnchorFlipsToTopLeftOrigin(t *testing.T) {
	tests := []struct {
		name  string
		rect  domain.Rect
		wantX float64
		wantY float64
	}{
		{"first lane", domain.Rect{X: 1520, Y: 1020, Width: 400, Height: 60}, 1520, 30},
		{"second lane", domain.Rect{X: 1520, Y: 960, Width: 400, Height: 60}, 1520, 90},
		{"bottom lane", domain.Rect{X: 0, Y: 0, Width: 400, Height: 60}, 0, 1050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := anchor(domain.Visual{Rect: tt.rect}, 1080)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("expected (%g,%g), got (%g,%g)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name string
		rect domain.Rect
		want bool
	}{
		{"on screen", domain.Rect{X: 100, Y: 500, Width: 400, Height: 60}, true},
		{"partly left", domain.Rect{X: -399, Y: 500, Width: 400, Height: 60}, true},
		{"fully left", domain.Rect{X: -401, Y: 500, Width: 400, Height: 60}, false},
		{"past right edge", domain.Rect{X: 1920, Y: 500, Width: 400, Height: 60}, false},
		{"stacked below screen", domain.Rect{X: 100, Y: -60, Width: 400, Height: 60}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visible(domain.Visual{Rect: tt.rect}, 1920, 1080); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDisplayReachable(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	if displayReachable("linux", env(nil)) {
		t.Fatal("linux without DISPLAY should be unreachable")
	}
	if !displayReachable("linux", env(map[string]string{"WAYLAND_DISPLAY": "wayland-0"})) {
		t.Fatal("wayland session should be reachable")
	}
	if !displayReachable("darwin", env(nil)) {
		t.Fatal("darwin should be assumed reachable")
	}
}
