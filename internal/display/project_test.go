package display

import (
	"image/color"
	"strings"
	"testing"

	"github.com/hammamikhairi/commentscreen/internal/domain"
)

var region = domain.Rect{Width: 1920, Height: 1080}

func TestProjectPlacesLanesTopRight(t *testing.T) {
	visuals := []domain.Visual{
		{ID: 1, Text: "Comment 1", Rect: domain.Rect{X: 1520, Y: 1020, Width: 400, Height: 60}},
		{ID: 2, Text: "Comment 2", Rect: domain.Rect{X: 1520, Y: 960, Width: 400, Height: 60}},
	}

	// 192x108 keeps the math exact: 10 px per cell each way.
	lines := project(visuals, region, 192, 108).lines()

	if got := lines[3][152:161]; got != "Comment 1" {
		t.Fatalf("row 3: expected lane 1 at col 152, got %q", got)
	}
	if got := lines[9][152:161]; got != "Comment 2" {
		t.Fatalf("row 9: expected lane 2 at col 152, got %q", got)
	}
}

func TestProjectClipsAtLeftEdge(t *testing.T) {
	visuals := []domain.Visual{
		{ID: 1, Text: "abcdefghij", Rect: domain.Rect{X: -40, Y: 1020, Width: 400, Height: 60}},
	}
	lines := project(visuals, region, 192, 108).lines()
	if !strings.HasPrefix(lines[3], "efghij") {
		t.Fatalf("expected clipped text at left edge, got %q", lines[3][:12])
	}
}

func TestProjectClipsToLaneWidth(t *testing.T) {
	visuals := []domain.Visual{
		{ID: 1, Text: "this text is much longer than its lane", Rect: domain.Rect{X: 0, Y: 1020, Width: 100, Height: 60}},
	}
	lines := project(visuals, region, 192, 108).lines()
	if got := strings.TrimRight(lines[3], " "); got != "this text" {
		t.Fatalf("expected text clipped to 10 cells, got %q", got)
	}
}

func TestProjectWideRunes(t *testing.T) {
	visuals := []domain.Visual{
		{ID: 1, Text: "こんにちは", Rect: domain.Rect{X: 0, Y: 1020, Width: 60, Height: 60}},
	}
	lines := project(visuals, region, 192, 108).lines()
	// Six cells fit three double-width runes.
	if !strings.HasPrefix(lines[3], "こんに ") {
		t.Fatalf("unexpected wide-rune projection %q", lines[3][:12])
	}
}

func TestProjectSkipsOffscreenRows(t *testing.T) {
	visuals := []domain.Visual{
		{ID: 1, Text: "below", Rect: domain.Rect{X: 0, Y: -120, Width: 400, Height: 60}},
	}
	for _, l := range project(visuals, region, 192, 108).lines() {
		if strings.TrimSpace(l) != "" {
			t.Fatalf("expected empty frame, got %q", l)
		}
	}
}

func TestProjectDegenerateSizes(t *testing.T) {
	f := project([]domain.Visual{{Text: "x"}}, region, 0, -3)
	if f.rows != 0 || len(f.lines()) != 0 {
		t.Fatal("expected empty frame for zero size")
	}
	f = project([]domain.Visual{{Text: "x"}}, domain.Rect{}, 10, 2)
	if len(f.lines()) != 2 {
		t.Fatal("expected blank rows for empty region")
	}
}

func TestRenderKeepsText(t *testing.T) {
	visuals := []domain.Visual{
		{ID: 1, Text: "hi", Style: domain.Style{Color: color.RGBA{R: 255, A: 255}}, Rect: domain.Rect{X: 0, Y: 1020, Width: 400, Height: 60}},
	}
	out := project(visuals, region, 20, 4).render()
	if !strings.Contains(out, "hi") {
		t.Fatalf("rendered frame lost text: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Fatalf("expected 4 rows, got %d newlines", n)
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(nil); got != "#ffffff" {
		t.Fatalf("expected white for nil, got %s", got)
	}
	if got := hexColor(color.RGBA{R: 0xff, G: 0x88, A: 0xff}); got != "#ff8800" {
		t.Fatalf("expected #ff8800, got %s", got)
	}
}
