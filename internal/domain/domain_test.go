package domain

import (
	"image/color"
	"testing"
)

func TestParseWrapPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    WrapPolicy
		wantErr bool
	}{
		{"loop", WrapLoop, false},
		{"", WrapLoop, false},
		{"one-shot", WrapOneShot, false},
		{"once", WrapOneShot, false},
		{"bounce", WrapLoop, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWrapPolicy(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestStyleMerge(t *testing.T) {
	def := Style{FontSize: 36, Color: color.White}

	got := Style{}.Merge(def)
	if got.FontSize != 36 || got.Color != color.White {
		t.Fatalf("expected defaults, got %+v", got)
	}

	red := color.RGBA{R: 255, A: 255}
	got = Style{FontSize: 12, Color: red}.Merge(def)
	if got.FontSize != 12 || got.Color != red {
		t.Fatalf("expected explicit fields kept, got %+v", got)
	}
}

func TestRectTop(t *testing.T) {
	r := Rect{X: 1520, Y: 1020, Width: 400, Height: 60}
	if top := r.Top(1080); top != 0 {
		t.Fatalf("expected top 0, got %d", top)
	}
	if r.Right() != 1920 {
		t.Fatalf("expected right 1920, got %d", r.Right())
	}
}
