package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{"off", LevelOff, false, false},
		{"normal", LevelNormal, false, true},
		{"verbose", LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.level, &buf)
			l.Debug("dbg %d", 1)
			l.Info("inf %d", 2)

			out := buf.String()
			if got := strings.Contains(out, "[DBG] "); got != tt.wantDebug {
				t.Fatalf("debug output present=%v, want %v: %q", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "[INF] "); got != tt.wantInfo {
				t.Fatalf("info output present=%v, want %v: %q", got, tt.wantInfo, out)
			}
		})
	}
}

func TestNamedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelOff, &buf)
	child := root.Named("engine").Named("loop")

	child.Warn("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output while off, got %q", buf.String())
	}

	root.SetLevel(LevelNormal)
	child.Warn("shown %s", "now")
	if !strings.Contains(buf.String(), "engine: loop: shown now") {
		t.Fatalf("expected prefixed message, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel(false, false) != LevelNormal {
		t.Fatal("expected normal by default")
	}
	if ParseLevel(true, false) != LevelVerbose {
		t.Fatal("expected verbose")
	}
	if ParseLevel(true, true) != LevelOff {
		t.Fatal("expected quiet to win")
	}
}
