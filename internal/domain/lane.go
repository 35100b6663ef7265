package domain

import (
	"fmt"
	"image/color"
)

// LaneID identifies a comment lane. IDs are never reused within a process.
type LaneID uint64

// String returns a short printable form of the id.
func (id LaneID) String() string {
	return fmt.Sprintf("lane-%d", uint64(id))
}

// WrapPolicy decides what happens to a lane once it has scrolled fully off
// the left edge of the surface.
type WrapPolicy int

const (
	// WrapLoop recycles the lane to the right edge.
	WrapLoop WrapPolicy = iota
	// WrapOneShot removes the lane.
	WrapOneShot
)

// String returns the configuration name of the policy.
func (p WrapPolicy) String() string {
	switch p {
	case WrapLoop:
		return "loop"
	case WrapOneShot:
		return "one-shot"
	default:
		return "unknown"
	}
}

// ParseWrapPolicy converts a configuration name into a WrapPolicy.
func ParseWrapPolicy(s string) (WrapPolicy, error) {
	switch s {
	case "loop", "":
		return WrapLoop, nil
	case "one-shot", "oneshot", "once":
		return WrapOneShot, nil
	default:
		return WrapLoop, fmt.Errorf("unknown wrap policy %q", s)
	}
}

// Style is the visual styling of a comment. Zero fields mean "use the
// overlay default".
type Style struct {
	FontSize float64
	Color    color.Color
}

// Merge returns s with zero fields filled in from def.
func (s Style) Merge(def Style) Style {
	if s.FontSize <= 0 {
		s.FontSize = def.FontSize
	}
	if s.Color == nil {
		s.Color = def.Color
	}
	return s
}

// Visual is what a surface needs to draw one lane.
type Visual struct {
	ID    LaneID
	Text  string
	Style Style
	Rect  Rect
}
