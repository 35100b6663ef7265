package domain

import "fmt"

// Rect is an axis-aligned rectangle in pixels.
//
// Lane rectangles are surface-local with the origin at the bottom-left
// corner, so Y grows upward. Renderers with a top-left origin must flip
// with [Rect.Top].
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the distance from the top of a surface of the given height
// to the top edge of r.
func (r Rect) Top(surfaceHeight int) int { return surfaceHeight - (r.Y + r.Height) }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.Width, r.Height)
}
