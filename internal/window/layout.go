package window

import "github.com/hammamikhairi/commentscreen/internal/domain"

// anchor returns where to start drawing a visual's text on a surface with
// a top-left origin: the left edge of the lane and its vertical center.
func anchor(v domain.Visual, surfaceHeight int) (x, y float64) {
	top := v.Rect.Top(surfaceHeight)
	return float64(v.Rect.X), float64(top) + float64(v.Rect.Height)/2
}

// visible reports whether any part of the visual is inside the surface.
func visible(v domain.Visual, width, height int) bool {
	if v.Rect.Right() < 0 || v.Rect.X >= width {
		return false
	}
	top := v.Rect.Top(height)
	return top < height && top+v.Rect.Height > 0
}
