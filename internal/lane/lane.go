// Package lane implements a single horizontally scrolling comment.
//
// A Lane is plain state. It does no I/O and has no error conditions; the
// scheduler validates everything before constructing one.
package lane

import "github.com/hammamikhairi/commentscreen/internal/domain"

// Lane is one scrolling text element and its motion state.
type Lane struct {
	id       domain.LaneID
	text     string
	style    domain.Style
	rect     domain.Rect
	velocity int
	policy   domain.WrapPolicy
	active   bool
}

// New creates an active lane.
func New(id domain.LaneID, text string, style domain.Style, rect domain.Rect, velocity int, policy domain.WrapPolicy) *Lane {
	return &Lane{
		id:       id,
		text:     text,
		style:    style,
		rect:     rect,
		velocity: velocity,
		policy:   policy,
		active:   true,
	}
}

// ID returns the lane id.
func (l *Lane) ID() domain.LaneID { return l.id }

// Text returns the comment text.
func (l *Lane) Text() string { return l.text }

// Style returns the resolved text style.
func (l *Lane) Style() domain.Style { return l.style }

// Rect returns the lane rectangle in surface coordinates.
func (l *Lane) Rect() domain.Rect { return l.rect }

// Velocity returns the scroll speed in pixels per tick.
func (l *Lane) Velocity() int { return l.velocity }

// Policy returns what happens when the lane leaves the screen.
func (l *Lane) Policy() domain.WrapPolicy { return l.policy }

// Active reports whether the lane is still scheduled.
func (l *Lane) Active() bool { return l.active }

// Visual returns what a surface needs to draw the lane.
func (l *Lane) Visual() domain.Visual {
	return domain.Visual{ID: l.id, Text: l.text, Style: l.style, Rect: l.rect}
}

// Advance moves the lane left by |velocity| per tick. The sign of the
// velocity is ignored; lanes only ever scroll leftward.
func (l *Lane) Advance(deltaTicks int) {
	if deltaTicks <= 0 {
		return
	}
	v := l.velocity
	if v < 0 {
		v = -v
	}
	l.rect.X -= v * deltaTicks
}

// IsFullyOffscreen reports whether the right edge has passed the left
// edge of the surface.
func (l *Lane) IsFullyOffscreen() bool {
	return l.rect.Right() < 0
}

// ResetToRightEdge puts the lane just past the right edge of the surface.
func (l *Lane) ResetToRightEdge(surfaceWidth int) {
	l.rect.X = surfaceWidth
}

// Deactivate marks the lane as removed.
func (l *Lane) Deactivate() {
	l.active = false
}
