package sim

import "github.com/vovakirdan/fortress/internal/core"

// Lane is the horizontal corridor enemies walk along, from the right edge
// of the play area toward the fortress. It never changes after construction.
type Lane struct {
	rect    core.Rect
	centerY int
}

// NewLane spans the full play width with a band of the given thickness
// centered on the anchor's y.
func NewLane(anchor core.Point, width, thickness int) Lane {
	return Lane{
		rect:    core.NewRect(0, anchor.Y-thickness/2, width, thickness),
		centerY: anchor.Y,
	}
}

// Rect returns the corridor rectangle used for placement checks.
func (l Lane) Rect() core.Rect {
	return l.rect
}

// CenterY returns the corridor's vertical center.
func (l Lane) CenterY() int {
	return l.centerY
}

// YRange returns the inclusive vertical range enemy centers may spawn in.
func (l Lane) YRange() (top, bottom int) {
	return l.rect.Y, l.rect.Bottom()
}

// Width returns the play width the lane spans.
func (l Lane) Width() int {
	return l.rect.W
}

// Start is where enemies enter.
func (l Lane) Start() core.Point {
	return core.Pt(l.rect.Right(), l.centerY)
}

// End is the fortress side of the lane.
func (l Lane) End() core.Point {
	return core.Pt(l.rect.X, l.centerY)
}
