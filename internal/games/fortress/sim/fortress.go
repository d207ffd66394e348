package sim

import "github.com/vovakirdan/fortress/internal/core"

// Fortress is the defended building. The game is lost when it is destroyed.
type Fortress struct {
	Body
	Vitals
}

// NewFortress creates a fortress with a w×h footprint centered on c.
func NewFortress(c core.Point, w, h, health int) *Fortress {
	return &Fortress{
		Body:   NewBody(c, w, h),
		Vitals: NewVitals(health),
	}
}

// Hit subtracts damage. Health may drop below zero.
func (f *Fortress) Hit(damage int) {
	f.take(damage)
}

// Destroyed reports whether health is at or below zero.
func (f *Fortress) Destroyed() bool {
	return f.Depleted()
}

// Anchor returns the bottom-center of the footprint; the lane is centered on it.
func (f *Fortress) Anchor() core.Point {
	return f.rect.MidBottom()
}
