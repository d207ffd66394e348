// Package sim implements the fortress battle simulation: the fortress and
// its lane, enemies and their pool, defenses and their pool, projectile
// traces, and the economy that couples them.
//
// Entities are composed from two capabilities instead of a type hierarchy:
// Body (position and collision footprint) and Vitals (hit points).
package sim

import "github.com/vovakirdan/fortress/internal/core"

// Body is the positional capability: a collision footprint in world units.
type Body struct {
	rect core.Rect
}

// NewBody creates a w×h footprint centered on c.
func NewBody(c core.Point, w, h int) Body {
	return Body{rect: core.RectAround(c, w, h)}
}

// Rect returns the collision footprint.
func (b Body) Rect() core.Rect {
	return b.rect
}

// Center returns the footprint center.
func (b Body) Center() core.Point {
	return b.rect.Center()
}

// Collides reports whether the footprint overlaps r.
func (b Body) Collides(r core.Rect) bool {
	return b.rect.Intersects(r)
}

// Contains reports whether p lies inside the footprint.
func (b Body) Contains(p core.Point) bool {
	return b.rect.Contains(p)
}

// Vitals is the health capability.
type Vitals struct {
	max     int
	current int
}

// NewVitals creates full health.
func NewVitals(hp int) Vitals {
	return Vitals{max: hp, current: hp}
}

// Health returns current hit points. It may be negative after a killing blow.
func (v Vitals) Health() int {
	return v.current
}

// MaxHealth returns the hit points at creation.
func (v Vitals) MaxHealth() int {
	return v.max
}

// Ratio returns health as a fraction of max, clamped to [0, 1] for display.
func (v Vitals) Ratio() float64 {
	if v.max <= 0 {
		return 0
	}
	return core.ClampF(float64(v.current)/float64(v.max), 0, 1)
}

// Depleted reports whether health has reached zero or below.
func (v Vitals) Depleted() bool {
	return v.current <= 0
}

func (v *Vitals) take(amount int) {
	v.current -= amount
}
