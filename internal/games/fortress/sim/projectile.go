package sim

import "github.com/vovakirdan/fortress/internal/core"

// Projectile is the visible trace of a shot that has already been resolved.
// It carries no damage; it only counts down its lifetime.
type Projectile struct {
	Start    core.Point
	End      core.Point
	Width    int // Line weight, grows with the firing defense's level
	lifetime int
}

// NewProjectile creates a trace lasting lifetime ticks.
func NewProjectile(start, end core.Point, width, lifetime int) Projectile {
	return Projectile{
		Start:    start,
		End:      end,
		Width:    width,
		lifetime: lifetime,
	}
}

// Age decrements the remaining lifetime by one tick.
func (p *Projectile) Age() {
	p.lifetime--
}

// Expired reports whether the lifetime is used up.
func (p Projectile) Expired() bool {
	return p.lifetime <= 0
}

// Lifetime returns the remaining ticks.
func (p Projectile) Lifetime() int {
	return p.lifetime
}

// ProjectileSink receives traces emitted by firing defenses.
type ProjectileSink interface {
	Emit(Projectile)
}
