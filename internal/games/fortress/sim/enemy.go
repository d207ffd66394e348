package sim

import "github.com/vovakirdan/fortress/internal/core"

// Enemy stat scaling by unit tier. Tiers are 1-based.
const (
	enemyBaseHealth    = 150
	enemyHealthPerTier = 10
	enemyHealthOffset  = 10
	enemyDamagePerTier = 10
	enemyBountyPerTier = 2
)

// Enemy is a hostile unit walking left along the lane.
// Its y never changes; x moves by speed every tick.
type Enemy struct {
	Body
	Vitals
	x      float64 // Left edge, kept fractional between ticks
	speed  float64
	tier   int
	damage int
	bounty int
}

// NewEnemy creates a unit of the given tier with its footprint centered on c.
func NewEnemy(c core.Point, w, h, tier int, speed float64) Enemy {
	body := NewBody(c, w, h)
	return Enemy{
		Body:   body,
		Vitals: NewVitals(enemyBaseHealth + enemyHealthPerTier*(tier+enemyHealthOffset)),
		x:      float64(body.rect.X),
		speed:  speed,
		tier:   tier,
		damage: enemyDamagePerTier * tier,
		bounty: enemyBountyPerTier * tier,
	}
}

// Advance moves the enemy left by its current speed.
func (e *Enemy) Advance() {
	e.x -= e.speed
	e.rect.X = int(e.x)
}

// DistanceTo returns the Euclidean distance from the enemy's center to p.
func (e Enemy) DistanceTo(p core.Point) float64 {
	return e.Center().DistanceTo(p)
}

// Dead reports whether health has reached zero or below.
func (e Enemy) Dead() bool {
	return e.Depleted()
}

// Boost permanently increases speed.
func (e *Enemy) Boost(delta float64) {
	e.speed += delta
}

// hurt subtracts damage without clamping. EnemyPool.ApplyDamage is its only caller.
func (e *Enemy) hurt(amount int) {
	e.take(amount)
}

// X returns the fractional left edge.
func (e Enemy) X() float64 { return e.x }

// Speed returns the leftward speed per tick.
func (e Enemy) Speed() float64 { return e.speed }

// Tier returns the unit tier (1-based).
func (e Enemy) Tier() int { return e.tier }

// Damage returns the damage dealt to the fortress on arrival.
func (e Enemy) Damage() int { return e.damage }

// Bounty returns the money credited when the enemy is destroyed.
func (e Enemy) Bounty() int { return e.bounty }
