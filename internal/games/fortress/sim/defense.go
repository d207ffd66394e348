package sim

import (
	"fmt"

	"github.com/vovakirdan/fortress/internal/config"
	"github.com/vovakirdan/fortress/internal/core"
)

// Defense stat scaling by level.
const (
	defenseBaseRange     = 120
	defenseRangePerLevel = 10
	defenseBaseDamage    = 50
	defenseDamagePerLvl  = 3
	defenseCostPerLevel  = 15
	projectileBaseWidth  = 2
)

// MaxCaption is shown instead of a price once a defense is fully upgraded.
const MaxCaption = "MAX"

// Facing is the side of the lane a defense faces.
type Facing int

const (
	FacingUp   Facing = iota // Built below the lane
	FacingDown               // Built above the lane, drawn flipped
)

// UpgradeResult reports the outcome of an upgrade request.
type UpgradeResult int

const (
	Upgraded UpgradeResult = iota
	UpgradeInsufficientFunds
	UpgradeMaxLevel
)

// FireResult reports the outcome of a fire attempt.
type FireResult int

const (
	FireCooling  FireResult = iota // Cooldown still running
	FireNoTarget                   // Ready, but nothing in range
	Fired
)

// DefenseSpec is the stat table shared by reference between all defenses of a pool.
type DefenseSpec struct {
	Tiers              int // Number of upgrade tiers; the max level
	Width              int
	Height             int
	BaseCooldown       int
	ProjectileLifetime int
}

// NewDefenseSpec builds the shared spec from configuration.
func NewDefenseSpec(cfg config.FortressConfig) *DefenseSpec {
	return &DefenseSpec{
		Tiers:              cfg.Defenses.Tiers,
		Width:              cfg.Defenses.Width,
		Height:             cfg.Defenses.Height,
		BaseCooldown:       cfg.Defenses.BaseCooldown,
		ProjectileLifetime: cfg.Projectiles.Lifetime,
	}
}

// Defense is a player structure that shoots the nearest enemy in range.
//
// Construction advances the level once, so a freshly built defense is
// already level 2 and tier 1 is never shown. Upgrade cost at build time is
// therefore 30.
type Defense struct {
	Body
	spec     *DefenseSpec
	facing   Facing
	level    int
	reach    int
	damage   int
	cost     int
	cooldown int
	caption  string
}

// NewDefense creates a defense centered on c. It faces down when built
// above the lane's center line.
func NewDefense(c core.Point, spec *DefenseSpec, laneCenterY int) Defense {
	d := Defense{
		Body:   NewBody(c, spec.Width, spec.Height),
		spec:   spec,
		facing: FacingUp,
		level:  1,
	}
	if c.Y < laneCenterY {
		d.facing = FacingDown
	}
	d.advanceLevel()
	return d
}

func (d *Defense) advanceLevel() {
	d.level++
	d.reach = defenseBaseRange + defenseRangePerLevel*d.level
	d.damage = defenseBaseDamage + defenseDamagePerLvl*d.level
	d.cost = defenseCostPerLevel * d.level
	if d.level >= d.spec.Tiers {
		d.caption = MaxCaption
	} else {
		d.caption = fmt.Sprintf("%d$", d.cost)
	}
}

// Upgrade pays the upgrade cost and advances one level.
func (d *Defense) Upgrade(eco *Economy) UpgradeResult {
	if d.level >= d.spec.Tiers {
		return UpgradeMaxLevel
	}
	if !eco.CanAfford(d.cost) {
		return UpgradeInsufficientFunds
	}
	eco.Debit(d.cost)
	d.advanceLevel()
	return Upgraded
}

// Ready reports whether the defense may fire. While cooling down each call
// consumes one tick; once ready, calls leave the counter untouched.
func (d *Defense) Ready() bool {
	if d.cooldown <= 0 {
		return true
	}
	d.cooldown--
	return false
}

// Target returns the pool index of the nearest enemy within range.
// On equal distance the lower index wins.
func (d *Defense) Target(pool *EnemyPool) (int, bool) {
	center := d.Center()
	best := -1
	var bestDist float64
	for i, e := range pool.Enemies() {
		dist := e.DistanceTo(center)
		if dist > float64(d.reach) {
			continue
		}
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best, best >= 0
}

// Fire shoots the nearest enemy in range if the cooldown allows.
// A shot emits a trace to sink, damages the target through the pool and
// restarts the cooldown at BaseCooldown - level. Without a target the
// cooldown is left as is.
func (d *Defense) Fire(pool *EnemyPool, eco *Economy, sink ProjectileSink) (FireResult, DamageResult) {
	if !d.Ready() {
		return FireCooling, DamageResult{}
	}
	idx, ok := d.Target(pool)
	if !ok {
		return FireNoTarget, DamageResult{}
	}

	target := pool.Enemies()[idx].Center()
	sink.Emit(NewProjectile(d.FirePoint(), target, d.level+projectileBaseWidth, d.spec.ProjectileLifetime))
	dmg := pool.ApplyDamage(idx, d.damage, eco)
	d.cooldown = d.spec.BaseCooldown - d.level
	return Fired, dmg
}

// FirePoint is the footprint edge facing the lane.
func (d Defense) FirePoint() core.Point {
	if d.facing == FacingDown {
		return d.rect.MidBottom()
	}
	return d.rect.MidTop()
}

// RefundValue is what demolishing the defense returns: half the current upgrade cost.
func (d Defense) RefundValue() int {
	return d.cost / 2
}

// Level returns the upgrade level.
func (d Defense) Level() int { return d.level }

// MaxLevel returns the highest reachable level.
func (d Defense) MaxLevel() int { return d.spec.Tiers }

// Range returns the targeting radius.
func (d Defense) Range() int { return d.reach }

// ShotDamage returns the damage per shot.
func (d Defense) ShotDamage() int { return d.damage }

// UpgradeCost returns the price of the next upgrade.
func (d Defense) UpgradeCost() int { return d.cost }

// Cooldown returns the ticks left before the next shot.
func (d Defense) Cooldown() int { return d.cooldown }

// Facing returns which way the defense faces.
func (d Defense) Facing() Facing { return d.facing }

// Caption returns the display label: the next upgrade price or MaxCaption.
func (d Defense) Caption() string { return d.caption }
