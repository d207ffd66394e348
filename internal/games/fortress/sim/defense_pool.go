package sim

import "github.com/vovakirdan/fortress/internal/core"

// PlaceResult reports the outcome of a build request.
type PlaceResult int

const (
	Placed PlaceResult = iota
	PlaceUpgraded
	PlaceUpgradeInsufficientFunds
	PlaceUpgradeMaxLevel
	PlaceInsufficientFunds
	PlaceBlockedByLane
)

// Accepted reports whether the request changed the board.
func (r PlaceResult) Accepted() bool {
	return r == Placed || r == PlaceUpgraded
}

// TickReport summarizes one defense tick.
type TickReport struct {
	Shots    int
	Kills    int
	Bounty   int
	LevelUps int
}

// DefensePool owns the placed defenses and the projectile traces they emit.
type DefensePool struct {
	defenses    []Defense
	projectiles []Projectile
	lane        Lane
	spec        *DefenseSpec
}

// NewDefensePool creates an empty pool building around lane.
func NewDefensePool(lane Lane, spec *DefenseSpec) *DefensePool {
	return &DefensePool{
		defenses:    make([]Defense, 0, 8),
		projectiles: make([]Projectile, 0, 8),
		lane:        lane,
		spec:        spec,
	}
}

// Defenses returns the placed defenses in build order. Callers must not modify it.
func (p *DefensePool) Defenses() []Defense {
	return p.defenses
}

// Projectiles returns the live traces. Callers must not modify it.
func (p *DefensePool) Projectiles() []Projectile {
	return p.projectiles
}

// DefenseAt returns the index of the first defense whose footprint contains pt.
func (p *DefensePool) DefenseAt(pt core.Point) (int, bool) {
	for i := range p.defenses {
		if p.defenses[i].Contains(pt) {
			return i, true
		}
	}
	return -1, false
}

// Place builds a defense centered on pt, or upgrades the defense already
// covering pt. A new defense must be affordable and must not overlap the lane.
func (p *DefensePool) Place(pt core.Point, eco *Economy) PlaceResult {
	if i, ok := p.DefenseAt(pt); ok {
		switch p.defenses[i].Upgrade(eco) {
		case Upgraded:
			return PlaceUpgraded
		case UpgradeMaxLevel:
			return PlaceUpgradeMaxLevel
		default:
			return PlaceUpgradeInsufficientFunds
		}
	}

	candidate := NewDefense(pt, p.spec, p.lane.CenterY())
	if !eco.CanAfford(candidate.UpgradeCost()) {
		return PlaceInsufficientFunds
	}
	if candidate.Collides(p.lane.Rect()) {
		return PlaceBlockedByLane
	}
	eco.Debit(candidate.UpgradeCost())
	p.defenses = append(p.defenses, candidate)
	return Placed
}

// RemoveAt demolishes the defense covering pt and refunds half its current
// upgrade cost. Returns the refund and whether a defense was found.
func (p *DefensePool) RemoveAt(pt core.Point, eco *Economy) (int, bool) {
	i, ok := p.DefenseAt(pt)
	if !ok {
		return 0, false
	}
	refund := p.defenses[i].RefundValue()
	eco.Credit(refund)
	p.defenses = append(p.defenses[:i], p.defenses[i+1:]...)
	return refund, true
}

// Emit stores a projectile trace.
func (p *DefensePool) Emit(pr Projectile) {
	p.projectiles = append(p.projectiles, pr)
}

// Tick ages the existing traces, drops expired ones, then lets every
// defense fire in build order. Traces emitted this tick start at full
// lifetime, so each one stays visible for exactly that many frames.
func (p *DefensePool) Tick(enemies *EnemyPool, eco *Economy) TickReport {
	i := 0
	for i < len(p.projectiles) {
		p.projectiles[i].Age()
		if p.projectiles[i].Expired() {
			p.projectiles = append(p.projectiles[:i], p.projectiles[i+1:]...)
			continue
		}
		i++
	}

	var report TickReport
	for i := range p.defenses {
		res, dmg := p.defenses[i].Fire(enemies, eco, p)
		if res != Fired {
			continue
		}
		report.Shots++
		if dmg.Killed {
			report.Kills++
			report.Bounty += dmg.Bounty
		}
		if dmg.LevelUp {
			report.LevelUps++
		}
	}
	return report
}

// Reset removes every defense and trace.
func (p *DefensePool) Reset() {
	p.defenses = p.defenses[:0]
	p.projectiles = p.projectiles[:0]
}
