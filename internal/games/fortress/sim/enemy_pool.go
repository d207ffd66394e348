package sim

import (
	"math/rand"

	"github.com/vovakirdan/fortress/internal/config"
	"github.com/vovakirdan/fortress/internal/core"
)

// SpawnResult reports the outcome of a spawn attempt.
type SpawnResult int

const (
	SpawnSkipped  SpawnResult = iota // Probability roll failed
	SpawnRejected                    // Candidate overlapped an existing enemy
	Spawned
)

// DamageResult reports what a hit on an enemy caused.
type DamageResult struct {
	Killed  bool
	Bounty  int // Money credited, zero unless Killed
	LevelUp bool
}

// EnemyPool owns the live enemies and applies spawn, movement and damage policy.
type EnemyPool struct {
	enemies []Enemy
	lane    Lane
	cfg     *config.EnemyConfig
	rng     *rand.Rand
	speed   float64 // Baseline speed given to new spawns
}

// NewEnemyPool creates an empty pool spawning into lane.
func NewEnemyPool(lane Lane, cfg *config.EnemyConfig, seed int64) *EnemyPool {
	return &EnemyPool{
		enemies: make([]Enemy, 0, 16),
		lane:    lane,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		speed:   cfg.BaseSpeed,
	}
}

// Enemies returns the live enemies in pool order. Callers must not modify it.
func (p *EnemyPool) Enemies() []Enemy {
	return p.enemies
}

// Len returns the number of live enemies.
func (p *EnemyPool) Len() int {
	return len(p.enemies)
}

// Speed returns the baseline speed for new spawns.
func (p *EnemyPool) Speed() float64 {
	return p.speed
}

// TrySpawn rolls the per-tick spawn chance (level in 100) and, on success,
// makes one spawn attempt. From level 100 on every roll succeeds.
func (p *EnemyPool) TrySpawn(level int) SpawnResult {
	if p.rng.Intn(100) >= level {
		return SpawnSkipped
	}
	return p.Spawn(level)
}

// Spawn makes exactly one spawn attempt. The unit tier is drawn from
// [1, min(tiers, 2*level+1)]; the candidate is placed in the entry band
// beyond the right edge and discarded if it overlaps an existing enemy.
func (p *EnemyPool) Spawn(level int) SpawnResult {
	maxRoll := min(p.cfg.Tiers-1, 2*level)
	tier := p.rng.Intn(maxRoll+1) + 1

	width := p.lane.Width()
	x := width + p.cfg.EntryMinOffset + p.rng.Intn(p.cfg.EntryMaxOffset-p.cfg.EntryMinOffset+1)
	top, bottom := p.lane.YRange()
	y := top + p.rng.Intn(bottom-top+1)

	candidate := NewEnemy(core.Pt(x, y), p.cfg.Width, p.cfg.Height, tier, p.speed)
	for _, e := range p.enemies {
		if e.Collides(candidate.Rect()) {
			return SpawnRejected
		}
	}
	p.enemies = append(p.enemies, candidate)
	return Spawned
}

// Add inserts an enemy directly, bypassing spawn policy.
func (p *EnemyPool) Add(e Enemy) {
	p.enemies = append(p.enemies, e)
}

// AdvanceAll moves every enemy. Enemies whose center reaches the fortress
// center hit the fortress and are removed. Returns how many arrived.
func (p *EnemyPool) AdvanceAll(f *Fortress) int {
	goal := f.Center().X
	arrived := 0

	i := 0
	for i < len(p.enemies) {
		e := &p.enemies[i]
		e.Advance()
		if e.Center().X <= goal {
			f.Hit(e.Damage())
			p.removeAt(i)
			arrived++
			continue // Next enemy shifted into i
		}
		i++
	}
	return arrived
}

// ApplyDamage is the single path by which enemies take damage. Damage is
// scored immediately; a resulting level-up boosts the baseline and every
// live enemy. A killed enemy pays its bounty and leaves the pool.
func (p *EnemyPool) ApplyDamage(index, amount int, eco *Economy) DamageResult {
	var res DamageResult
	if index < 0 || index >= len(p.enemies) {
		return res
	}

	p.enemies[index].hurt(amount)

	if eco.RecordDamage(amount) {
		res.LevelUp = true
		p.boost(p.cfg.SpeedBoost)
	}

	if p.enemies[index].Dead() {
		res.Killed = true
		res.Bounty = p.enemies[index].Bounty()
		eco.Credit(res.Bounty)
		p.removeAt(index)
	}
	return res
}

// boost raises the baseline and every live enemy's speed.
func (p *EnemyPool) boost(delta float64) {
	p.speed += delta
	for i := range p.enemies {
		p.enemies[i].Boost(delta)
	}
}

// removeAt deletes the enemy at i, preserving order.
func (p *EnemyPool) removeAt(i int) {
	p.enemies = append(p.enemies[:i], p.enemies[i+1:]...)
}

// Reset removes all enemies, restores the baseline speed and reseeds the RNG.
func (p *EnemyPool) Reset(seed int64) {
	p.enemies = p.enemies[:0]
	p.speed = p.cfg.BaseSpeed
	p.rng = rand.New(rand.NewSource(seed))
}
