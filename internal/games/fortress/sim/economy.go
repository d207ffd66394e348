package sim

// Economy tracks score, currency and the difficulty level.
// A single instance is shared by both pools and passed explicitly to every
// operation that reads or mutates it.
type Economy struct {
	score       int
	currency    int
	level       int
	nextLevelAt int
}

// NewEconomy starts at level 1 with the given purse and first level-up threshold.
func NewEconomy(startingCurrency, firstThreshold int) *Economy {
	return &Economy{
		currency:    startingCurrency,
		level:       1,
		nextLevelAt: firstThreshold,
	}
}

// Score returns the accumulated damage score.
func (e *Economy) Score() int { return e.score }

// Currency returns the money available for building.
func (e *Economy) Currency() int { return e.currency }

// Level returns the current difficulty level.
func (e *Economy) Level() int { return e.level }

// NextLevelAt returns the score that must be exceeded for the next level.
func (e *Economy) NextLevelAt() int { return e.nextLevelAt }

// CanAfford reports whether amount can be paid without going negative.
func (e *Economy) CanAfford(amount int) bool {
	return e.currency >= amount
}

// Credit adds money.
func (e *Economy) Credit(amount int) {
	e.currency += amount
}

// Debit removes money. There is no floor; callers check CanAfford first.
func (e *Economy) Debit(amount int) {
	e.currency -= amount
}

// RecordDamage adds dealt damage to the score. When the score exceeds the
// threshold the level advances and the threshold doubles; the return value
// reports that level-up. One call advances at most one level.
func (e *Economy) RecordDamage(amount int) bool {
	e.score += amount
	if e.score > e.nextLevelAt {
		e.level++
		e.nextLevelAt *= 2
		return true
	}
	return false
}
