package fortress

// Snapshot captures the observable session state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick           int
	Score          int
	Currency       int
	Level          int
	NextLevelAt    int
	Kills          int
	FortressHealth int
	GameOver       bool
	CursorX        int
	CursorY        int

	// Each enemy is 4 ints: X, Y, Health, Tier
	EnemyData []int

	// Each defense is 4 ints: X, Y, Level, Cooldown
	DefenseData []int

	ProjectileCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := g.enemies.Enemies()
	enemyData := make([]int, 0, len(enemies)*4)
	for _, e := range enemies {
		r := e.Rect()
		enemyData = append(enemyData, r.X, r.Y, e.Health(), e.Tier())
	}

	defenses := g.defenses.Defenses()
	defenseData := make([]int, 0, len(defenses)*4)
	for _, d := range defenses {
		c := d.Center()
		defenseData = append(defenseData, c.X, c.Y, d.Level(), d.Cooldown())
	}

	return Snapshot{
		Tick:            g.ticks,
		Score:           g.eco.Score(),
		Currency:        g.eco.Currency(),
		Level:           g.eco.Level(),
		NextLevelAt:     g.eco.NextLevelAt(),
		Kills:           g.kills,
		FortressHealth:  g.fortress.Health(),
		GameOver:        g.gameOver,
		CursorX:         g.cursor.X,
		CursorY:         g.cursor.Y,
		EnemyData:       enemyData,
		DefenseData:     defenseData,
		ProjectileCount: len(g.defenses.Projectiles()),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(snap.Tick)
	mix(snap.Score)
	mix(snap.Currency)
	mix(snap.Level)
	mix(snap.NextLevelAt)
	mix(snap.Kills)
	mix(snap.FortressHealth)
	if snap.GameOver {
		mix(1)
	}
	mix(snap.CursorX)
	mix(snap.CursorY)
	for _, v := range snap.EnemyData {
		mix(v)
	}
	for _, v := range snap.DefenseData {
		mix(v)
	}
	mix(snap.ProjectileCount)
	return h
}
