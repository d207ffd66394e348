// Package fortress wires the battle simulation into a playable game: it
// maps input to build commands, runs one fixed tick per Step and draws the
// world into a character screen.
package fortress

import (
	"github.com/vovakirdan/fortress/internal/config"
	"github.com/vovakirdan/fortress/internal/core"
	"github.com/vovakirdan/fortress/internal/games/fortress/sim"
)

// Minimum terminal size the battlefield can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// noticeTicks is how long a build feedback message stays on the HUD.
const noticeTicks = 50

// cursorStepCells is how many cells one cursor key press moves.
const cursorStepCells = 2

// Game is a single fortress session.
type Game struct {
	cfg      config.FortressConfig
	enemyCfg config.EnemyConfig
	spec     *sim.DefenseSpec
	runtime  core.RuntimeConfig
	view     viewport

	fortress *sim.Fortress
	lane     sim.Lane
	eco      *sim.Economy
	enemies  *sim.EnemyPool
	defenses *sim.DefensePool

	cursor   core.Point // World units
	kills    int
	ticks    int
	gameOver bool

	notice      string
	noticeTicks int

	screenTooSmall bool
}

// New creates a game with fixed tunables. Call Reset before the first Step.
func New(cfg config.FortressConfig) *Game {
	return &Game{cfg: cfg, enemyCfg: cfg.Enemies}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "fortress"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Fortress"
}

// Reset starts a new session. The seed in runtime drives every random roll.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = newViewport(g.cfg.World.Width, g.cfg.World.Height, runtime.ScreenW, runtime.ScreenH)
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	fc := g.cfg.Fortress
	g.fortress = sim.NewFortress(core.Pt(fc.X, fc.Y), fc.Width, fc.Height, fc.Health)
	g.lane = sim.NewLane(g.fortress.Anchor(), g.cfg.World.Width, g.cfg.Lane.Thickness)
	g.eco = sim.NewEconomy(g.cfg.Economy.StartingCurrency, g.cfg.Economy.FirstThreshold)
	g.enemies = sim.NewEnemyPool(g.lane, &g.enemyCfg, runtime.Seed)
	g.spec = sim.NewDefenseSpec(g.cfg)
	g.defenses = sim.NewDefensePool(g.lane, g.spec)

	// Start in the middle of the free band above the lane.
	laneTop, _ := g.lane.YRange()
	g.cursor = core.Pt(g.cfg.World.Width/2, laneTop/2)

	g.kills = 0
	g.ticks = 0
	g.gameOver = false
	g.notice = ""
	g.noticeTicks = 0
}

// Resize adapts the viewport to a new terminal size without touching the simulation.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.view = newViewport(g.cfg.World.Width, g.cfg.World.Height, screenW, screenH)
	g.screenTooSmall = screenW < MinScreenW || screenH < MinScreenH
}

// Step advances one tick. Within a tick build commands go first, then
// defenses fire, then enemies advance, then a spawn is attempted. Level-up
// speed boosts granted by this tick's shots already apply to this tick's advance.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	if g.noticeTicks > 0 {
		g.noticeTicks--
	}

	g.handleInput(in)

	report := g.defenses.Tick(g.enemies, g.eco)
	g.kills += report.Kills

	g.enemies.AdvanceAll(g.fortress)
	g.enemies.TrySpawn(g.eco.Level())

	if g.fortress.Destroyed() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	stepX, stepY := g.view.cellSize()
	stepX *= cursorStepCells
	stepY *= cursorStepCells

	if in.Has(core.ActionCursorLeft) {
		g.moveCursor(-stepX, 0)
	}
	if in.Has(core.ActionCursorRight) {
		g.moveCursor(stepX, 0)
	}
	if in.Has(core.ActionCursorUp) {
		g.moveCursor(0, -stepY)
	}
	if in.Has(core.ActionCursorDown) {
		g.moveCursor(0, stepY)
	}

	if in.Has(core.ActionPlace) {
		g.build(g.cursor)
	}
	if in.Has(core.ActionRemove) {
		g.demolish(g.cursor)
	}

	for _, ev := range in.Pointer {
		p, ok := g.view.world(ev.X, ev.Y)
		if !ok {
			continue
		}
		g.cursor = p
		switch ev.Button {
		case core.PointerPrimary:
			g.build(p)
		case core.PointerSecondary:
			g.demolish(p)
		}
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.cfg.World.Width-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.cfg.World.Height-1)
}

// build places or upgrades at p and posts feedback for rejections.
func (g *Game) build(p core.Point) sim.PlaceResult {
	res := g.defenses.Place(p, g.eco)
	switch res {
	case sim.PlaceInsufficientFunds, sim.PlaceUpgradeInsufficientFunds:
		g.post("Not enough money")
	case sim.PlaceBlockedByLane:
		g.post("Can't build on the road")
	case sim.PlaceUpgradeMaxLevel:
		g.post("Already at max level")
	}
	return res
}

func (g *Game) demolish(p core.Point) {
	if refund, ok := g.defenses.RemoveAt(p, g.eco); ok {
		g.post("Refunded " + formatMoney(refund))
	}
}

func (g *Game) post(msg string) {
	g.notice = msg
	g.noticeTicks = noticeTicks
}

// State returns the summary read by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eco.Score(),
		Level:    g.eco.Level(),
		Kills:    g.kills,
		Ticks:    g.ticks,
		GameOver: g.gameOver,
	}
}

// Currency returns the money available for building.
func (g *Game) Currency() int {
	return g.eco.Currency()
}

// Cursor returns the build cursor in world units.
func (g *Game) Cursor() core.Point {
	return g.cursor
}
