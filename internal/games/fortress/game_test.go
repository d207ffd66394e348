package fortress

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fortress/internal/config"
	"github.com/vovakirdan/fortress/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: core.DefaultTickRate,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New(config.DefaultFortressConfig())
	g.Reset(testRuntime(seed))
	return g
}

func click(x, y int, b core.PointerButton) core.InputFrame {
	in := core.NewInputFrame()
	in.Click(x, y, b)
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 5:
			inputs[i].Click(20, 8, core.PointerPrimary)
		case i == 40:
			inputs[i].Click(40, 19, core.PointerPrimary)
		case i%300 == 100:
			inputs[i].Click(20, 8, core.PointerPrimary) // Upgrade when affordable
		case i%7 == 0:
			inputs[i].Set(core.ActionCursorRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame(12345)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if len(snap1.DefenseData) == 0 {
		t.Error("expected at least one defense to be built")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(1)

	for range 200 {
		g.Step(core.NewInputFrame())
	}
	g.Step(click(20, 8, core.PointerPrimary))

	g.Reset(testRuntime(1))
	state := g.State()
	if state.Score != 0 || state.Level != 1 || state.Ticks != 0 || state.Kills != 0 || state.GameOver {
		t.Errorf("State() after Reset = %+v", state)
	}
	if g.Currency() != 100 {
		t.Errorf("Currency() = %d, expected 100", g.Currency())
	}
	snap := g.Snapshot()
	if len(snap.EnemyData) != 0 || len(snap.DefenseData) != 0 {
		t.Errorf("Reset left %d enemy ints and %d defense ints", len(snap.EnemyData), len(snap.DefenseData))
	}
}

func TestPointerPlaceAndRemove(t *testing.T) {
	g := newTestGame(1)

	g.Step(click(40, 3, core.PointerPrimary))
	if g.Currency() != 70 {
		t.Fatalf("Currency() = %d after placement, expected 70", g.Currency())
	}
	if n := len(g.defenses.Defenses()); n != 1 {
		t.Fatalf("defenses = %d, expected 1", n)
	}

	g.Step(click(40, 3, core.PointerSecondary))
	if g.Currency() != 85 {
		t.Errorf("Currency() = %d after removal, expected 85", g.Currency())
	}
	if n := len(g.defenses.Defenses()); n != 0 {
		t.Errorf("defenses = %d, expected 0", n)
	}
}

func TestPointerOnLaneRejected(t *testing.T) {
	g := newTestGame(1)

	g.Step(click(40, 13, core.PointerPrimary))
	if g.Currency() != 100 {
		t.Errorf("Currency() = %d, expected 100", g.Currency())
	}
	if g.notice != "Can't build on the road" {
		t.Errorf("notice = %q", g.notice)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Can't build on the road") {
		t.Errorf("HUD = %q, expected rejection notice", screen.Row(0))
	}
}

func TestPointerOnHUDIgnored(t *testing.T) {
	g := newTestGame(1)
	before := g.Cursor()

	g.Step(click(40, 0, core.PointerPrimary))
	if g.Cursor() != before {
		t.Errorf("Cursor() = %v, expected %v", g.Cursor(), before)
	}
	if g.Currency() != 100 {
		t.Errorf("Currency() = %d, expected 100", g.Currency())
	}
}

func TestKeyboardCursorPlace(t *testing.T) {
	g := newTestGame(1)
	start := g.Cursor()

	in := core.NewInputFrame()
	in.Set(core.ActionCursorLeft)
	g.Step(in)
	if g.Cursor().X >= start.X {
		t.Errorf("Cursor().X = %d, expected less than %d", g.Cursor().X, start.X)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPlace)
	g.Step(in)
	if g.Currency() != 70 {
		t.Errorf("Currency() = %d, expected 70", g.Currency())
	}

	in = core.NewInputFrame()
	in.Set(core.ActionRemove)
	g.Step(in)
	if g.Currency() != 85 {
		t.Errorf("Currency() = %d, expected 85", g.Currency())
	}
}

func TestCursorClampedToWorld(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionCursorUp)
	in.Set(core.ActionCursorLeft)
	for range 100 {
		g.Step(in)
	}
	if g.Cursor() != core.Pt(0, 0) {
		t.Errorf("Cursor() = %v, expected (0,0)", g.Cursor())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := config.DefaultFortressConfig()
	cfg.Fortress.Health = 10
	cfg.Enemies.BaseSpeed = 100

	g := New(cfg)
	g.Reset(testRuntime(7))

	for range 20000 {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Fatal("GameOver = false, expected the fortress to fall")
	}

	ticks := g.State().Ticks
	g.Step(core.NewInputFrame())
	if g.State().Ticks != ticks {
		t.Errorf("Ticks advanced after game over: %d -> %d", ticks, g.State().Ticks)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner not rendered")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.State().GameOver || g.State().Ticks != 0 {
		t.Errorf("State() after restart = %+v", g.State())
	}
}

func TestEnemiesArriveAndMove(t *testing.T) {
	g := newTestGame(3)

	for range 5000 {
		g.Step(core.NewInputFrame())
		if g.enemies.Len() > 0 {
			break
		}
	}
	if g.enemies.Len() == 0 {
		t.Fatal("no enemy spawned")
	}

	x := g.enemies.Enemies()[0].X()
	g.Step(core.NewInputFrame())
	if got := g.enemies.Enemies()[0].X(); got >= x {
		t.Errorf("enemy X() = %v, expected less than %v", got, x)
	}
}

func TestRenderBattlefield(t *testing.T) {
	g := newTestGame(1)
	g.Step(click(40, 3, core.PointerPrimary))
	away := core.NewInputFrame()
	away.Set(core.ActionCursorDown)
	g.Step(away)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Score: 0", "Money: 70$", "Level: 1", "HP: 1000"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD = %q, missing %q", hud, want)
		}
	}

	if got := screen.Get(60, 13); got != LaneChar {
		t.Errorf("lane cell = %q, expected %q", got, LaneChar)
	}
	if !strings.Contains(screen.String(), "30$") {
		t.Error("defense caption not rendered")
	}
	if !strings.ContainsRune(screen.String(), FacingDownChar) {
		t.Error("defense above the lane should face down")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New(config.DefaultFortressConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})

	g.Step(core.NewInputFrame())
	if g.State().Ticks != 0 {
		t.Errorf("Ticks = %d, expected no simulation on a small screen", g.State().Ticks)
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen message not rendered")
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if g.State().Ticks != 1 {
		t.Errorf("Ticks = %d after Resize, expected 1", g.State().Ticks)
	}
}

func TestViewportMapping(t *testing.T) {
	v := newViewport(1000, 600, 80, 24)

	tests := []struct {
		x, y int
	}{
		{0, 1}, {79, 23}, {40, 12}, {13, 7},
	}
	for _, tt := range tests {
		p, ok := v.world(tt.x, tt.y)
		if !ok {
			t.Fatalf("world(%d,%d) reported off screen", tt.x, tt.y)
		}
		x, y := v.cell(p)
		if x != tt.x || y != tt.y {
			t.Errorf("cell(world(%d,%d)) = (%d,%d)", tt.x, tt.y, x, y)
		}
	}

	if _, ok := v.world(0, 0); ok {
		t.Error("HUD row mapped into the world")
	}
	if _, ok := v.world(80, 5); ok {
		t.Error("column past the edge mapped into the world")
	}

	r := v.rect(core.NewRect(500, 300, 1, 1))
	if r.W != 1 || r.H != 1 {
		t.Errorf("rect() = %+v, expected a single cell", r)
	}
	if v.col(-5) >= 0 {
		t.Errorf("col(-5) = %d, expected off screen", v.col(-5))
	}
}
