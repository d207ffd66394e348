package fortress

import (
	"fmt"
	"math"

	"github.com/vovakirdan/fortress/internal/core"
	"github.com/vovakirdan/fortress/internal/games/fortress/sim"
)

// Visual characters for rendering
const (
	LaneChar       = '░'
	FortressChar   = '▓'
	BarFullChar    = '█'
	BarEmptyChar   = '░'
	FacingUpChar   = '▲'
	FacingDownChar = '▼'
	CursorChar     = '+'
	RingChar       = '·'
)

// tierGlyphs labels enemies by tier: 1-9 then A-J.
const tierGlyphs = "123456789ABCDEFGHIJ"

// ringInset shrinks the drawn range ring relative to the targeting radius.
const ringInset = 25

// ringSteps is the number of samples along the range ring.
const ringSteps = 96

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	renderLane(dst, g.view, g.lane)
	renderFortress(dst, g.view, g.fortress)
	for _, d := range g.defenses.Defenses() {
		renderDefense(dst, g.view, d, g.eco.CanAfford(d.UpgradeCost()))
	}
	for _, e := range g.enemies.Enemies() {
		renderEnemy(dst, g.view, e)
	}
	for _, p := range g.defenses.Projectiles() {
		renderProjectile(dst, g.view, p)
	}
	g.renderCursor(dst)
	g.renderHUD(dst)

	if g.gameOver {
		g.renderGameOver(dst)
	}
}

func renderLane(dst *core.Screen, v viewport, lane sim.Lane) {
	dst.DrawRect(v.rect(lane.Rect()), LaneChar, core.ColorGray)
}

func renderFortress(dst *core.Screen, v viewport, f *sim.Fortress) {
	r := v.rect(f.Rect())
	dst.DrawRect(r, FortressChar, core.ColorWhite)
	if r.W >= 3 && r.H >= 3 {
		dst.DrawBox(r, core.ColorWhite)
	}
	renderHealthBar(dst, r.X, r.Y-1, r.W, f.Ratio())
}

func renderEnemy(dst *core.Screen, v viewport, e sim.Enemy) {
	r := v.rect(e.Rect())
	glyph := rune(tierGlyphs[core.Clamp(e.Tier(), 1, len(tierGlyphs))-1])
	dst.DrawRect(r, glyph, enemyColor(e.Tier()))
	if e.Ratio() < 1 {
		renderHealthBar(dst, r.X, r.Y-1, r.W, e.Ratio())
	}
}

func enemyColor(tier int) core.Color {
	switch {
	case tier <= 4:
		return core.ColorGreen
	case tier <= 9:
		return core.ColorYellow
	case tier <= 14:
		return core.ColorOrange
	default:
		return core.ColorBrightRed
	}
}

func renderDefense(dst *core.Screen, v viewport, d sim.Defense, affordable bool) {
	r := v.rect(d.Rect())
	glyph := FacingUpChar
	if d.Facing() == sim.FacingDown {
		glyph = FacingDownChar
	}

	if r.W >= 3 && r.H >= 3 {
		dst.DrawBox(r, core.ColorCyan)
	} else {
		dst.DrawRect(r, glyph, core.ColorCyan)
	}
	c := r.Center()
	dst.SetColored(c.X, c.Y, glyph, core.ColorBrightYellow)

	// Caption sits on the side away from the lane.
	captionY := r.Bottom()
	if d.Facing() == sim.FacingDown {
		captionY = r.Y - 1
	}
	color := core.ColorGray
	switch {
	case d.Caption() == sim.MaxCaption:
		color = core.ColorBrightGreen
	case affordable:
		color = core.ColorYellow
	}
	caption := d.Caption()
	dst.DrawTextColored(c.X-len(caption)/2, captionY, caption, color)
}

func renderProjectile(dst *core.Screen, v viewport, p sim.Projectile) {
	x0, y0 := v.cell(p.Start)
	x1, y1 := v.cell(p.End)
	glyph := '·'
	switch {
	case p.Width >= 12:
		glyph = '●'
	case p.Width >= 7:
		glyph = '•'
	}
	dst.DrawLine(x0, y0, x1, y1, glyph, core.ColorBrightYellow)
}

// renderHealthBar draws a ratio bar of width cells starting at (x, y).
func renderHealthBar(dst *core.Screen, x, y, width int, ratio float64) {
	filled := int(math.Round(ratio * float64(width)))
	color := core.HealthColor(ratio)
	for i := range width {
		if i < filled {
			dst.SetColored(x+i, y, BarFullChar, color)
		} else {
			dst.SetColored(x+i, y, BarEmptyChar, core.ColorGray)
		}
	}
}

// renderCursor draws the build cursor and, over a defense, its range ring.
func (g *Game) renderCursor(dst *core.Screen) {
	if i, ok := g.defenses.DefenseAt(g.cursor); ok {
		d := g.defenses.Defenses()[i]
		renderRing(dst, g.view, d.Center(), d.Range()-ringInset)
	}
	x, y := g.view.cell(g.cursor)
	dst.SetColored(x, y, CursorChar, core.ColorBrightYellow)
}

func renderRing(dst *core.Screen, v viewport, center core.Point, radius int) {
	if radius <= 0 {
		return
	}
	for i := range ringSteps {
		a := 2 * math.Pi * float64(i) / ringSteps
		p := core.Pt(
			center.X+int(math.Round(float64(radius)*math.Cos(a))),
			center.Y+int(math.Round(float64(radius)*math.Sin(a))),
		)
		x, y := v.cell(p)
		if y < v.top {
			continue
		}
		dst.SetColored(x, y, RingChar, core.ColorCyan)
	}
}

// renderHUD draws score, money, level and fortress health on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf("Score: %d  Money: %s  Level: %d", g.eco.Score(), formatMoney(g.eco.Currency()), g.eco.Level())
	dst.DrawTextColored(1, 0, left, core.ColorWhite)

	hp := fmt.Sprintf("HP: %d", max(g.fortress.Health(), 0))
	dst.DrawTextColored(dst.Width()-len(hp)-1, 0, hp, core.HealthColor(g.fortress.Ratio()))

	if g.noticeTicks > 0 && g.notice != "" {
		x := len(left) + 4
		if x+len(g.notice) < dst.Width()-len(hp)-2 {
			dst.DrawTextColored(x, 0, g.notice, core.ColorOrange)
		}
	}
}

// renderGameOver draws the final score box.
func (g *Game) renderGameOver(dst *core.Screen) {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  |  Level: %d  |  Press R to restart", g.eco.Score(), g.eco.Level())

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightRed)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}

func formatMoney(n int) string {
	return fmt.Sprintf("%d$", n)
}
