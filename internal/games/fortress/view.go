package fortress

import "github.com/vovakirdan/fortress/internal/core"

// hudRows is the number of screen rows reserved above the battlefield.
const hudRows = 1

// viewport maps world units onto the character grid below the HUD.
type viewport struct {
	worldW, worldH int
	cols, rows     int
	top            int
}

func newViewport(worldW, worldH, screenW, screenH int) viewport {
	return viewport{
		worldW: worldW,
		worldH: worldH,
		cols:   max(screenW, 1),
		rows:   max(screenH-hudRows, 1),
		top:    hudRows,
	}
}

// floorDiv divides rounding toward negative infinity, so positions left of
// the world edge land off screen instead of on column 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (v viewport) col(wx int) int {
	return floorDiv(wx*v.cols, v.worldW)
}

func (v viewport) row(wy int) int {
	return v.top + floorDiv(wy*v.rows, v.worldH)
}

// cell returns the screen cell covering a world point.
func (v viewport) cell(p core.Point) (int, int) {
	return v.col(p.X), v.row(p.Y)
}

// rect returns the cells covered by a world rectangle, at least one cell in each direction.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()-1), v.row(r.Bottom()-1)
	return core.NewRect(x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1))
}

// world returns the world point at the center of a screen cell.
// Cells outside the battlefield report false.
func (v viewport) world(x, y int) (core.Point, bool) {
	y -= v.top
	if x < 0 || x >= v.cols || y < 0 || y >= v.rows {
		return core.Point{}, false
	}
	return core.Pt(
		(2*x+1)*v.worldW/(2*v.cols),
		(2*y+1)*v.worldH/(2*v.rows),
	), true
}

// cellSize returns the world size of one cell, used as the cursor step.
func (v viewport) cellSize() (int, int) {
	return max(v.worldW/v.cols, 1), max(v.worldH/v.rows, 1)
}
