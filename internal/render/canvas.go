package render

import (
	"math"

	"github.com/vovakirdan/skyfall/internal/core"
)

// FillChar is the rune used for every filled cell.
const FillChar = '█'

// Canvas is a Sink that rasterizes pixel space onto a character Screen.
// The arena is stretched to fill the screen below the top reserved rows.
type Canvas struct {
	screen *core.Screen
	arena  core.Rect
	top    int // Rows reserved above the playfield (HUD)
}

// NewCanvas creates a canvas drawing arena into screen, leaving the first
// top rows untouched.
func NewCanvas(screen *core.Screen, arena core.Rect, top int) *Canvas {
	return &Canvas{screen: screen, arena: arena, top: max(top, 0)}
}

// rows returns the number of rows available for the playfield.
func (c *Canvas) rows() int {
	return max(c.screen.Height()-c.top, 0)
}

// scale returns cells per pixel on each axis.
func (c *Canvas) scale() (float64, float64) {
	if c.arena.W <= 0 || c.arena.H <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.arena.W, float64(c.rows()) / c.arena.H
}

// Clear fills the playfield rows with blank cells carrying the background color.
func (c *Canvas) Clear(col core.RGBA) {
	c.screen.FillRect(0, c.top, c.screen.Width(), c.rows(), ' ', col)
}

// DrawRect fills every cell the rectangle touches. Non-empty rectangles
// always cover at least one cell so small hazards stay visible.
func (c *Canvas) DrawRect(x, y, w, h float64, col core.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := c.scale()
	x0, x1 := cellSpan((x-c.arena.X)*sx, (x+w-c.arena.X)*sx)
	y0, y1 := cellSpan((y-c.arena.Y)*sy, (y+h-c.arena.Y)*sy)

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.plot(cx, cy, col)
		}
	}
}

// DrawTriangle fills every cell whose center lies inside the triangle.
// A triangle too thin to cover any center marks the cell under its centroid.
func (c *Canvas) DrawTriangle(x1, y1, x2, y2, x3, y3 float64, col core.RGBA) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}
	// Work in cell space
	ax, ay := (x1-c.arena.X)*sx, (y1-c.arena.Y)*sy
	bx, by := (x2-c.arena.X)*sx, (y2-c.arena.Y)*sy
	px, py := (x3-c.arena.X)*sx, (y3-c.arena.Y)*sy

	minX := int(math.Floor(math.Min(ax, math.Min(bx, px))))
	maxX := int(math.Ceil(math.Max(ax, math.Max(bx, px))))
	minY := int(math.Floor(math.Min(ay, math.Min(by, py))))
	maxY := int(math.Ceil(math.Max(ay, math.Max(by, py))))

	drawn := false
	for cy := minY; cy < maxY; cy++ {
		for cx := minX; cx < maxX; cx++ {
			if pointInTriangle(float64(cx)+0.5, float64(cy)+0.5, ax, ay, bx, by, px, py) {
				c.plot(cx, cy, col)
				drawn = true
			}
		}
	}
	if !drawn {
		c.plot(int(math.Floor((ax+bx+px)/3)), int(math.Floor((ay+by+py)/3)), col)
	}
}

// plot colors one playfield cell, blending translucent colors over what is there.
func (c *Canvas) plot(cx, cy int, col core.RGBA) {
	if cx < 0 || cy < 0 || cx >= c.screen.Width() || cy >= c.rows() {
		return
	}
	y := cy + c.top
	if col.A < 1 {
		col = col.Over(c.screen.GetCell(cx, y).Color)
	}
	c.screen.SetCell(cx, y, FillChar, col)
}

// cellSpan converts a continuous [a, b) range to covered cell indices,
// always returning at least one cell.
func cellSpan(a, b float64) (int, int) {
	lo := int(math.Floor(a))
	hi := int(math.Ceil(b))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// pointInTriangle uses edge signs, accepting either winding order.
func pointInTriangle(x, y, ax, ay, bx, by, cx, cy float64) bool {
	d1 := edgeSign(x, y, ax, ay, bx, by)
	d2 := edgeSign(x, y, bx, by, cx, cy)
	d3 := edgeSign(x, y, cx, cy, ax, ay)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(x, y, ax, ay, bx, by float64) float64 {
	return (x-bx)*(ay-by) - (ax-bx)*(y-by)
}
