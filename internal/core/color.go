package core

import "fmt"

// RGBA is a color with normalized 0-1 channels, as consumed by draw sinks.
type RGBA struct {
	R, G, B, A float64
}

// Predefined colors for game elements.
var (
	ColorBackground = RGBA{R: 0.02, G: 0.02, B: 0.08, A: 1}
	ColorHallway    = RGBA{R: 0.10, G: 0.10, B: 0.18, A: 1}
	ColorPlayer     = RGBA{R: 0.20, G: 0.80, B: 1.00, A: 1}
	ColorEnemy      = RGBA{R: 1.00, G: 0.25, B: 0.25, A: 1}
	ColorObstacle   = RGBA{R: 0.60, G: 0.60, B: 0.60, A: 1}
	ColorHealthBar  = RGBA{R: 0.20, G: 0.90, B: 0.30, A: 1}
	ColorHealthLost = RGBA{R: 0.40, G: 0.05, B: 0.05, A: 1}
	ColorWhite      = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// bytes converts the channels to 0-255, clamping out-of-range values.
func (c RGBA) bytes() (uint8, uint8, uint8) {
	conv := func(v float64) uint8 {
		return uint8(ClampF(v, 0, 1)*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B)
}

// RGB8 returns the color channels scaled to 0-255.
func (c RGBA) RGB8() (r, g, b uint8) {
	return c.bytes()
}

// Hex returns the color as a #rrggbb string. Alpha is ignored.
func (c RGBA) Hex() string {
	r, g, b := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Over blends c over dst using c's alpha.
func (c RGBA) Over(dst RGBA) RGBA {
	a := ClampF(c.A, 0, 1)
	return RGBA{
		R: c.R*a + dst.R*(1-a),
		G: c.G*a + dst.G*(1-a),
		B: c.B*a + dst.B*(1-a),
		A: 1,
	}
}
