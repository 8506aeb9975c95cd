package render

import (
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/sim"
)

// Health bar geometry in pixels.
const (
	healthBarX = 10
	healthBarY = 10
	healthBarW = 150
	healthBarH = 8
)

// Frame draws one complete frame of s into sink.
func Frame(s sim.Snapshot, sink Sink) {
	sink.Clear(core.ColorBackground)

	if s.Hallway {
		b := s.Bounds
		sink.DrawRect(b.X, b.Y, b.W, b.H, core.ColorHallway)
	}

	for _, h := range s.Hazards {
		drawHazard(sink, h)
	}

	if s.Alive {
		drawPlayer(sink, s.Player, core.ColorPlayer)
	} else {
		drawPlayer(sink, s.Player, core.ColorHealthLost)
	}

	if s.ShowHealth && s.MaxHealth > 0 {
		drawHealthBar(sink, s.Health, s.MaxHealth)
	}
}

// drawHazard draws enemies as downward-pointing triangles and obstacles as blocks.
func drawHazard(sink Sink, h sim.HazardView) {
	switch h.Type {
	case sim.HazardEnemy:
		sink.DrawTriangle(
			h.X, h.Y,
			h.X+h.Width, h.Y,
			h.X+h.Width/2, h.Y+h.Height,
			core.ColorEnemy,
		)
	default:
		sink.DrawRect(h.X, h.Y, h.Width, h.Height, core.ColorObstacle)
	}
}

// drawPlayer draws the ship as an upward-pointing triangle.
func drawPlayer(sink Sink, r core.Rect, c core.RGBA) {
	sink.DrawTriangle(
		r.X+r.W/2, r.Y,
		r.Right(), r.Bottom(),
		r.X, r.Bottom(),
		c,
	)
}

func drawHealthBar(sink Sink, health, maxHealth int) {
	frac := core.ClampF(float64(health)/float64(maxHealth), 0, 1)
	sink.DrawRect(healthBarX, healthBarY, healthBarW, healthBarH, core.ColorHealthLost)
	if frac > 0 {
		sink.DrawRect(healthBarX, healthBarY, healthBarW*frac, healthBarH, core.ColorHealthBar)
	}
}
