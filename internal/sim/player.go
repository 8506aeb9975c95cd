package sim

import (
	"github.com/vovakirdan/skyfall/internal/core"
)

// Movement keys per direction. Arrows and WASD are interchangeable.
var (
	keysLeft  = []core.KeyCode{core.KeyLeft, core.KeyA}
	keysRight = []core.KeyCode{core.KeyRight, core.KeyD}
	keysUp    = []core.KeyCode{core.KeyUp, core.KeyW}
	keysDown  = []core.KeyCode{core.KeyDown, core.KeyS}
)

// Player is the ship controlled by the key table.
type Player struct {
	X, Y   float64 // Top-left position in pixels
	VX, VY float64 // Velocity in pixels per second
	W, H   float64
	Health int
	Alive  bool
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// steer derives velocity from the currently held keys.
// Velocity is never accumulated. Per axis the checks run in order
// (left then right, up then down) and the last held direction wins.
func (p *Player) steer(keys *core.KeyTable, speed float64, vertical bool) {
	p.VX = 0
	if keys.Any(keysLeft...) {
		p.VX = -speed
	}
	if keys.Any(keysRight...) {
		p.VX = speed
	}

	p.VY = 0
	if !vertical {
		return
	}
	if keys.Any(keysUp...) {
		p.VY = -speed
	}
	if keys.Any(keysDown...) {
		p.VY = speed
	}
}

// move integrates position over dt seconds.
func (p *Player) move(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// clamp repositions the player inside bounds. Velocity is left alone;
// it is recomputed from the keys on the next tick anyway.
func (p *Player) clamp(bounds core.Rect) {
	p.X = core.ClampF(p.X, bounds.X, bounds.Right()-p.W)
	p.Y = core.ClampF(p.Y, bounds.Y, bounds.Bottom()-p.H)
}
