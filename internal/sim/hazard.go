package sim

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// HazardType tags the kind of a hazard.
type HazardType int

const (
	HazardEnemy HazardType = iota
	HazardObstacle
)

// String returns a human-readable name for the hazard type.
func (t HazardType) String() string {
	switch t {
	case HazardEnemy:
		return "enemy"
	case HazardObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Hazard is a falling entity occupying one pool slot.
type Hazard struct {
	X, Y   float64
	VY     float64 // Downward velocity, pixels per second
	W, H   float64
	Type   HazardType
	Active bool
}

// Rect returns the collision rectangle for this hazard.
func (h Hazard) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}

// HazardView is a read-only copy of an active hazard, handed to renderers.
type HazardView struct {
	X, Y          float64
	Width, Height float64
	Type          HazardType
}

// view copies the externally visible fields.
func (h Hazard) view() HazardView {
	return HazardView{X: h.X, Y: h.Y, Width: h.W, Height: h.H, Type: h.Type}
}

// hazardParams returns the per-type constants for t.
func hazardParams(cfg *config.SkyfallConfig, t HazardType) config.HazardConfig {
	if t == HazardObstacle {
		return cfg.Obstacle
	}
	return cfg.Enemy
}
