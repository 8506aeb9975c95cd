package sim

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Snapshot is a self-contained copy of everything a renderer needs.
// It shares no memory with the Game.
type Snapshot struct {
	Arena      core.Rect // Full playfield
	Bounds     core.Rect // Playable region (hallway when enabled)
	Hallway    bool
	Player     core.Rect
	Health     int
	MaxHealth  int
	ShowHealth bool // Health changes only with the health hit model
	Alive      bool
	Score      int
	Hazards    []HazardView
	Elapsed    float64
}

// Snapshot copies the current visible state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Arena:      core.NewRect(0, 0, g.cfg.Arena.Width, g.cfg.Arena.Height),
		Bounds:     g.bounds(),
		Hallway:    g.cfg.Arena.Hallway.Enabled,
		Player:     g.player.Rect(),
		Health:     g.player.Health,
		MaxHealth:  g.cfg.Player.Health,
		ShowHealth: g.cfg.Scoring.OnHit == config.HitHealth,
		Alive:      g.player.Alive,
		Score:      g.score,
		Hazards:    make([]HazardView, 0, g.pool.Len()),
		Elapsed:    g.elapsed,
	}
	g.pool.each(func(h *Hazard) {
		s.Hazards = append(s.Hazards, h.view())
	})
	return s
}
