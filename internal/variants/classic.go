package variants

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/registry"
)

// Classic is one-hit-and-out with a fixed spawn schedule.
func Classic(cfg *config.SkyfallConfig) {
	cfg.Arena.Hallway.Enabled = false
	cfg.Spawn.Policy = config.SpawnScheduled
	cfg.Spawn.Interval = 2.0
	cfg.Spawn.ObstacleEvery = 3
	cfg.Scoring.OnHit = config.HitInstant
	cfg.Scoring.SurvivalRate = 0
}

func init() {
	registry.Register(registry.Variant{
		ID:          "classic",
		Title:       "Classic",
		Description: "One hit ends the run; an enemy every 2s, an obstacle on every third second",
		Apply:       Classic,
	})
}
