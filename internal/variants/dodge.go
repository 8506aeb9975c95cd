package variants

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/registry"
)

// Dodge never ends: hits cost points, dodges and survival time earn them.
func Dodge(cfg *config.SkyfallConfig) {
	cfg.Arena.Hallway.Enabled = false
	cfg.Spawn.Policy = config.SpawnRandom
	cfg.Spawn.EnemyChance = 0.6
	cfg.Spawn.Interval = 2.0
	cfg.Enemy.Penalty = 10
	cfg.Obstacle.Penalty = 5
	cfg.Scoring.OnHit = config.HitScore
	cfg.Scoring.SurvivalRate = 1
}

func init() {
	registry.Register(registry.Variant{
		ID:          "dodge",
		Title:       "Dodge",
		Description: "No health: hits cost 10/5 points, survival earns 1 point per second",
		Apply:       Dodge,
	})
}
