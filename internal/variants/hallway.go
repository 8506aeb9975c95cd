// Package variants registers the built-in Skyfall rule-sets.
// Import it for side effects.
package variants

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/registry"
)

// Hallway is the canonical rule-set: a health bar, flat per-type damage and
// a narrow corridor to dodge in.
func Hallway(cfg *config.SkyfallConfig) {
	cfg.Arena.Hallway.Enabled = true
	cfg.Arena.Hallway.Width = 400
	cfg.Spawn.Policy = config.SpawnRandom
	cfg.Spawn.EnemyChance = 0.6
	cfg.Spawn.Interval = 1.5
	cfg.Enemy.Damage = 20
	cfg.Obstacle.Damage = 10
	cfg.Scoring.OnHit = config.HitHealth
	cfg.Scoring.SurvivalRate = 0
}

func init() {
	registry.Register(registry.Variant{
		ID:          "hallway",
		Title:       "Hallway",
		Description: "Health bar, 20/10 damage, hazards confined to a central corridor",
		Apply:       Hallway,
	})
}
