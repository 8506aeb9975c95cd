package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultSkyfallYAML []byte

// DefaultSkyfallConfig returns the default configuration.
// It mirrors defaults/skyfall.yaml and is used when the embedded file cannot be parsed.
func DefaultSkyfallConfig() SkyfallConfig {
	return SkyfallConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
			Hallway: HallwayConfig{
				Enabled: false,
				Width:   400,
			},
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       40,
			Speed:        200,
			Health:       100,
			Vertical:     true,
			BottomMargin: 20,
		},
		Spawn: SpawnConfig{
			Interval:      1.5,
			Policy:        SpawnRandom,
			EnemyChance:   0.6,
			ObstacleEvery: 3,
			Capacity:      32,
		},
		Enemy: HazardConfig{
			Width:   30,
			Height:  30,
			Speed:   150,
			Damage:  20,
			Penalty: 10,
			Reward:  2,
		},
		Obstacle: HazardConfig{
			Width:   60,
			Height:  20,
			Speed:   100,
			Damage:  10,
			Penalty: 5,
			Reward:  1,
		},
		Scoring: ScoringConfig{
			OnHit:        HitHealth,
			SurvivalRate: 0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSkyfallYAML
}
