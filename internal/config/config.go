// Package config provides YAML-based game configuration loading and
// difficulty presets for Skyfall.
package config

import (
	"errors"
	"fmt"
)

// SkyfallConfig contains every tunable of the simulation.
type SkyfallConfig struct {
	Arena    ArenaConfig   `yaml:"arena"`
	Player   PlayerConfig  `yaml:"player"`
	Spawn    SpawnConfig   `yaml:"spawn"`
	Enemy    HazardConfig  `yaml:"enemy"`
	Obstacle HazardConfig  `yaml:"obstacle"`
	Scoring  ScoringConfig `yaml:"scoring"`
}

// ArenaConfig defines the pixel-space playfield.
type ArenaConfig struct {
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Hallway HallwayConfig `yaml:"hallway"`
}

// HallwayConfig narrows player and hazard motion to a centered strip.
type HallwayConfig struct {
	Enabled bool    `yaml:"enabled"`
	Width   float64 `yaml:"width"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per second
	Health       int     `yaml:"health"`        // Starting health
	Vertical     bool    `yaml:"vertical"`      // Allow up/down movement
	BottomMargin float64 `yaml:"bottom_margin"` // Spawn distance from the bottom edge
}

// SpawnPolicy selects how hazards are chosen at each spawn event.
type SpawnPolicy string

const (
	// SpawnRandom draws one value and picks Enemy below EnemyChance, else Obstacle.
	SpawnRandom SpawnPolicy = "random"
	// SpawnScheduled always spawns one Enemy and adds an Obstacle every ObstacleEvery seconds.
	SpawnScheduled SpawnPolicy = "scheduled"
)

// SpawnConfig defines the hazard pool and spawn timing.
type SpawnConfig struct {
	Interval      float64     `yaml:"interval"` // Seconds between spawn events
	Policy        SpawnPolicy `yaml:"policy"`
	EnemyChance   float64     `yaml:"enemy_chance"`
	ObstacleEvery int         `yaml:"obstacle_every"` // Seconds, scheduled policy only
	Capacity      int         `yaml:"capacity"`       // Fixed hazard pool size
}

// HazardConfig defines one hazard type.
type HazardConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`   // Downward pixels per second
	Damage  int     `yaml:"damage"`  // Health lost on contact (health model)
	Penalty int     `yaml:"penalty"` // Score lost on contact (score model)
	Reward  int     `yaml:"reward"`  // Score gained when dodged
}

// HitModel selects what a collision does to the player.
type HitModel string

const (
	// HitHealth subtracts the hazard's damage from player health.
	HitHealth HitModel = "health"
	// HitScore subtracts the hazard's penalty from the score. The player never dies.
	HitScore HitModel = "score"
	// HitInstant ends the game on any contact.
	HitInstant HitModel = "instant"
)

// ScoringConfig defines the on-hit model and passive scoring.
type ScoringConfig struct {
	OnHit        HitModel `yaml:"on_hit"`
	SurvivalRate float64  `yaml:"survival_rate"` // Points per simulated second, 0 disables
}

// DifficultyPreset represents a named set of constant tuning values.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate checks that the configuration can drive a simulation.
func (c SkyfallConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.Hallway.Enabled && (c.Arena.Hallway.Width <= 0 || c.Arena.Hallway.Width > c.Arena.Width) {
		errs = append(errs, fmt.Errorf("hallway width %v must be in (0, %v]", c.Arena.Hallway.Width, c.Arena.Width))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Width > c.playableWidth() || c.Player.Height > c.Arena.Height {
		errs = append(errs, errors.New("player does not fit the playable area"))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, errors.New("player speed must not be negative"))
	}
	if c.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player health must be positive, got %d", c.Player.Health))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %v", c.Spawn.Interval))
	}
	if c.Spawn.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("spawn capacity must be positive, got %d", c.Spawn.Capacity))
	}
	switch c.Spawn.Policy {
	case SpawnRandom:
		if c.Spawn.EnemyChance < 0 || c.Spawn.EnemyChance > 1 {
			errs = append(errs, fmt.Errorf("enemy chance %v must be in [0, 1]", c.Spawn.EnemyChance))
		}
	case SpawnScheduled:
		if c.Spawn.ObstacleEvery <= 0 {
			errs = append(errs, errors.New("obstacle_every must be positive with the scheduled policy"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown spawn policy %q", c.Spawn.Policy))
	}
	hazards := []struct {
		name string
		h    HazardConfig
	}{
		{"enemy", c.Enemy},
		{"obstacle", c.Obstacle},
	}
	for _, hz := range hazards {
		name, h := hz.name, hz.h
		if h.Width <= 0 || h.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s size must be positive", name))
		}
		if h.Width > c.playableWidth() {
			errs = append(errs, fmt.Errorf("%s is wider than the playable area", name))
		}
		if h.Speed < 0 {
			errs = append(errs, fmt.Errorf("%s speed must not be negative", name))
		}
	}
	switch c.Scoring.OnHit {
	case HitHealth, HitScore, HitInstant:
	default:
		errs = append(errs, fmt.Errorf("unknown on_hit model %q", c.Scoring.OnHit))
	}
	if c.Scoring.SurvivalRate < 0 {
		errs = append(errs, errors.New("survival rate must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// playableWidth returns the width hazards and the player move within.
func (c SkyfallConfig) playableWidth() float64 {
	if c.Arena.Hallway.Enabled {
		return c.Arena.Hallway.Width
	}
	return c.Arena.Width
}
