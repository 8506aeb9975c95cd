package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const configFile = "skyfall.yaml"

// LoadSkyfall loads the game configuration.
// Search order: customPath -> ~/.skyfall/configs/skyfall.yaml -> ./configs/skyfall.yaml -> embedded default
func LoadSkyfall(customPath string) (SkyfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkyfallConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SkyfallConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			log.Warn("ignoring config file", "path", path, "error", err)
			continue
		}
		log.Debug("loaded config", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSkyfallYAML)
	if err != nil {
		log.Debug("embedded config unusable, using built-in defaults", "error", err)
		return DefaultSkyfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Fields missing from data keep their default values.
func Parse(data []byte) (SkyfallConfig, error) {
	cfg := DefaultSkyfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyfallConfig{}, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SkyfallConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SkyfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfall", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets change constant tuning only; there is no progression over time.
func ApplyPreset(cfg *SkyfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Interval *= 1.5
		cfg.Player.Health *= 2
		cfg.Player.Speed *= 1.25
	case DifficultyHard:
		cfg.Spawn.Interval *= 0.6
		cfg.Player.Health = max(cfg.Player.Health/2, 1)
		cfg.Enemy.Speed *= 1.3
		cfg.Obstacle.Speed *= 1.3
	}
}
