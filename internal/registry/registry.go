// Package registry provides a global registry of rule-set variants.
// Variants register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/sim"
)

// Variant is a named overlay on the base configuration.
type Variant struct {
	// ID is a unique identifier (e.g., "hallway"), used by the CLI and score storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary of the rules.
	Description string

	// Apply adjusts the base configuration for this variant.
	Apply func(cfg *config.SkyfallConfig)
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant with empty ID")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		result = append(result, VariantInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Title returns the display name of a variant, or the ID if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if v, ok := variants[id]; ok {
		return v.Title
	}
	return id
}

// Resolve applies the variant's overlay to base and validates the result.
// Returns an error if the variant ID is not registered.
func Resolve(id string, base config.SkyfallConfig) (config.SkyfallConfig, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return config.SkyfallConfig{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	cfg := base
	if v.Apply != nil {
		v.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.SkyfallConfig{}, fmt.Errorf("registry: variant %q: %w", id, err)
	}
	return cfg, nil
}

// Create builds a ready-to-run game for the given variant.
func Create(id string, base config.SkyfallConfig, seed int64) (*sim.Game, error) {
	cfg, err := Resolve(id, base)
	if err != nil {
		return nil, err
	}
	return sim.New(cfg, seed), nil
}

// ResolvePreset resolves the variant, then applies a difficulty preset on top
// so the preset scales the variant's own tuning.
func ResolvePreset(id string, base config.SkyfallConfig, preset config.DifficultyPreset) (config.SkyfallConfig, error) {
	cfg, err := Resolve(id, base)
	if err != nil {
		return config.SkyfallConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SkyfallConfig{}, fmt.Errorf("registry: variant %q with preset %q: %w", id, preset, err)
	}
	return cfg, nil
}
