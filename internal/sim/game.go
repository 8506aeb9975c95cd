// Package sim implements the Skyfall simulation core: a vertical-scrolling
// shooter where the player dodges falling hazards.
//
// The core is a synchronous state machine advanced once per frame by Update.
// It never reads a clock, never renders and never logs; the platform feeds it
// key state and frame deltas and reads results back through the accessors.
package sim

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Stats counts hazard events since the last Init.
type Stats struct {
	Spawned int // Hazards placed into the pool
	Dropped int // Spawns discarded because the pool was full
	Dodged  int // Hazards that left the playfield untouched
	Hits    int // Hazards that collided with the player
}

// Game holds the complete simulation state.
//
// The zero value is an uninitialized game: accessors return zero values and
// the first Update initializes it with the default configuration.
type Game struct {
	cfg  config.SkyfallConfig
	seed int64

	player     Player
	pool       Pool
	keys       core.KeyTable
	rng        Rand
	score      int
	spawnTimer float64 // Seconds since the last spawn event
	elapsed    float64 // Simulated seconds since Init
	survival   float64 // Fractional survival points not yet credited
	stats      Stats

	configured  bool
	initialized bool
}

// New creates a game with the given configuration and RNG seed, ready to run.
func New(cfg config.SkyfallConfig, seed int64) *Game {
	g := &Game{}
	g.Configure(cfg, seed)
	g.Init()
	return g
}

// Configure replaces the configuration and seed used by the next Init.
// The running state is not touched.
func (g *Game) Configure(cfg config.SkyfallConfig, seed int64) {
	g.cfg = cfg
	g.seed = seed
	g.configured = true
}

// SetSeed replaces the seed used by the next Init.
func (g *Game) SetSeed(seed int64) {
	g.seed = seed
}

// Init (re)constructs the starting state. It is safe to call at any time,
// including after game over, and calling it twice equals calling it once.
func (g *Game) Init() {
	if !g.configured {
		g.Configure(config.DefaultSkyfallConfig(), g.seed)
	}

	b := g.bounds()
	pc := g.cfg.Player
	g.player = Player{
		X:      b.X + (b.W-pc.Width)/2,
		Y:      b.Bottom() - pc.Height - pc.BottomMargin,
		W:      pc.Width,
		H:      pc.Height,
		Health: pc.Health,
		Alive:  pc.Health > 0,
	}
	g.player.clamp(b)

	if g.pool.Cap() != g.cfg.Spawn.Capacity {
		g.pool = NewPool(g.cfg.Spawn.Capacity)
	} else {
		g.pool.Reset()
	}

	g.keys.Reset()
	g.rng.Seed(g.seed)
	g.score = 0
	g.spawnTimer = 0
	g.elapsed = 0
	g.survival = 0
	g.stats = Stats{}
	g.initialized = true
}

// Update advances the simulation by dt seconds.
// The caller is responsible for capping dt; large steps may let hazards
// tunnel through the player.
func (g *Game) Update(dt float64) {
	if !g.initialized {
		g.Init()
	}
	if !g.player.Alive || g.player.Health <= 0 {
		return
	}
	if dt < 0 {
		dt = 0
	}

	g.player.steer(&g.keys, g.cfg.Player.Speed, g.cfg.Player.Vertical)
	g.player.move(dt)
	g.player.clamp(g.bounds())

	g.elapsed += dt
	g.spawnTimer += dt
	if g.spawnTimer >= g.cfg.Spawn.Interval {
		g.spawnTimer = 0
		g.spawn()
	}

	g.advanceHazards(dt)

	if g.player.Alive {
		g.creditSurvival(dt)
	}
}

// advanceHazards moves every active hazard and resolves collision before
// the off-screen check, so a hazard that does both in one tick counts as a hit.
func (g *Game) advanceHazards(dt float64) {
	playerRect := g.player.Rect()
	floor := g.cfg.Arena.Height

	g.pool.each(func(h *Hazard) {
		h.Y += h.VY * dt

		if h.Rect().Intersects(playerRect) {
			h.Active = false
			g.stats.Hits++
			g.applyHit(h.Type)
			return
		}

		if h.Y > floor {
			h.Active = false
			g.stats.Dodged++
			g.score += hazardParams(&g.cfg, h.Type).Reward
		}
	})
}

// applyHit applies the configured on-hit model for a hazard of type t.
func (g *Game) applyHit(t HazardType) {
	params := hazardParams(&g.cfg, t)

	switch g.cfg.Scoring.OnHit {
	case config.HitScore:
		g.score -= params.Penalty
	case config.HitInstant:
		g.player.Health = 0
		g.player.Alive = false
	default:
		g.player.Health = max(g.player.Health-params.Damage, 0)
		if g.player.Health <= 0 {
			g.player.Alive = false
		}
	}
}

// creditSurvival adds time-based score, carrying fractions between ticks.
func (g *Game) creditSurvival(dt float64) {
	rate := g.cfg.Scoring.SurvivalRate
	if rate <= 0 {
		return
	}
	g.survival += rate * dt
	whole := int(g.survival)
	g.score += whole
	g.survival -= float64(whole)
}

// bounds returns the playable region: the full arena or the centered hallway.
func (g *Game) bounds() core.Rect {
	a := g.cfg.Arena
	if a.Hallway.Enabled {
		return core.NewRect((a.Width-a.Hallway.Width)/2, 0, a.Hallway.Width, a.Height)
	}
	return core.NewRect(0, 0, a.Width, a.Height)
}

// KeyDown marks a key as held. Codes outside 0..255 are ignored.
func (g *Game) KeyDown(code core.KeyCode) {
	g.keys.Press(code)
}

// KeyUp marks a key as released. Codes outside 0..255 are ignored.
func (g *Game) KeyUp(code core.KeyCode) {
	g.keys.Release(code)
}

// ReleaseKeys releases every held key.
func (g *Game) ReleaseKeys() {
	g.keys.Reset()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// PlayerX returns the player's left edge in pixels.
func (g *Game) PlayerX() float64 {
	return g.player.X
}

// PlayerY returns the player's top edge in pixels.
func (g *Game) PlayerY() float64 {
	return g.player.Y
}

// PlayerHealth returns the remaining health.
func (g *Game) PlayerHealth() int {
	return g.player.Health
}

// Alive returns false once the game is over.
func (g *Game) Alive() bool {
	return g.player.Alive
}

// GameOver returns true when the simulation is frozen waiting for Init.
func (g *Game) GameOver() bool {
	return g.initialized && !g.player.Alive
}

// EntityCount returns the number of active hazards.
func (g *Game) EntityCount() int {
	return g.pool.Len()
}

// Entity returns a copy of the index-th currently active hazard.
// Indices are compacted and not stable across ticks; re-query every frame.
func (g *Game) Entity(index int) (HazardView, bool) {
	h, ok := g.pool.Nth(index)
	if !ok {
		return HazardView{}, false
	}
	return h.view(), true
}

// Elapsed returns simulated seconds since Init.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Seed returns the seed used by the last Init.
func (g *Game) Seed() int64 {
	return g.seed
}

// Stats returns hazard event counters since Init.
func (g *Game) Stats() Stats {
	return g.stats
}

// Config returns the configuration in use.
func (g *Game) Config() config.SkyfallConfig {
	return g.cfg
}
