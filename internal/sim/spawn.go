package sim

import (
	"math"

	"github.com/vovakirdan/skyfall/internal/config"
)

// spawn runs one spawn event according to the configured policy.
func (g *Game) spawn() {
	switch g.cfg.Spawn.Policy {
	case config.SpawnScheduled:
		g.spawnHazard(HazardEnemy)
		if every := g.cfg.Spawn.ObstacleEvery; every > 0 && wholeSeconds(g.elapsed)%every == 0 {
			g.spawnHazard(HazardObstacle)
		}
	default:
		if g.rng.Float64() < g.cfg.Spawn.EnemyChance {
			g.spawnHazard(HazardEnemy)
		} else {
			g.spawnHazard(HazardObstacle)
		}
	}
}

// spawnHazard places a hazard of type t just above the visible area at a
// random x inside the playable bounds. A full pool drops the hazard.
func (g *Game) spawnHazard(t HazardType) {
	params := hazardParams(&g.cfg, t)
	b := g.bounds()

	h := Hazard{
		X:    g.rng.Range(b.X, b.Right()-params.Width),
		Y:    -params.Height,
		VY:   params.Speed,
		W:    params.Width,
		H:    params.Height,
		Type: t,
	}
	if g.pool.Acquire(h) {
		g.stats.Spawned++
	} else {
		g.stats.Dropped++
	}
}

// wholeSeconds truncates elapsed simulated time, tolerating float drift
// from summing many small frame deltas.
func wholeSeconds(elapsed float64) int {
	return int(math.Floor(elapsed + 1e-9))
}
