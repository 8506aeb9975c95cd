package sim

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

const epsilon = 1e-9

// quietConfig returns the default config with spawning effectively disabled,
// so tests control every hazard themselves.
func quietConfig() config.SkyfallConfig {
	cfg := config.DefaultSkyfallConfig()
	cfg.Spawn.Interval = 1e6
	return cfg
}

// placeHazard puts a hazard directly into the pool.
func placeHazard(t *testing.T, g *Game, h Hazard) {
	t.Helper()
	if !g.pool.Acquire(h) {
		t.Fatal("placeHazard: pool is full")
	}
}

// enemyAt builds an enemy hazard at (x, y) using the game's enemy constants.
func enemyAt(g *Game, x, y float64) Hazard {
	params := g.cfg.Enemy
	return Hazard{X: x, Y: y, VY: params.Speed, W: params.Width, H: params.Height, Type: HazardEnemy}
}

func TestInitStartingState(t *testing.T) {
	g := New(quietConfig(), 1)

	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if g.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, expected 0", g.EntityCount())
	}
	if g.PlayerX() != 380 || g.PlayerY() != 540 {
		t.Errorf("Player at (%v, %v), expected (380, 540)", g.PlayerX(), g.PlayerY())
	}
	if g.PlayerHealth() != 100 || !g.Alive() {
		t.Errorf("Player health %d alive %v, expected 100 and alive", g.PlayerHealth(), g.Alive())
	}
}

func TestInitIdempotent(t *testing.T) {
	cfg := config.DefaultSkyfallConfig()

	fresh := New(cfg, 99)

	g := New(cfg, 99)
	g.KeyDown(core.KeyLeft)
	for i := 0; i < 300; i++ {
		g.Update(1.0 / 60)
	}
	g.Init()
	g.Init()

	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Errorf("Init twice should equal a fresh game:\n%+v\n%+v", g.Snapshot(), fresh.Snapshot())
	}
	if g.keys.Down(core.KeyLeft) {
		t.Error("Init should release held keys")
	}
	if g.Stats() != (Stats{}) {
		t.Errorf("Init should clear stats, got %+v", g.Stats())
	}
}

func TestUninitializedGame(t *testing.T) {
	var g Game

	if g.Score() != 0 || g.EntityCount() != 0 || g.PlayerX() != 0 || g.PlayerY() != 0 {
		t.Error("Accessors on an uninitialized game should return zero values")
	}
	if g.PlayerHealth() != 0 || g.Alive() || g.GameOver() {
		t.Error("Uninitialized game should be neither alive nor over")
	}
	if _, ok := g.Entity(0); ok {
		t.Error("Entity(0) on an uninitialized game should not exist")
	}

	// Out of range keys before init are ignored
	g.KeyDown(300)
	g.KeyUp(-4)

	// First update initializes with defaults
	g.Update(0)
	if !g.Alive() {
		t.Error("Update should lazily initialize the game")
	}
	if g.PlayerX() != 380 {
		t.Errorf("PlayerX() = %v, expected 380 after lazy init", g.PlayerX())
	}
}

func TestNoKeysPlayerStill(t *testing.T) {
	g := New(quietConfig(), 1)
	x, y := g.PlayerX(), g.PlayerY()

	g.Update(1.0)

	if g.PlayerX() != x || g.PlayerY() != y {
		t.Errorf("Player moved without input: (%v, %v) -> (%v, %v)", x, y, g.PlayerX(), g.PlayerY())
	}
}

func TestMoveLeft(t *testing.T) {
	g := New(quietConfig(), 1)
	x := g.PlayerX()

	g.KeyDown(core.KeyLeft)
	g.Update(0.1)

	if math.Abs(g.PlayerX()-(x-20)) > epsilon {
		t.Errorf("PlayerX() = %v, expected %v", g.PlayerX(), x-20)
	}
}

func TestMoveAllDirections(t *testing.T) {
	tests := []struct {
		name   string
		key    core.KeyCode
		dx, dy float64
	}{
		{"left arrow", core.KeyLeft, -20, 0},
		{"right arrow", core.KeyRight, 20, 0},
		{"up arrow", core.KeyUp, 0, -20},
		{"down arrow", core.KeyDown, 0, 20},
		{"a", core.KeyA, -20, 0},
		{"d", core.KeyD, 20, 0},
		{"w", core.KeyW, 0, -20},
		{"s", core.KeyS, 0, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.Player.BottomMargin = 100 // room to move down
			g := New(cfg, 1)
			x, y := g.PlayerX(), g.PlayerY()

			g.KeyDown(tc.key)
			g.Update(0.1)

			if math.Abs(g.PlayerX()-(x+tc.dx)) > epsilon || math.Abs(g.PlayerY()-(y+tc.dy)) > epsilon {
				t.Errorf("Player at (%v, %v), expected (%v, %v)", g.PlayerX(), g.PlayerY(), x+tc.dx, y+tc.dy)
			}
		})
	}
}

func TestVelocityNotAccumulated(t *testing.T) {
	g := New(quietConfig(), 1)
	x := g.PlayerX()

	g.KeyDown(core.KeyRight)
	g.Update(0.1)
	g.KeyUp(core.KeyRight)
	g.Update(0.1)

	if math.Abs(g.PlayerX()-(x+20)) > epsilon {
		t.Errorf("Player should stop once the key is released, x = %v, expected %v", g.PlayerX(), x+20)
	}
}

func TestOpposingKeysLastCheckedWins(t *testing.T) {
	g := New(quietConfig(), 1)
	x := g.PlayerX()

	g.KeyDown(core.KeyLeft)
	g.KeyDown(core.KeyRight)
	g.Update(0.1)

	if math.Abs(g.PlayerX()-(x+20)) > epsilon {
		t.Errorf("Right should win over left, x = %v, expected %v", g.PlayerX(), x+20)
	}
}

func TestClampToArena(t *testing.T) {
	g := New(quietConfig(), 1)

	g.KeyDown(core.KeyLeft)
	g.KeyDown(core.KeyUp)
	g.Update(10)

	if g.PlayerX() != 0 || g.PlayerY() != 0 {
		t.Errorf("Player should clamp to top-left, got (%v, %v)", g.PlayerX(), g.PlayerY())
	}

	// Clamping does not stick: moving away works immediately
	g.KeyUp(core.KeyLeft)
	g.KeyUp(core.KeyUp)
	g.KeyDown(core.KeyRight)
	g.Update(0.1)
	if math.Abs(g.PlayerX()-20) > epsilon {
		t.Errorf("Player should leave the wall, x = %v, expected 20", g.PlayerX())
	}

	g.KeyUp(core.KeyRight)
	g.KeyDown(core.KeyRight)
	g.KeyDown(core.KeyDown)
	g.Update(10)
	if g.PlayerX() != 760 || g.PlayerY() != 560 {
		t.Errorf("Player should clamp to bottom-right, got (%v, %v)", g.PlayerX(), g.PlayerY())
	}
}

func TestClampToHallway(t *testing.T) {
	cfg := quietConfig()
	cfg.Arena.Hallway.Enabled = true
	cfg.Arena.Hallway.Width = 400
	g := New(cfg, 1)

	if g.PlayerX() != 380 {
		t.Errorf("Player should start centered in the hallway, x = %v", g.PlayerX())
	}

	g.KeyDown(core.KeyLeft)
	g.Update(10)
	if g.PlayerX() != 200 {
		t.Errorf("Player should clamp to hallway left edge 200, got %v", g.PlayerX())
	}

	g.KeyUp(core.KeyLeft)
	g.KeyDown(core.KeyRight)
	g.Update(10)
	if g.PlayerX() != 560 {
		t.Errorf("Player should clamp to hallway right edge 560, got %v", g.PlayerX())
	}
}

func TestVerticalMovementDisabled(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Vertical = false
	g := New(cfg, 1)
	y := g.PlayerY()

	g.KeyDown(core.KeyUp)
	g.Update(0.5)

	if g.PlayerY() != y {
		t.Errorf("Vertical movement should be ignored, y %v -> %v", y, g.PlayerY())
	}
}

func TestOutOfRangeKeysIgnored(t *testing.T) {
	g := New(quietConfig(), 1)
	x, y := g.PlayerX(), g.PlayerY()

	g.KeyDown(-1)
	g.KeyDown(256)
	g.KeyDown(core.KeyLeft + 256)
	g.Update(0.5)

	if g.PlayerX() != x || g.PlayerY() != y {
		t.Error("Out of range key codes should not move the player")
	}
}

func TestDodgeRewardedOnce(t *testing.T) {
	g := New(quietConfig(), 1)
	placeHazard(t, g, enemyAt(g, 0, -30))

	// 150 px/s; needs more than 630 px of travel to pass the floor
	for i := 0; i < 10; i++ {
		g.Update(0.5)
	}

	if g.EntityCount() != 0 {
		t.Errorf("Hazard should have left the arena, EntityCount() = %d", g.EntityCount())
	}
	if g.Score() != 2 {
		t.Errorf("Score() = %d, expected enemy reward 2", g.Score())
	}
	if g.Stats().Dodged != 1 {
		t.Errorf("Stats().Dodged = %d, expected 1", g.Stats().Dodged)
	}

	g.Update(0.5)
	if g.Score() != 2 {
		t.Errorf("Reward should be credited once, Score() = %d", g.Score())
	}
}

func TestDodgeSingleLargeStep(t *testing.T) {
	g := New(quietConfig(), 1)
	params := g.cfg.Obstacle
	placeHazard(t, g, Hazard{X: 0, Y: -params.Height, VY: params.Speed, W: params.Width, H: params.Height, Type: HazardObstacle})

	// 100 px/s * 7 s = 700 px > 600 + 20
	g.Update(7)

	if g.EntityCount() != 0 || g.Score() != 1 {
		t.Errorf("EntityCount() = %d, Score() = %d, expected 0 and obstacle reward 1", g.EntityCount(), g.Score())
	}
}

func TestHazardAtFloorStaysActive(t *testing.T) {
	g := New(quietConfig(), 1)
	h := enemyAt(g, 0, 600)
	h.VY = 0
	placeHazard(t, g, h)

	g.Update(0.1)

	if g.EntityCount() != 1 {
		t.Error("Hazard exactly at the floor has not passed it yet")
	}
}

func TestCollisionHealthDamage(t *testing.T) {
	g := New(quietConfig(), 1)
	placeHazard(t, g, enemyAt(g, g.PlayerX(), g.PlayerY()))
	placeHazard(t, g, enemyAt(g, 0, 0))

	g.Update(0.001)

	if g.PlayerHealth() != 80 {
		t.Errorf("PlayerHealth() = %d, expected 80", g.PlayerHealth())
	}
	if g.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, expected 1 after the hit", g.EntityCount())
	}
	if !g.Alive() {
		t.Error("Player should survive a single hit")
	}
	if g.Score() != 0 {
		t.Errorf("A hit is not a dodge, Score() = %d", g.Score())
	}
	if g.Stats().Hits != 1 {
		t.Errorf("Stats().Hits = %d, expected 1", g.Stats().Hits)
	}
}

func TestCollisionPerTypeDamage(t *testing.T) {
	g := New(quietConfig(), 1)
	params := g.cfg.Obstacle
	placeHazard(t, g, Hazard{X: g.PlayerX(), Y: g.PlayerY(), VY: params.Speed, W: params.Width, H: params.Height, Type: HazardObstacle})

	g.Update(0.001)

	if g.PlayerHealth() != 90 {
		t.Errorf("PlayerHealth() = %d, expected 90 after an obstacle hit", g.PlayerHealth())
	}
}

func TestCollisionScorePenalty(t *testing.T) {
	cfg := quietConfig()
	cfg.Scoring.OnHit = config.HitScore
	g := New(cfg, 1)
	placeHazard(t, g, enemyAt(g, g.PlayerX(), g.PlayerY()))

	g.Update(0.001)

	if g.Score() != -10 {
		t.Errorf("Score() = %d, expected -10", g.Score())
	}
	if g.PlayerHealth() != 100 || !g.Alive() {
		t.Error("Score model should not touch health")
	}
	if g.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, expected 0", g.EntityCount())
	}
}

func TestCollisionInstantDeath(t *testing.T) {
	cfg := quietConfig()
	cfg.Scoring.OnHit = config.HitInstant
	g := New(cfg, 1)
	placeHazard(t, g, enemyAt(g, g.PlayerX(), g.PlayerY()))

	g.Update(0.001)

	if g.Alive() || !g.GameOver() {
		t.Error("Instant model should end the game on contact")
	}
}

func TestHealthDepletionEndsGame(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.Health = 30
	g := New(cfg, 1)

	placeHazard(t, g, enemyAt(g, g.PlayerX(), g.PlayerY()))
	g.Update(0.001)
	if !g.Alive() {
		t.Fatal("Player should survive the first hit")
	}

	placeHazard(t, g, enemyAt(g, g.PlayerX(), g.PlayerY()))
	g.Update(0.001)
	if g.Alive() {
		t.Error("Player should die once health reaches zero")
	}
	if g.PlayerHealth() != 0 {
		t.Errorf("PlayerHealth() = %d, expected 0", g.PlayerHealth())
	}
}

func TestTerminalFreeze(t *testing.T) {
	cfg := config.DefaultSkyfallConfig()
	cfg.Scoring.OnHit = config.HitInstant
	cfg.Spawn.Interval = 0.2
	g := New(cfg, 5)

	// Let some hazards fall, then force a hit
	for i := 0; i < 30; i++ {
		g.Update(1.0 / 30)
	}
	placeHazard(t, g, enemyAt(g, g.PlayerX(), g.PlayerY()))
	g.Update(0.001)
	if !g.GameOver() {
		t.Fatal("Game should be over")
	}

	frozen := g.Snapshot()
	frozenStats := g.Stats()

	g.KeyDown(core.KeyLeft)
	for i := 0; i < 100; i++ {
		g.Update(0.5)
	}

	if !reflect.DeepEqual(g.Snapshot(), frozen) {
		t.Error("State changed after game over")
	}
	if g.Stats() != frozenStats {
		t.Error("Stats changed after game over")
	}

	// Init is the only way out
	g.Init()
	if !g.Alive() || g.Score() != 0 || g.EntityCount() != 0 {
		t.Error("Init should restart a finished game")
	}
}

func TestZeroHealthIsTerminal(t *testing.T) {
	models := []config.HitModel{config.HitHealth, config.HitScore, config.HitInstant}

	for _, model := range models {
		t.Run(string(model), func(t *testing.T) {
			cfg := config.DefaultSkyfallConfig()
			cfg.Player.Health = 0
			cfg.Scoring.OnHit = model
			cfg.Scoring.SurvivalRate = 10
			g := New(cfg, 3)

			g.KeyDown(core.KeyLeft)
			startX := g.PlayerX()
			for i := 0; i < 60; i++ {
				g.Update(1.0 / 30)
			}

			if !g.GameOver() {
				t.Error("GameOver() = false, expected a game without health to be over")
			}
			if g.Elapsed() != 0 || g.Score() != 0 || g.PlayerX() != startX {
				t.Errorf("Elapsed() = %v, Score() = %d, PlayerX() = %v, expected a frozen game",
					g.Elapsed(), g.Score(), g.PlayerX())
			}
		})
	}
}

func TestSpawnAtMostOncePerUpdate(t *testing.T) {
	g := New(config.DefaultSkyfallConfig(), 3)

	g.Update(100)

	if g.Stats().Spawned != 1 {
		t.Errorf("Stats().Spawned = %d, expected exactly 1 for one huge step", g.Stats().Spawned)
	}
	if g.spawnTimer != 0 {
		t.Errorf("Spawn timer should reset to zero, got %v", g.spawnTimer)
	}
}

func TestSpawnTimerStrictReset(t *testing.T) {
	g := New(config.DefaultSkyfallConfig(), 3)

	g.Update(1.0)
	if g.Stats().Spawned != 0 {
		t.Fatal("No spawn expected before the interval")
	}
	g.Update(1.0) // timer 2.0 >= 1.5 -> spawn, reset to 0
	if g.Stats().Spawned != 1 {
		t.Fatalf("Stats().Spawned = %d, expected 1", g.Stats().Spawned)
	}
	g.Update(1.0) // remainder was discarded, timer 1.0
	if g.Stats().Spawned != 1 {
		t.Errorf("Remainder should not carry over, Stats().Spawned = %d", g.Stats().Spawned)
	}
}

func TestCapacityNeverExceeded(t *testing.T) {
	cfg := config.DefaultSkyfallConfig()
	cfg.Spawn.Capacity = 4
	cfg.Spawn.Interval = 0.01
	cfg.Scoring.OnHit = config.HitScore
	g := New(cfg, 11)

	for i := 0; i < 2000; i++ {
		g.Update(0.01)
		if n := g.EntityCount(); n > 4 {
			t.Fatalf("EntityCount() = %d exceeds capacity 4 at tick %d", n, i)
		}
	}
	if g.Stats().Dropped == 0 {
		t.Error("Sustained spawning should have dropped some hazards")
	}
}

func TestHazardsMoveMonotonically(t *testing.T) {
	cfg := config.DefaultSkyfallConfig()
	cfg.Spawn.Interval = 0.5
	cfg.Spawn.Capacity = 100
	g := New(cfg, 21)

	prev := make([]Hazard, g.pool.Cap())
	for tick := 0; tick < 200; tick++ {
		copy(prev, g.pool.slots)
		g.Update(1.0 / 60)
		for i, h := range g.pool.slots {
			if h.Active && prev[i].Active && h.Y < prev[i].Y {
				t.Fatalf("Hazard in slot %d moved up: %v -> %v", i, prev[i].Y, h.Y)
			}
		}
	}
	if g.Stats().Spawned == 0 {
		t.Error("Expected some hazards to spawn")
	}
}

func TestRandomPolicyMix(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Capacity = 500
	g := New(cfg, 8)

	for i := 0; i < 400; i++ {
		g.spawn()
	}

	enemies := 0
	for i := 0; i < g.EntityCount(); i++ {
		h, _ := g.Entity(i)
		if h.Type == HazardEnemy {
			enemies++
		}
	}
	ratio := float64(enemies) / 400
	if ratio < 0.45 || ratio > 0.75 {
		t.Errorf("Enemy ratio %.2f too far from 0.6", ratio)
	}
}

func TestRandomPolicyExtremes(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.EnemyChance = 0
	g := New(cfg, 8)
	for i := 0; i < 10; i++ {
		g.spawn()
	}
	for i := 0; i < g.EntityCount(); i++ {
		if h, _ := g.Entity(i); h.Type != HazardObstacle {
			t.Fatal("EnemyChance 0 should only spawn obstacles")
		}
	}
}

func TestScheduledPolicy(t *testing.T) {
	cfg := config.DefaultSkyfallConfig()
	cfg.Spawn.Policy = config.SpawnScheduled
	cfg.Spawn.Interval = 1.0
	cfg.Spawn.ObstacleEvery = 3
	g := New(cfg, 2)

	for i := 0; i < 3; i++ {
		g.Update(1.0)
	}

	counts := map[HazardType]int{}
	for i := 0; i < g.EntityCount(); i++ {
		h, _ := g.Entity(i)
		counts[h.Type]++
	}
	if counts[HazardEnemy] != 3 {
		t.Errorf("Expected one enemy per interval (3), got %d", counts[HazardEnemy])
	}
	if counts[HazardObstacle] != 1 {
		t.Errorf("Expected one obstacle at t=3s, got %d", counts[HazardObstacle])
	}
}

func TestSpawnPlacement(t *testing.T) {
	cfg := quietConfig()
	cfg.Arena.Hallway.Enabled = true
	cfg.Arena.Hallway.Width = 300
	cfg.Spawn.Capacity = 200
	g := New(cfg, 17)

	for i := 0; i < 200; i++ {
		g.spawn()
	}

	left, right := 250.0, 550.0
	for i := 0; i < g.EntityCount(); i++ {
		h, _ := g.Entity(i)
		if h.X < left || h.X+h.Width > right {
			t.Fatalf("Hazard %+v outside hallway [%v, %v]", h, left, right)
		}
		if h.Y != -h.Height {
			t.Fatalf("Hazard should start one height above the arena, y = %v", h.Y)
		}
	}
}

func TestSpawnDroppedWhenFull(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawn.Capacity = 2
	g := New(cfg, 1)

	for i := 0; i < 5; i++ {
		g.spawn()
	}

	if g.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, expected 2", g.EntityCount())
	}
	if s := g.Stats(); s.Spawned != 2 || s.Dropped != 3 {
		t.Errorf("Stats() = %+v, expected 2 spawned and 3 dropped", s)
	}
}

func TestSurvivalScore(t *testing.T) {
	cfg := quietConfig()
	cfg.Scoring.SurvivalRate = 2
	g := New(cfg, 1)

	g.Update(0.25) // 0.5 points
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 while below one point", g.Score())
	}
	g.Update(0.25) // 1.0 points
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	for i := 0; i < 8; i++ {
		g.Update(0.25)
	}
	if g.Score() != 5 {
		t.Errorf("Score() = %d, expected 5 after 2.5s at 2/s", g.Score())
	}
}

func TestEntityReturnsCopy(t *testing.T) {
	g := New(quietConfig(), 1)
	placeHazard(t, g, enemyAt(g, 10, 10))
	placeHazard(t, g, enemyAt(g, 100, 10))
	g.pool.slots[0].Active = false

	h, ok := g.Entity(0)
	if !ok || h.X != 100 {
		t.Fatalf("Entity(0) = %+v, %v, expected the second hazard", h, ok)
	}
	if h.Width != 30 || h.Height != 30 || h.Type != HazardEnemy {
		t.Errorf("Entity(0) = %+v, expected enemy 30x30", h)
	}

	h.X = 555
	again, _ := g.Entity(0)
	if again.X != 100 {
		t.Error("Mutating a view should not change the game")
	}
	if _, ok := g.Entity(1); ok {
		t.Error("Entity(1) should be out of range")
	}
}

func TestSnapshotIndependent(t *testing.T) {
	g := New(quietConfig(), 1)
	placeHazard(t, g, enemyAt(g, 10, 10))

	snap := g.Snapshot()
	if len(snap.Hazards) != 1 {
		t.Fatalf("Snapshot has %d hazards, expected 1", len(snap.Hazards))
	}
	snap.Hazards[0].Y = 999

	if h, _ := g.Entity(0); h.Y != 10 {
		t.Error("Snapshot should not alias game state")
	}
	if snap.MaxHealth != 100 || !snap.Alive {
		t.Errorf("Snapshot = %+v, unexpected player fields", snap)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultSkyfallConfig()
	cfg.Spawn.Interval = 0.3

	run := func() Snapshot {
		g := New(cfg, 12345)
		for i := 0; i < 600; i++ {
			switch {
			case i%90 == 0:
				g.KeyDown(core.KeyLeft)
			case i%90 == 45:
				g.KeyUp(core.KeyLeft)
				g.KeyDown(core.KeyRight)
			case i%90 == 89:
				g.KeyUp(core.KeyRight)
			}
			g.Update(1.0 / 60)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("Determinism failed: same seed and inputs produced different states")
	}
}

func TestHazardTypeString(t *testing.T) {
	if HazardEnemy.String() != "enemy" || HazardObstacle.String() != "obstacle" || HazardType(9).String() != "unknown" {
		t.Error("HazardType.String() returned unexpected names")
	}
}
