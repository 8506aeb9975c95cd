package driver

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// deadlyRules makes every spawn an enemy that cannot miss a stationary player.
func deadlyRules() config.SkyfallConfig {
	cfg := config.DefaultSkyfallConfig()
	cfg.Arena.Width = 60
	cfg.Obstacle.Width = 60
	cfg.Spawn.Interval = 0.05
	cfg.Spawn.EnemyChance = 1
	cfg.Enemy.Speed = 1000
	cfg.Scoring.OnHit = config.HitInstant
	return cfg
}

func tickFor(d *Driver, base time.Time, n int, step time.Duration) {
	for i := 0; i < n; i++ {
		d.Tick(base.Add(time.Duration(i) * step))
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDriverFirstTickOnlyStartsClock(t *testing.T) {
	d := New(Options{Variant: "test", Rules: config.DefaultSkyfallConfig(), Seed: 1})

	d.Tick(time.Now())

	if d.Game().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected 0", d.Game().Elapsed())
	}
}

func TestDriverSteerIgnoredWhilePaused(t *testing.T) {
	d := New(Options{Variant: "test", Rules: config.DefaultSkyfallConfig(), Seed: 1})
	base := time.Now()
	startX := d.Game().PlayerX()

	if !d.TogglePause() {
		t.Fatal("TogglePause() = false on a running game")
	}
	d.Steer(core.KeyLeft, base)
	d.TogglePause()
	tickFor(d, base, 3, 50*time.Millisecond)

	if got := d.Game().PlayerX(); got != startX {
		t.Errorf("PlayerX() = %v, expected %v", got, startX)
	}
}

func TestDriverHoldExpires(t *testing.T) {
	d := New(Options{Variant: "test", Rules: config.DefaultSkyfallConfig(), Seed: 1})
	base := time.Now()
	startX := d.Game().PlayerX()

	d.Steer(core.KeyLeft, base)
	d.Tick(base)
	d.Tick(base.Add(50 * time.Millisecond))
	// Past the first hold window the key is released before the update
	d.Tick(base.Add(600 * time.Millisecond))

	if got := d.Game().PlayerX(); got != startX-10 {
		t.Errorf("PlayerX() = %v, expected %v", got, startX-10)
	}
}

func TestDriverRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	d := New(Options{Variant: "test", Rules: deadlyRules(), Seed: 42, Store: store})

	tickFor(d, time.Now(), 40, 100*time.Millisecond)

	if !d.Game().GameOver() {
		t.Fatal("GameOver() = false, expected the player to be hit")
	}
	runs, err := store.TopScores("test", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, expected 1", len(runs))
	}
	frame := core.NewScreen(80, 24)
	d.Draw(frame, "")
	if !strings.Contains(frame.String(), "Run "+runs[0].RunID) {
		t.Error("Draw() should show the stored run ID on the game over panel")
	}
}

func TestDriverNoRunIDWithoutStore(t *testing.T) {
	d := New(Options{Variant: "test", Rules: deadlyRules(), Seed: 42})

	tickFor(d, time.Now(), 40, 100*time.Millisecond)

	frame := core.NewScreen(80, 24)
	d.Draw(frame, "")
	if !strings.Contains(frame.String(), "GAME OVER") {
		t.Fatal("Draw() should show the game over panel")
	}
	if strings.Contains(frame.String(), "Run ") {
		t.Error("Draw() should not show a run ID when nothing was stored")
	}
}

func TestDriverNewBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{Variant: "test", Score: -50}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	d := New(Options{Variant: "test", Rules: deadlyRules(), Seed: 42, Store: store})
	if d.Best() != -50 {
		t.Fatalf("Best() = %d, expected -50", d.Best())
	}

	tickFor(d, time.Now(), 40, 100*time.Millisecond)

	frame := core.NewScreen(80, 24)
	d.Draw(frame, "B: quit")
	if !strings.Contains(frame.String(), "New high score!") {
		t.Error("Draw() should announce the new high score")
	}
}

func TestDriverRestart(t *testing.T) {
	d := New(Options{Variant: "test", Rules: deadlyRules(), Seed: 42})

	if d.Restart(7) {
		t.Error("Restart() = true while the game is running")
	}

	tickFor(d, time.Now(), 40, 100*time.Millisecond)
	if !d.CanLeave() {
		t.Error("CanLeave() = false after game over")
	}
	if d.TogglePause() {
		t.Error("TogglePause() = true after game over")
	}
	if !d.Restart(7) {
		t.Fatal("Restart() = false after game over")
	}
	if d.Game().Seed() != 7 || !d.Game().Alive() {
		t.Errorf("Seed() = %d, Alive() = %v, expected 7 and true", d.Game().Seed(), d.Game().Alive())
	}
}
