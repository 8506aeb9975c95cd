// Package driver runs a simulation on behalf of an interactive frontend.
// It owns the platform rules shared by every terminal backend: frame delta
// clamping, synthesized key releases, pause, restart and score recording.
package driver

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/platform/hold"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/render"
	"github.com/vovakirdan/skyfall/internal/sim"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// Options configures a Driver.
type Options struct {
	Variant string
	Rules   config.SkyfallConfig // Fully resolved rules for the variant
	Seed    int64                // 0 picks a seed from the clock
	Store   *storage.Store       // Optional; nil disables score recording
	Logger  *log.Logger          // Optional; defaults to the package logger
}

// Driver plays one variant.
type Driver struct {
	variant string
	title   string
	game    *sim.Game
	store   *storage.Store
	logger  *log.Logger
	hold    *hold.Tracker

	lastTick time.Time
	paused   bool
	best     int
	lastRun  *storage.Run
	newBest  bool
	saved    bool // Whether the current game over has been recorded
}

// New creates a driver and starts the first game.
func New(opts Options) *Driver {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	d := &Driver{
		variant: opts.Variant,
		title:   registry.Title(opts.Variant),
		game:    sim.New(opts.Rules, seed),
		store:   opts.Store,
		logger:  logger,
		hold:    hold.New(hold.DefaultFirst, hold.DefaultRepeat),
	}

	if d.store != nil {
		if best, err := d.store.HighScore(d.variant); err == nil {
			d.best = best
		} else {
			logger.Warn("could not read high score", "variant", d.variant, "error", err)
		}
	}
	return d
}

// Steer registers a steering key press. Presses are ignored while paused
// or after game over.
func (d *Driver) Steer(code core.KeyCode, now time.Time) {
	if d.paused || d.game.GameOver() {
		return
	}
	for _, released := range d.hold.Press(code, now) {
		d.game.KeyUp(released)
	}
	d.game.KeyDown(code)
}

// Tick advances the simulation by the real time since the previous tick.
func (d *Driver) Tick(now time.Time) {
	dt := core.FrameDelta(d.lastTick, now)
	d.lastTick = now

	for _, code := range d.hold.Expire(now) {
		d.game.KeyUp(code)
	}

	if !d.paused {
		d.game.Update(dt)
	}

	if d.game.GameOver() && !d.saved {
		d.recordRun()
	}
}

// TogglePause pauses or resumes a running game. It reports whether the
// state changed.
func (d *Driver) TogglePause() bool {
	if d.game.GameOver() {
		return false
	}
	d.paused = !d.paused
	d.releaseAll()
	return true
}

// Restart begins a new game with seed once the current one is over.
// It reports whether a restart happened.
func (d *Driver) Restart(seed int64) bool {
	if !d.game.GameOver() {
		return false
	}
	d.game.SetSeed(seed)
	d.game.Init()
	d.releaseAll()
	d.paused = false
	d.saved = false
	d.lastRun = nil
	d.newBest = false
	return true
}

// CanLeave reports whether the player may leave without abandoning a live game.
func (d *Driver) CanLeave() bool {
	return d.paused || d.game.GameOver()
}

// releaseAll drops every held key in both the tracker and the simulation.
func (d *Driver) releaseAll() {
	d.hold.Reset()
	d.game.ReleaseKeys()
}

// recordRun stores the finished game. Failures are logged and otherwise ignored.
func (d *Driver) recordRun() {
	d.saved = true
	stats := d.game.Stats()

	d.logger.Debug("game over",
		"variant", d.variant,
		"score", d.game.Score(),
		"elapsed", fmt.Sprintf("%.1fs", d.game.Elapsed()),
		"dodged", stats.Dodged,
		"hits", stats.Hits,
	)

	if d.store == nil {
		return
	}
	run, err := d.store.SaveRun(storage.Run{
		Variant:  d.variant,
		Score:    d.game.Score(),
		Seed:     d.game.Seed(),
		Duration: d.game.Elapsed(),
		Dodged:   stats.Dodged,
		Hits:     stats.Hits,
	})
	if err != nil {
		d.logger.Warn("could not save score", "variant", d.variant, "error", err)
		return
	}
	d.lastRun = &run
	if run.Score > d.best {
		d.best = run.Score
		d.newBest = true
	}
}

// Draw renders the current frame into s.
func (d *Driver) Draw(s *core.Screen, backHint string) {
	st := render.Status{
		Title:    d.title,
		Best:     d.best,
		ShowBest: d.store != nil,
		Paused:   d.paused,
		NewBest:  d.newBest,
		BackHint: backHint,
	}
	if d.lastRun != nil {
		st.RunID = d.lastRun.RunID
	}
	render.Screen(s, d.game.Snapshot(), st)
}

// Game returns the underlying simulation.
func (d *Driver) Game() *sim.Game {
	return d.game
}

// Paused reports whether the simulation is paused.
func (d *Driver) Paused() bool {
	return d.paused
}

// Best returns the best recorded score for the variant.
func (d *Driver) Best() int {
	return d.best
}
