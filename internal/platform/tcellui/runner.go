package tcellui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/platform/driver"
	"github.com/vovakirdan/skyfall/internal/storage"
)

const helpLine = "←→↑↓/WASD move  P pause  R restart  B/Q quit"

// Options configures a tcell play session.
type Options struct {
	Variant  string
	Rules    config.SkyfallConfig
	Seed     int64
	TickRate int
	Store    *storage.Store
	Logger   *log.Logger
}

// Runner drives one variant on a tcell screen.
type Runner struct {
	screen   tcell.Screen
	driver   *driver.Driver
	frame    *core.Screen
	tickRate int
	done     bool
}

// NewRunner creates a runner drawing onto an initialized screen.
func NewRunner(screen tcell.Screen, opts Options) *Runner {
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}
	w, h := screen.Size()
	return &Runner{
		screen: screen,
		driver: driver.New(driver.Options{
			Variant: opts.Variant,
			Rules:   opts.Rules,
			Seed:    opts.Seed,
			Store:   opts.Store,
			Logger:  opts.Logger,
		}),
		frame:    core.NewScreen(max(w, 1), max(h-1, 1)),
		tickRate: rate,
	}
}

// Driver returns the driver playing the game.
func (r *Runner) Driver() *driver.Driver {
	return r.driver
}

// Done reports whether the player asked to leave.
func (r *Runner) Done() bool {
	return r.done
}

// HandleEvent applies one terminal event.
func (r *Runner) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ActionFor(ev) {
		case core.ActionQuit:
			r.done = true
		case core.ActionPause:
			r.driver.TogglePause()
		case core.ActionRestart:
			r.driver.Restart(now.UnixNano())
		case core.ActionBack:
			if r.driver.CanLeave() {
				r.done = true
			}
		default:
			if code, ok := SteerCode(ev); ok {
				r.driver.Steer(code, now)
			}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		r.frame.Resize(max(w, 1), max(h-1, 1))
		r.screen.Sync()
	}
}

// Draw renders the current frame and shows it.
func (r *Runner) Draw() {
	r.screen.Clear()
	r.driver.Draw(r.frame, "B: quit")
	Blit(r.screen, r.frame)
	drawText(r.screen, 0, r.frame.Height(), helpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// Loop runs until the player quits, ticking at the configured rate.
// Events are read from the channel so tests can feed them directly.
func (r *Runner) Loop(events <-chan tcell.Event) {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	r.driver.Tick(time.Now())
	r.Draw()

	for !r.done {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			r.HandleEvent(ev, time.Now())

		case now := <-ticker.C:
			r.driver.Tick(now)
			r.Draw()
		}
	}
}

// Run plays one variant in the current terminal until the user quits.
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	NewRunner(screen, opts).Loop(events)
	return nil
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed. It never blocks on a channel nobody reads.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
