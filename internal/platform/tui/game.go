package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/platform/driver"
	"github.com/vovakirdan/skyfall/internal/sim"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// GameOptions configures a single play session of one variant.
type GameOptions struct {
	Variant string
	Rules   config.SkyfallConfig // Fully resolved rules for the variant
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables score recording
	Logger  *log.Logger    // Optional; defaults to the package logger

	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone bool
}

// GameModel is the Bubble Tea model that plays one variant.
type GameModel struct {
	driver *driver.Driver
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given options.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := GameModel{
		driver: driver.New(driver.Options{
			Variant: opts.Variant,
			Rules:   opts.Rules,
			Seed:    cfg.Seed,
			Store:   opts.Store,
			Logger:  opts.Logger,
		}),
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		standalone: opts.Standalone,
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// The simulation runs in pixel space; only the raster changes.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting || m.backToMenu {
			return m, nil
		}
		m.driver.Tick(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.driver.TogglePause()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		seed := time.Now().UnixNano()
		if m.driver.Restart(seed) {
			m.config.Seed = seed
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.driver.CanLeave() {
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
		}
		return m, nil
	}

	if code, ok := SteerCode(msg); ok {
		m.driver.Steer(code, now)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	back := "B: menu"
	if m.standalone {
		back = "B: quit"
	}
	m.driver.Draw(m.screen, back)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the underlying simulation.
func (m GameModel) Game() *sim.Game {
	return m.driver.Game()
}

// Paused reports whether the simulation is paused.
func (m GameModel) Paused() bool {
	return m.driver.Paused()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one variant in the current terminal until the user quits.
func Run(opts GameOptions) error {
	opts.Standalone = true
	p := tea.NewProgram(
		NewGameModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
