package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScores
)

// SessionOptions configures a menu-driven session.
type SessionOptions struct {
	Base    config.SkyfallConfig // Loaded configuration before variant overlays
	Preset  config.DifficultyPreset
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Logger  *log.Logger
}

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions and `skyfall menu`.
type SessionModel struct {
	opts     SessionOptions
	state    sessionState
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	variant  string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH, opts.Preset),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.variant)
		m.state = stateScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().ID, m.menu.Preset())
	}

	return m, cmd
}

// startGame resolves the variant rules and switches to the game.
func (m SessionModel) startGame(variant string, preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	m.opts.Preset = preset
	rules, err := registry.ResolvePreset(variant, m.opts.Base, preset)
	if err != nil {
		// Menu only lists registered variants; a failure here is a bad config.
		m.opts.Logger.Error("cannot start variant", "variant", variant, "error", err)
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, preset)
		return m, nil
	}

	m.variant = variant
	m.opts.Logger.Debug("starting game", "variant", variant, "preset", preset)
	m.game = NewGameModel(GameOptions{
		Variant: variant,
		Rules:   rules,
		Runtime: m.opts.Runtime,
		Store:   m.opts.Store,
		Logger:  m.opts.Logger,
	})
	m.state = stateGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.opts.Preset)
		m.state = stateMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.opts.Preset)
		m.state = stateMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the current terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
