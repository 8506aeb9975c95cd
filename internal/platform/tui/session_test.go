package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	_ "github.com/vovakirdan/skyfall/internal/variants"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm
}

func newTestSession() SessionModel {
	return NewSessionModel(SessionOptions{
		Base:    config.DefaultSkyfallConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1},
	})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()

	// Variants are listed by ID: classic, dodge, hallway
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateGame {
		t.Fatalf("state = %v, expected game", m.state)
	}
	if m.variant != "dodge" {
		t.Errorf("variant = %q, expected dodge", m.variant)
	}
	if got := m.game.Game().Config().Scoring.OnHit; got != config.HitScore {
		t.Errorf("OnHit = %q, expected score model for dodge", got)
	}

	m = sessionSend(t, m, runeKey('p'))
	m = sessionSend(t, m, runeKey('b'))

	if m.state != stateMenu {
		t.Errorf("state = %v, expected menu after back", m.state)
	}
	if m.quitting {
		t.Error("back should not quit the session")
	}
}

func TestSessionPresetApplied(t *testing.T) {
	m := newTestSession()

	// Menu starts on normal; one step right selects hard
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateGame {
		t.Fatalf("state = %v, expected game", m.state)
	}
	// classic: 2.0 s interval scaled by the hard preset
	got := m.game.Game().Config().Spawn.Interval
	if got < 1.199 || got > 1.201 {
		t.Errorf("Spawn.Interval = %v, expected 1.2", got)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession()

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScores {
		t.Fatalf("state = %v, expected scores", m.state)
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Errorf("state = %v, expected menu", m.state)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()

	m = sessionSend(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q should quit from the menu")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
