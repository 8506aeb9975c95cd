package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/sim"
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// Status carries the platform state drawn around the playfield.
type Status struct {
	Title    string
	Best     int
	ShowBest bool
	Paused   bool
	NewBest  bool
	RunID    string // Stored run for the finished game, if any
	BackHint string // Shown on the game over banner, e.g. "B: menu"
}

// Screen draws a complete terminal frame into s: the rasterized playfield,
// the status line and the pause or game over banner.
func Screen(s *core.Screen, snap sim.Snapshot, st Status) {
	s.Clear()
	Frame(snap, NewCanvas(s, snap.Arena, HUDRows))
	drawStatus(s, snap, st)
	drawBanner(s, snap, st)
}

func drawStatus(s *core.Screen, snap sim.Snapshot, st Status) {
	parts := []string{strings.ToUpper(st.Title), fmt.Sprintf("SCORE %d", snap.Score)}
	if snap.ShowHealth && snap.MaxHealth > 0 {
		parts = append(parts, fmt.Sprintf("HP %d/%d", snap.Health, snap.MaxHealth))
	}
	parts = append(parts, fmt.Sprintf("TIME %.0fs", snap.Elapsed))
	if st.ShowBest {
		parts = append(parts, fmt.Sprintf("BEST %d", max(st.Best, snap.Score)))
	}

	s.FillRect(0, 0, s.Width(), HUDRows, ' ', core.ColorHallway)
	Label(s, 1, 0, strings.Join(parts, "   "), core.ColorWhite, core.ColorHallway)
}

// bannerLine is one row of a centered panel.
type bannerLine struct {
	text string
	fg   core.RGBA
}

func drawBanner(s *core.Screen, snap sim.Snapshot, st Status) {
	var lines []bannerLine

	switch {
	case !snap.Alive:
		lines = append(lines,
			bannerLine{"GAME OVER", core.ColorEnemy},
			bannerLine{fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite},
		)
		if st.NewBest {
			lines = append(lines, bannerLine{"New high score!", core.ColorHealthBar})
		}
		if st.RunID != "" {
			lines = append(lines, bannerLine{"Run " + st.RunID, core.ColorHallway})
		}
		lines = append(lines, bannerLine{joinHints("R: restart", st.BackHint), core.ColorWhite})
	case st.Paused:
		lines = append(lines,
			bannerLine{"PAUSED", core.ColorWhite},
			bannerLine{joinHints("P: resume", st.BackHint), core.ColorWhite},
		)
	default:
		return
	}

	drawPanel(s, HUDRows+(s.Height()-HUDRows)/2, lines)
}

func joinHints(hints ...string) string {
	var parts []string
	for _, h := range hints {
		if h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, "   ")
}

// drawPanel draws a framed box around lines, centered on row mid.
func drawPanel(s *core.Screen, mid int, lines []bannerLine) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.text)))
	}
	w += 6
	h := len(lines) + 2
	x := max((s.Width()-w)/2, 0)
	y := mid - h/2

	s.FillRect(x, y, w, h, ' ', core.ColorWhite)
	s.DrawBox(x, y, w, h)
	s.FillRect(x+1, y+1, w-2, h-2, ' ', core.ColorBackground)
	for i, l := range lines {
		Centered(s, y+1+i, l.text, l.fg, core.ColorBackground)
	}
}

// Label writes text at (x, y) in fg. Blank cells take bg so renderers
// paint them as background instead of using fg.
func Label(s *core.Screen, x, y int, text string, fg, bg core.RGBA) {
	for i, r := range []rune(text) {
		if r == ' ' {
			s.SetCell(x+i, y, ' ', bg)
			continue
		}
		s.SetCell(x+i, y, r, fg)
	}
}

// Centered writes a padded label centered on row y.
func Centered(s *core.Screen, y int, text string, fg, bg core.RGBA) {
	padded := " " + text + " "
	x := max((s.Width()-len([]rune(padded)))/2, 0)
	Label(s, x, y, padded, fg, bg)
}
