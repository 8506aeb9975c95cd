package tcellui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/skyfall/internal/core"
)

var steerKeys = map[tcell.Key]core.KeyCode{
	tcell.KeyLeft:  core.KeyLeft,
	tcell.KeyRight: core.KeyRight,
	tcell.KeyUp:    core.KeyUp,
	tcell.KeyDown:  core.KeyDown,
}

var steerRunes = map[rune]core.KeyCode{
	'a': core.KeyA,
	'd': core.KeyD,
	'w': core.KeyW,
	's': core.KeyS,
}

// SteerCode maps a key event to the simulation key it steers with.
func SteerCode(ev *tcell.EventKey) (core.KeyCode, bool) {
	if ev.Key() == tcell.KeyRune {
		code, ok := steerRunes[unicode.ToLower(ev.Rune())]
		return code, ok
	}
	code, ok := steerKeys[ev.Key()]
	return code, ok
}

// ActionFor maps a key event to a platform action.
func ActionFor(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'p':
			return core.ActionPause
		case 'r':
			return core.ActionRestart
		case 'b':
			return core.ActionBack
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
