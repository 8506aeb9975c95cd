package core

// KeyCode identifies a physical key. Values follow the browser keyCode
// numbering so that any input source can feed the same table.
type KeyCode int

// Key codes understood by the simulation.
const (
	KeySpace KeyCode = 32
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
	KeyA     KeyCode = 65
	KeyD     KeyCode = 68
	KeyS     KeyCode = 83
	KeyW     KeyCode = 87
)

// KeyTableSize is the number of addressable key codes.
const KeyTableSize = 256

// KeyTable holds the held/released state of every key code.
// The zero value has all keys released.
type KeyTable [KeyTableSize]bool

// valid reports whether code addresses a slot in the table.
func (k *KeyTable) valid(code KeyCode) bool {
	return code >= 0 && code < KeyTableSize
}

// Press marks a key as held. Out-of-range codes are ignored.
func (k *KeyTable) Press(code KeyCode) {
	if k.valid(code) {
		k[code] = true
	}
}

// Release marks a key as released. Out-of-range codes are ignored.
func (k *KeyTable) Release(code KeyCode) {
	if k.valid(code) {
		k[code] = false
	}
}

// Down returns true if the key is held. Out-of-range codes are never held.
func (k *KeyTable) Down(code KeyCode) bool {
	if !k.valid(code) {
		return false
	}
	return k[code]
}

// Any returns true if at least one of the given keys is held.
func (k *KeyTable) Any(codes ...KeyCode) bool {
	for _, c := range codes {
		if k.Down(c) {
			return true
		}
	}
	return false
}

// Reset releases every key.
func (k *KeyTable) Reset() {
	*k = KeyTable{}
}

// Action represents a platform-level action, abstracted from physical key presses.
// Movement is not an action; it flows through the KeyTable.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionBack           // B - leave the game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
