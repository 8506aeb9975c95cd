// Package hold synthesizes key releases for terminals, which only report
// presses. A key counts as held until no repeat arrives within its window.
package hold

import (
	"sort"
	"time"

	"github.com/vovakirdan/skyfall/internal/core"
)

// Default hold windows. The first window covers the terminal's initial
// auto-repeat delay; once repeats arrive they come much faster.
const (
	DefaultFirst  = 550 * time.Millisecond
	DefaultRepeat = 120 * time.Millisecond
)

// Tracker tracks which keys are considered held.
type Tracker struct {
	first  time.Duration
	repeat time.Duration
	held   map[core.KeyCode]holdState
}

type holdState struct {
	deadline time.Time
	repeated bool
}

// New creates a tracker with the given windows.
// Non-positive windows fall back to the defaults.
func New(first, repeat time.Duration) *Tracker {
	if first <= 0 {
		first = DefaultFirst
	}
	if repeat <= 0 {
		repeat = DefaultRepeat
	}
	return &Tracker{
		first:  first,
		repeat: repeat,
		held:   make(map[core.KeyCode]holdState),
	}
}

// Press records a press of code at now and returns the keys that must be
// released because they steer the opposite way.
func (h *Tracker) Press(code core.KeyCode, now time.Time) []core.KeyCode {
	st, ok := h.held[code]
	if ok {
		st.repeated = true
		st.deadline = now.Add(h.repeat)
	} else {
		st = holdState{deadline: now.Add(h.first)}
	}
	h.held[code] = st

	var cancelled []core.KeyCode
	for _, other := range Opposing(code) {
		if _, ok := h.held[other]; ok {
			delete(h.held, other)
			cancelled = append(cancelled, other)
		}
	}
	return cancelled
}

// Expire removes and returns every key whose window has elapsed by now,
// in ascending key order.
func (h *Tracker) Expire(now time.Time) []core.KeyCode {
	var released []core.KeyCode
	for code, st := range h.held {
		if !now.Before(st.deadline) {
			released = append(released, code)
		}
	}
	for _, code := range released {
		delete(h.held, code)
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Held reports whether code is currently considered held.
func (h *Tracker) Held(code core.KeyCode) bool {
	_, ok := h.held[code]
	return ok
}

// Reset forgets every held key.
func (h *Tracker) Reset() {
	clear(h.held)
}

// Opposing returns the key codes steering the other way on the same axis.
// A fresh press cancels these.
func Opposing(code core.KeyCode) []core.KeyCode {
	switch code {
	case core.KeyLeft, core.KeyA:
		return []core.KeyCode{core.KeyRight, core.KeyD}
	case core.KeyRight, core.KeyD:
		return []core.KeyCode{core.KeyLeft, core.KeyA}
	case core.KeyUp, core.KeyW:
		return []core.KeyCode{core.KeyDown, core.KeyS}
	case core.KeyDown, core.KeyS:
		return []core.KeyCode{core.KeyUp, core.KeyW}
	}
	return nil
}
