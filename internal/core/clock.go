package core

import "time"

// MaxFrameDelta caps the simulated time of a single frame, in seconds.
// Long stalls (terminal suspended, slow SSH link) would otherwise let
// hazards tunnel through the player in one step.
const MaxFrameDelta = 0.1

// FrameDelta returns the seconds between two frames, clamped to
// [0, MaxFrameDelta]. A zero prev means this is the first frame and yields 0.
func FrameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, MaxFrameDelta)
}
