// Package render turns simulation snapshots into draw commands.
//
// Frame is the read-only pass that runs after Update; it talks to any Sink.
// All coordinates are pixels in the simulation's space (origin top-left,
// y down) and all colors are normalized RGBA.
package render

import "github.com/vovakirdan/skyfall/internal/core"

// Sink receives draw commands for one frame.
type Sink interface {
	// Clear fills the whole target with c.
	Clear(c core.RGBA)

	// DrawRect fills an axis-aligned rectangle.
	DrawRect(x, y, w, h float64, c core.RGBA)

	// DrawTriangle fills the triangle with the given vertices.
	DrawTriangle(x1, y1, x2, y2, x3, y3 float64, c core.RGBA)
}
