package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/skyfall/internal/core"
)

// CommandKind identifies a draw command.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdRect
	CmdTriangle
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdClear:
		return "clear"
	case CmdRect:
		return "rect"
	case CmdTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Command is one recorded draw call. Args holds the pixel coordinates in
// call order: none for clear, x,y,w,h for rect, six vertex values for triangle.
type Command struct {
	Kind  CommandKind
	Args  []float64
	Color core.RGBA
}

// String formats the command as one line.
func (c Command) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprintf("%.1f", a)
	}
	return fmt.Sprintf("%s(%s) %s a=%.2f", c.Kind, strings.Join(args, ", "), c.Color.Hex(), c.Color.A)
}

// Recorder is a Sink that stores commands in order.
type Recorder struct {
	Commands []Command
}

// Clear records a clear command. Earlier commands are kept.
func (r *Recorder) Clear(c core.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdClear, Color: c})
}

// DrawRect records a rectangle command.
func (r *Recorder) DrawRect(x, y, w, h float64, c core.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdRect, Args: []float64{x, y, w, h}, Color: c})
}

// DrawTriangle records a triangle command.
func (r *Recorder) DrawTriangle(x1, y1, x2, y2, x3, y3 float64, c core.RGBA) {
	r.Commands = append(r.Commands, Command{Kind: CmdTriangle, Args: []float64{x1, y1, x2, y2, x3, y3}, Color: c})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns how many commands of kind k were recorded.
func (r *Recorder) Count(k CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}
