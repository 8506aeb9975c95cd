// Package tcellui plays the game directly on a tcell screen, without the
// Bubble Tea runtime.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/skyfall/internal/core"
)

// Blit copies every cell of src onto dst starting at the origin.
// Blank cells paint their color as background; other cells use it as foreground.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			dst.SetContent(x, y, cell.Rune, nil, styleFor(cell))
		}
	}
}

func styleFor(cell core.Cell) tcell.Style {
	style := tcell.StyleDefault
	if cell.Color == (core.RGBA{}) {
		return style
	}
	r, g, b := cell.Color.RGB8()
	c := tcell.NewRGBColor(int32(r), int32(g), int32(b))
	if cell.Rune == ' ' {
		return style.Background(c)
	}
	return style.Foreground(c)
}

// drawText writes plain text on row y of dst.
func drawText(dst tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		dst.SetContent(x+i, y, r, nil, style)
	}
}
