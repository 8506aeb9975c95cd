package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyfall/internal/core"
)

// cellStyle identifies how a run of cells is styled.
type cellStyle struct {
	color core.RGBA
	blank bool // Blank cells paint their color as background
}

// style builds the lipgloss style for a run.
func (cs cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if cs.color == (core.RGBA{}) {
		return s
	}
	c := lipgloss.Color(cs.color.Hex())
	if cs.blank {
		return s.Background(c)
	}
	return s.Foreground(c)
}

func styleOf(cell core.Cell) cellStyle {
	return cellStyle{color: cell.Color, blank: cell.Rune == ' '}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = start.style()
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
