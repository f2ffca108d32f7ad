package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrown:       lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
