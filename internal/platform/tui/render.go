package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/emoji-flappy/internal/core"
)

// colorStyles maps the semantic palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorPlayer:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorPlayerEye:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorObstacle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorObstacleEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorGround:       lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorCloud:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorText:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorAlert:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorDim:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
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
				// Right half of a wide glyph, already printed by its left half.
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
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
