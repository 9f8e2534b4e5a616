package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps the semantic palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGrid:         lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorBorder:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorSnakeHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorSnakeBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorParticle:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorParticleFade: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorHUD:          lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorHighlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorOverlay:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")),
	core.ColorDanger:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
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

// centerText pads text on the left so it is centred in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
