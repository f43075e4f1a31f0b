package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-capy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 colors).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorCapy:     lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorCapyDark: lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorTree:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorTreeEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorHeart:    lipgloss.NewStyle().Foreground(lipgloss.Color("199")),
	core.ColorWater:    lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	core.ColorMist:     lipgloss.NewStyle().Foreground(lipgloss.Color("151")),
	core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("23")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true),
	core.ColorGold:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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
