package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// colorStyles maps the semantic cell colors to terminal styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBarrier:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorDoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorDoorOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBomb:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorTorch:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorRiddle:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorSpring:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorSwitchOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorSwitchOff: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorTeleport:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorDark:      lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorPlayer1:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorPlayer2:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	core.ColorLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("235")),
	core.ColorBanner:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
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

// drawBanner writes centered lines over the middle of the screen on a
// cleared band, so they stay readable on top of the room.
func drawBanner(s *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	top := (s.Height() - len(lines) - 2) / 2
	box := core.Rect{X: (s.Width() - width) / 2, Y: top, W: width, H: len(lines) + 2}
	s.FillRect(box, ' ', core.ColorBanner)
	s.DrawFrame(box, core.ColorBanner)
	for i, l := range lines {
		s.DrawTextCentered(top+1+i, l, core.ColorBanner)
	}
}
