package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/homeward/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	core.ColorSand:          lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
}

// colorOf returns the lipgloss color matching a core color, for chrome
// drawn outside the cell buffer.
func colorOf(c core.Color) lipgloss.TerminalColor {
	if st, ok := colorStyles[c]; ok {
		return st.GetForeground()
	}
	return lipgloss.NoColor{}
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
		renderRow(&sb, s, y, 0, s.Width())
	}
	return sb.String()
}

// renderRow writes cells [x0, x1) of row y, one style per color run.
func renderRow(sb *strings.Builder, s *core.Screen, y, x0, x1 int) {
	x := max(x0, 0)
	x1 = min(x1, s.Width())
	for x < x1 {
		startColor := s.GetCell(x, y).Color

		var run strings.Builder
		for x < x1 {
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

// Overlay is a pre-rendered block placed on top of the map at cell (X, Y).
type Overlay struct {
	X, Y  int
	Block string
}

// Centered places block in the middle of a w by h area.
func Centered(block string, w, h int) Overlay {
	bw, bh := lipgloss.Size(block)
	return Overlay{X: max((w-bw)/2, 0), Y: max((h-bh)/2, 0), Block: block}
}

// RenderWithOverlays renders the screen and splices overlays over it so the
// map stays visible around them. Later overlays win where they intersect.
func RenderWithOverlays(s *core.Screen, overlays ...Overlay) string {
	type span struct {
		x, w int
		text string
	}
	rows := make(map[int][]span)
	for _, o := range overlays {
		if o.Block == "" {
			continue
		}
		lines := strings.Split(o.Block, "\n")
		bw := lipgloss.Width(o.Block)
		for i, line := range lines {
			y := o.Y + i
			if y < 0 || y >= s.Height() {
				continue
			}
			if pad := bw - lipgloss.Width(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			rows[y] = append(rows[y], span{x: o.X, w: bw, text: line})
		}
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		spans := rows[y]
		if len(spans) == 0 {
			renderRow(&sb, s, y, 0, s.Width())
			continue
		}
		// the last overlay on a row wins; earlier ones are dropped on that row
		sp := spans[len(spans)-1]
		renderRow(&sb, s, y, 0, sp.x)
		sb.WriteString(sp.text)
		renderRow(&sb, s, y, sp.x+sp.w, s.Width())
	}
	return sb.String()
}
