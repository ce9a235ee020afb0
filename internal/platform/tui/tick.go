// Package tui runs Homeward in the terminal with Bubble Tea: it owns the
// tick source, turns keys and mouse presses into intents, and draws the
// map with the HUD, dialogs and overlays around it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the frame timestamp. Each one is a step plus a redraw.
type TickMsg time.Time

// tickCmd schedules the next frame at rate frames per second.
func tickCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(max(rate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
