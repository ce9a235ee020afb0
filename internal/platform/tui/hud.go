package tui

import (
	"fmt"
	"math"
	"strings"

	timebar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/progress"
)

const hudHeight = 1

// FormatClock converts elapsed seconds to the in-game wall clock, which
// runs from startHour at zero to endHour when the countdown expires.
// Hours are not zero-padded.
func FormatClock(elapsed, duration float64, startHour, endHour int) string {
	frac := 0.0
	if duration > 0 {
		frac = core.ClampF(elapsed/duration, 0, 1)
	}
	gameHour := float64(startHour) + frac*float64(endHour-startHour)
	hours := math.Floor(gameHour)
	minutes := math.Floor((gameHour - hours) * 60)
	return fmt.Sprintf("%d:%02d", int(hours), int(minutes))
}

// UrgencyColor is the clock color for the share of time already spent.
func UrgencyColor(elapsed, duration float64) core.Color {
	if duration <= 0 {
		return core.ColorGreen
	}
	switch frac := elapsed / duration; {
	case frac >= 5.0/6:
		return core.ColorRed
	case frac >= 4.0/6:
		return core.ColorOrange
	case frac >= 3.0/6:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// Urgent reports whether the clock should pulse.
func Urgent(elapsed, duration float64) bool {
	return duration > 0 && elapsed/duration >= 5.0/6
}

// HUD draws the status line above the map.
type HUD struct {
	bar   timebar.Model
	clock config.ClockTuning
}

// NewHUD creates a HUD for the given clock settings.
func NewHUD(clock config.ClockTuning) HUD {
	return HUD{
		bar: timebar.New(
			timebar.WithSolidFill("#22c55e"),
			timebar.WithoutPercentage(),
			timebar.WithWidth(16),
		),
		clock: clock,
	}
}

var barColors = map[core.Color]string{
	core.ColorGreen:  "#22c55e",
	core.ColorYellow: "#eab308",
	core.ColorOrange: "#f97316",
	core.ColorRed:    "#ef4444",
}

// View renders the HUD line for snap, width columns wide, at animation time t.
func (h HUD) View(snap progress.Snapshot, width int, t float64) string {
	urgency := UrgencyColor(snap.Elapsed, snap.Duration)
	clockStyle := lipgloss.NewStyle().Bold(true).Foreground(colorOf(urgency))
	if Urgent(snap.Elapsed, snap.Duration) && math.Sin(t*6) > 0 {
		clockStyle = clockStyle.Reverse(true)
	}
	endClock := FormatClock(snap.Duration, snap.Duration, h.clock.StartHour, h.clock.EndHour)
	clock := clockStyle.Render(FormatClock(snap.Elapsed, snap.Duration, h.clock.StartHour, h.clock.EndHour)) +
		subtleStyle.Render(" / "+endClock)

	bar := h.bar
	bar.FullColor = barColors[urgency]
	frac := 0.0
	if snap.Duration > 0 {
		frac = core.ClampF(snap.Elapsed/snap.Duration, 0, 1)
	}

	left := clock + " " + bar.ViewAs(frac)
	right := StepDots(snap, t)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// StepDots renders one marker per step followed by the step counter.
// Done steps show a check mark, the current one pulses.
func StepDots(snap progress.Snapshot, t float64) string {
	var parts []string
	for i := range snap.TotalSteps {
		label := fmt.Sprintf("%d", i+1)
		var st lipgloss.Style
		switch {
		case i < snap.Step:
			label = "✓"
			st = lipgloss.NewStyle().Foreground(colorOf(core.ColorBrightGreen))
		case i == snap.Step:
			st = lipgloss.NewStyle().Bold(true).Foreground(colorOf(core.ColorMagenta))
			if math.Sin(t*4) > 0 {
				st = st.Foreground(colorOf(core.ColorPink))
			}
		default:
			st = lipgloss.NewStyle().Foreground(colorOf(core.ColorGray))
		}
		parts = append(parts, st.Render(label))
	}

	counter := fmt.Sprintf("%d/%d", snap.Step, snap.TotalSteps)
	if snap.Completed() {
		counter = "All done!"
	}
	return strings.Join(parts, " ") + "  " + accentStyle.Render(counter)
}
