package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/progress"
)

const dialogWidth = 44

var (
	subtleStyle = lipgloss.NewStyle().Foreground(colorOf(core.ColorGray))
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorOf(core.ColorPink))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorOf(core.ColorBrightMagenta))
	bodyStyle   = lipgloss.NewStyle().Width(dialogWidth).Foreground(colorOf(core.ColorBrightWhite))
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(colorOf(core.ColorBrightWhite)).
			Background(lipgloss.Color("205"))
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2)
)

func button(label, keyHint string) string {
	return buttonStyle.Render(label) + " " + subtleStyle.Render(keyHint)
}

// ModalView renders the open dialog. Every modal variant must be handled.
func ModalView(m progress.Modal, cat *content.Catalog) string {
	switch m := m.(type) {
	case progress.TriggerModal:
		return triggerView(m, cat)
	case progress.NpcDialogModal:
		return npcView(m, cat)
	case progress.EndingModal:
		return endingView(cat)
	default:
		panic(fmt.Sprintf("tui: unhandled modal %T", m))
	}
}

func triggerView(m progress.TriggerModal, cat *content.Catalog) string {
	var place content.Place
	ok := false
	if cat != nil {
		place, ok = cat.Place(m.ID)
	}
	if !ok {
		return dialogStyle.Render(titleStyle.Render(string(m.ID)) + "\n\n" + button("Continue", "enter"))
	}

	var lines []string
	if place.Date != "" {
		lines = append(lines, subtleStyle.Render(place.Date))
	}
	lines = append(lines, titleStyle.Render(place.Title))
	if place.Location != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorOf(core.ColorSand)).Render("@ "+place.Location))
	}
	lines = append(lines, "", bodyStyle.Render(place.Body))
	if item, ok := cat.Item(place.Reward); ok {
		lines = append(lines, "", accentStyle.Render(item.Icon+" "+item.Label+" unlocked!"))
	}
	lines = append(lines, "", button("Continue", "enter"))
	return dialogStyle.Render(strings.Join(lines, "\n"))
}

func npcView(m progress.NpcDialogModal, cat *content.Catalog) string {
	name := "Mom"
	if cat != nil && cat.NPC.Name != "" {
		name = cat.NPC.Name
	}
	body := lipgloss.NewStyle().Italic(true).Width(dialogWidth).Render("“" + m.Line + "”")
	return dialogStyle.Render(strings.Join([]string{
		titleStyle.Render(name + " calling:"),
		"",
		body,
		"",
		button("Hang up", "enter/esc"),
	}, "\n"))
}

func endingView(cat *content.Catalog) string {
	title, body := "Home", ""
	if cat != nil {
		title, body = cat.Ending.Title, cat.Ending.Body
	}
	lines := []string{titleStyle.Render(title), ""}
	if body != "" {
		lines = append(lines, bodyStyle.Render(body), "")
	}
	lines = append(lines, button("Finish", "enter"))
	return dialogStyle.Render(strings.Join(lines, "\n"))
}

// GameOverView renders the defeat dialog for reason.
func GameOverView(reason progress.Reason, endClock string) string {
	title := "Mom Caught You!"
	msg := "Mom caught up with you! You should have been faster!"
	if reason == progress.ReasonTimeout {
		title = "Too Late!"
		msg = "You didn't make it before " + endClock + "... Mom is NOT happy!"
	}
	return dialogStyle.Render(strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(colorOf(core.ColorRed)).Render(title),
		"",
		lipgloss.NewStyle().Width(dialogWidth).Foreground(colorOf(core.ColorGray)).Render(msg),
		"",
		button("Try Again", "r") + "  " + subtleStyle.Render("q quit"),
	}, "\n"))
}

// InventoryView lists every keepsake; ones not collected yet stay hidden.
func InventoryView(cat *content.Catalog, snap progress.Snapshot) string {
	if cat == nil {
		return ""
	}
	rows := []string{accentStyle.Render("Inventory"), ""}
	for _, item := range cat.Items {
		if snap.HasItem(item.ID) {
			rows = append(rows, item.Icon+" "+item.Label+" "+
				lipgloss.NewStyle().Foreground(colorOf(core.ColorBrightGreen)).Render("✓"))
			continue
		}
		rows = append(rows, subtleStyle.Render("? ???"))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorOf(core.ColorPink)).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}
