package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/registry"
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Easier key.Binding
	Harder key.Binding
	Select key.Binding
	Runs   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Easier, k.Harder, k.Select, k.Runs, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left", "easier"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Runs: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "run history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	worlds     []registry.WorldInfo
	cursor     int
	difficulty int // index into difficulties
	keys       MenuKeyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
	selected   bool
	openRuns   bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(difficulty config.DifficultyPreset, width, height int) MenuModel {
	m := MenuModel{
		worlds:     registry.List(),
		difficulty: 1,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
		width:      width,
		height:     height,
	}
	for i, d := range difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.worlds)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Easier):
		m.difficulty = max(m.difficulty-1, 0)

	case key.Matches(msg, m.keys.Harder):
		m.difficulty = min(m.difficulty+1, len(difficulties)-1)

	case key.Matches(msg, m.keys.Select):
		if len(m.worlds) > 0 {
			m.selected = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Runs):
		m.openRuns = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("H O M E W A R D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Get home before 21:00. Don't let Mom catch you."), m.width))
	b.WriteString("\n\n")

	for i, w := range m.worlds {
		line := "  " + w.Title
		if i == m.cursor {
			line = accentStyle.Render("> " + w.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var diff []string
	for i, d := range difficulties {
		if i == m.difficulty {
			diff = append(diff, buttonStyle.Render(string(d)))
			continue
		}
		diff = append(diff, subtleStyle.Render(" "+string(d)+" "))
	}
	b.WriteString(centerText(fmt.Sprintf("Difficulty: %s", strings.Join(diff, " ")), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	WorldID    string
	Difficulty config.DifficultyPreset
	Width      int
	Height     int
	WantsRuns  bool
	Quit       bool
}

// Result summarizes what the user chose.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{
		Difficulty: difficulties[m.difficulty],
		Width:      m.width,
		Height:     m.height,
	}
	switch {
	case m.openRuns:
		r.WantsRuns = true
	case m.selected && len(m.worlds) > 0:
		r.WorldID = m.worlds[m.cursor].ID
	default:
		r.Quit = true
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(difficulty config.DifficultyPreset, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(difficulty, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}
	return m.Result(), nil
}
