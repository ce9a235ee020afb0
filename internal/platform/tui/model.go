package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/homeward/internal/assets"
	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/game"
	"github.com/vovakirdan/homeward/internal/progress"
	"github.com/vovakirdan/homeward/internal/render"
	"github.com/vovakirdan/homeward/internal/storage"
	"github.com/vovakirdan/homeward/internal/world"
)

// Options configures a play session.
type Options struct {
	Game *game.Game
	// Store records finished runs; nil disables run history.
	Store *storage.Store
	// Watcher feeds reloaded tuning; nil disables live reloads.
	Watcher *config.Watcher
	// Difficulty is applied to reloaded tuning.
	Difficulty config.DifficultyPreset
	Logger     *log.Logger
	SheetPath  string // empty uses the embedded glyph sheet
	TickRate   int
	Touch      bool // show the on-screen pad and accept mouse presses
}

type (
	sheetLoadedMsg struct{ sheet *assets.Sheet }
	sheetFailedMsg struct{ err error }
	tuningMsg      struct{ tuning config.Tuning }
	watchErrMsg    struct{ err error }
)

// Model is the Bubble Tea model for one journey.
type Model struct {
	game       *game.Game
	store      *storage.Store
	watcher    *config.Watcher
	difficulty config.DifficultyPreset
	logger     *log.Logger
	sheetPath  string
	tickRate   int
	touch      bool

	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	pad      *Pad
	hud      HUD
	renderer *render.Renderer
	screen   *core.Screen
	now      func() time.Time

	width, height int
	sheetErr      error
	recorded      bool // the current run has been written to the store
	finished      bool // the ending was confirmed
	quitting      bool
}

// NewModel creates the play model for opts.Game.
func NewModel(opts Options) Model {
	g := opts.Game
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := core.DefaultConfig()
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = cfg.TickRate
	}

	m := Model{
		game:       g,
		store:      opts.Store,
		watcher:    opts.Watcher,
		difficulty: opts.Difficulty,
		logger:     logger,
		sheetPath:  opts.SheetPath,
		tickRate:   tickRate,
		touch:      opts.Touch,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		held:       NewHeldKeys(g.Tuning().Input.HoldDuration()),
		hud:        NewHUD(g.Tuning().Clock),
		renderer:   render.New(nil, g.Projection()),
		now:        time.Now,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Finished reports whether the journey was played to its ending.
func (m Model) Finished() bool {
	return m.finished
}

// Init starts the tick loop, the glyph sheet load and the config watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.tickRate),
		loadSheetCmd(m.sheetPath, m.game.World()),
	}
	if cmd := m.watchNext(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func loadSheetCmd(path string, w *world.World) tea.Cmd {
	return func() tea.Msg {
		sheet, err := assets.Load(path)
		if err == nil {
			err = sheet.Check(w)
		}
		if err != nil {
			return sheetFailedMsg{err: err}
		}
		return sheetLoadedMsg{sheet: sheet}
	}
}

func watchCmd(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case t, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return tuningMsg{tuning: t}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m Model) watchNext() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return watchCmd(m.watcher)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case sheetLoadedMsg:
		m.renderer = render.New(msg.sheet, m.game.Projection())
		m.game.SetReady()
		m.logger.Info("glyph sheet loaded", "name", msg.sheet.Name)
		return m, nil

	case sheetFailedMsg:
		m.sheetErr = msg.err
		m.logger.Error("glyph sheet failed", "err", msg.err)
		return m, nil

	case tuningMsg:
		m.game.SetTuning(config.ApplyPreset(msg.tuning, m.difficulty))
		m.logger.Info("tuning reloaded, applies on next run")
		return m, m.watchNext()

	case watchErrMsg:
		m.logger.Warn("config reload failed", "err", msg.err)
		return m, m.watchNext()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys are recorded as held;
// everything else acts immediately between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	if a != core.ActionQuit {
		m.game.NoteGesture()
	}
	snap := m.game.Progress()

	switch {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case a == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)

	case snap.GameOver:
		if a == core.ActionRestart || a == core.ActionConfirm {
			m.restart()
		}

	case snap.Modal != nil:
		if a == core.ActionConfirm || (a == core.ActionBack && !isEnding(snap.Modal)) {
			return m.closeModal(snap.Modal)
		}

	case a.IsMove():
		m.held.Press(a, m.now())

	case a == core.ActionInventory:
		m.game.ToggleInventory()

	case a == core.ActionBack:
		if snap.ShowInventory {
			m.game.ToggleInventory()
		}

	case a == core.ActionCall:
		if err := m.game.CallMom(); err != nil {
			m.logger.Debug("call ignored", "err", err)
		}
	}

	return m, nil
}

func isEnding(md progress.Modal) bool {
	_, ok := md.(progress.EndingModal)
	return ok
}

// closeModal dismisses the open dialog. Dismissing the ending records the
// completed run and resets the journey.
func (m Model) closeModal(md progress.Modal) (tea.Model, tea.Cmd) {
	m.held.Clear()
	if !isEnding(md) {
		m.game.CloseModal()
		return m, nil
	}
	m.record(storage.OutcomeCompleted)
	m.finished = true
	m.restart()
	return m, tea.Quit
}

// handleMouse drives the on-screen pad. A press anywhere while a dialog is
// open acts like confirm.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.touch {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.game.NoteGesture()
		snap := m.game.Progress()
		switch {
		case snap.GameOver:
			m.restart()
		case snap.Modal != nil:
			return m.closeModal(snap.Modal)
		default:
			m.pad.Press(msg.X, msg.Y-hudHeight)
		}
	case tea.MouseActionRelease:
		m.pad.Release()
	}
	return m, nil
}

// handleTick advances the simulation to the tick time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.held.Intents(now)
	if m.touch {
		in = in.Union(m.pad.Intents())
	}
	m.game.Frame(now, in)

	snap := m.game.Progress()
	if snap.GameOver && !m.recorded {
		outcome := storage.OutcomeCaught
		if snap.Reason == progress.ReasonTimeout {
			outcome = storage.OutcomeTimeout
		}
		m.record(outcome)
		m.held.Clear()
		m.pad.Release()
	}

	return m, tickCmd(m.tickRate)
}

// record saves the current run once. Saving is best effort.
func (m *Model) record(outcome storage.Outcome) {
	if m.recorded {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}
	w := m.game.World()
	run := storage.Run{
		WorldID:     w.ID(),
		Outcome:     outcome,
		Steps:       m.game.Progress().Step,
		ElapsedSecs: m.game.Elapsed(),
		Seed:        w.Seed(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("failed to save run", "err", err)
		return
	}
	m.logger.Info("run saved", "outcome", outcome, "steps", run.Steps, "elapsed", run.ElapsedSecs)
}

// restart resets the journey and picks up tuning staged by the watcher.
func (m *Model) restart() {
	m.game.Reset()
	t := m.game.Tuning()
	m.held = NewHeldKeys(t.Input.HoldDuration())
	m.hud = NewHUD(t.Clock)
	m.renderer.Proj = m.game.Projection()
	m.pad.Release()
	m.recorded = false
}

// resize lays out the HUD, map and help footer for a terminal of w by h.
func (m *Model) resize(w, h int) {
	m.width, m.height = max(w, 1), max(h, 1)
	m.help.Width = m.width
	mapRows := max(m.height-hudHeight-lipgloss.Height(m.help.View(m.keys)), 1)
	if m.screen == nil {
		m.screen = core.NewScreen(m.width, mapRows)
	} else {
		m.screen.Resize(m.width, mapRows)
	}
	if m.pad == nil {
		m.pad = NewPad(mapRows)
	} else {
		m.pad.Layout(mapRows)
	}
	m.game.SetViewport(m.width, mapRows)
}

// saveScreenshot writes the current map as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.game.View())

	dir := filepath.Join(os.Getenv("HOME"), ".homeward", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.World().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the HUD, the map with any open dialog over it, and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sheetErr != nil {
		return lipgloss.NewStyle().Foreground(colorOf(core.ColorRed)).
			Render("Could not load glyph sheet: "+m.sheetErr.Error()) + "\n\n" + subtleStyle.Render("q quit")
	}

	v := m.game.View()
	snap := v.Progress
	m.renderer.Draw(m.screen, v)
	if m.touch && m.renderer.Sheet != nil {
		m.pad.Draw(m.screen)
	}

	var overlays []Overlay
	if snap.ShowInventory {
		inv := InventoryView(m.game.Catalog(), snap)
		overlays = append(overlays, Overlay{X: max(m.screen.Width()-lipgloss.Width(inv)-1, 0), Y: 1, Block: inv})
	}
	switch {
	case snap.GameOver:
		t := m.game.Tuning().Clock
		end := FormatClock(snap.Duration, snap.Duration, t.StartHour, t.EndHour)
		overlays = append(overlays, Centered(GameOverView(snap.Reason, end), m.screen.Width(), m.screen.Height()))
	case snap.Modal != nil:
		overlays = append(overlays, Centered(ModalView(snap.Modal, m.game.Catalog()), m.screen.Width(), m.screen.Height()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(snap, m.width, v.Time),
		RenderWithOverlays(m.screen, overlays...),
		subtleStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program for one journey. It reports whether the
// ending was reached.
func Run(opts Options) (bool, error) {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Touch {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewModel(opts), progOpts...)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Finished(), nil
	}
	return false, nil
}
