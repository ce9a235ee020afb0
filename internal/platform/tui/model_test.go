package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/homeward/internal/assets"
	"github.com/vovakirdan/homeward/internal/config"
	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/game"
	"github.com/vovakirdan/homeward/internal/progress"
	"github.com/vovakirdan/homeward/internal/storage"
	"github.com/vovakirdan/homeward/internal/worlds/journey"
)

var testNow = time.Unix(1_700_000_000, 0)

func newTestModel(t *testing.T, opts Options, tune func(*config.Tuning)) Model {
	t.Helper()
	w, err := journey.New(journey.DefaultSeed)
	if err != nil {
		t.Fatalf("journey.New: %v", err)
	}
	tuning := config.DefaultTuning()
	if tune != nil {
		tune(&tuning)
	}
	opts.Game = game.New(w, tuning, game.WithCatalog(mustCatalog(t)))
	m := NewModel(opts)
	m.now = func() time.Time { return testNow }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func loadSheet(t *testing.T, m Model) Model {
	t.Helper()
	sheet, err := assets.Default()
	if err != nil {
		t.Fatalf("assets.Default: %v", err)
	}
	m, _ = update(t, m, sheetLoadedMsg{sheet: sheet})
	return m
}

func tick(t *testing.T, m Model, after time.Duration) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(testNow.Add(after)))
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelWaitsForSheet(t *testing.T) {
	m := newTestModel(t, Options{}, nil)
	spawn := m.game.Player().Pos

	m, _ = update(t, m, runeKey('d'))
	m = tick(t, m, 16*time.Millisecond)
	if m.game.Player().Pos != spawn {
		t.Fatal("player moved before the glyph sheet loaded")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Error("view should show the loading placeholder")
	}

	m = loadSheet(t, m)
	m = tick(t, m, 32*time.Millisecond)
	if got := m.game.Player().Pos; got.X <= spawn.X {
		t.Errorf("player x = %v, expected to move right of %v", got.X, spawn.X)
	}
}

func TestModelHeldKeyExpires(t *testing.T) {
	m := loadSheet(t, newTestModel(t, Options{}, nil))

	m, _ = update(t, m, runeKey('d'))
	m = tick(t, m, 0)
	m = tick(t, m, 100*time.Millisecond)
	moved := m.game.Player().Pos

	// no repeat arrived within the hold window
	m = tick(t, m, 400*time.Millisecond)
	m = tick(t, m, 450*time.Millisecond)
	if got := m.game.Player().Pos; got != moved {
		t.Errorf("player kept moving after key release: %v -> %v", moved, got)
	}
}

func TestModelSheetFailure(t *testing.T) {
	m := newTestModel(t, Options{}, nil)
	m, _ = update(t, m, sheetFailedMsg{err: errors.New("boom")})

	if !strings.Contains(m.View(), "Could not load glyph sheet: boom") {
		t.Errorf("view = %q", m.View())
	}
	if m.game.Ready() {
		t.Error("a failed sheet must not open the readiness gate")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, Options{Store: store}, func(c *config.Tuning) {
		c.Pursuer.CatchDistance = 1e6
	})
	m = loadSheet(t, m)

	m, _ = update(t, m, runeKey('d'))
	m = tick(t, m, 0)
	snap := m.game.Progress()
	if !snap.GameOver || snap.Reason != progress.ReasonCaught {
		t.Fatalf("expected to be caught, got %+v", snap)
	}
	if !strings.Contains(m.View(), "Mom Caught You!") {
		t.Error("game over dialog missing")
	}

	m = tick(t, m, 16*time.Millisecond)
	runs, err := store.RecentRuns(journey.ID, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeCaught || runs[0].Seed != journey.DefaultSeed {
		t.Fatalf("runs = %+v, expected one caught run", runs)
	}

	m, _ = update(t, m, runeKey('r'))
	if m.game.Progress().GameOver {
		t.Fatal("restart should clear the game over")
	}
	m = tick(t, m, 32*time.Millisecond)
	if runs, _ := store.RecentRuns(journey.ID, 10); len(runs) != 1 {
		t.Errorf("expected still one run after restart, got %d", len(runs))
	}
}

func TestModelCallAndClose(t *testing.T) {
	m := loadSheet(t, newTestModel(t, Options{}, nil))

	m, _ = update(t, m, runeKey('t'))
	if _, ok := m.game.Progress().Modal.(progress.NpcDialogModal); !ok {
		t.Fatalf("modal = %v, expected the phone call", m.game.Progress().Modal)
	}
	if !strings.Contains(m.View(), "Mom calling:") {
		t.Error("view should show the call dialog")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.game.Progress().Modal != nil {
		t.Error("esc should close the call")
	}
}

func TestModelInventoryToggle(t *testing.T) {
	m := loadSheet(t, newTestModel(t, Options{}, nil))

	m, _ = update(t, m, runeKey('i'))
	if !m.game.Progress().ShowInventory || !strings.Contains(m.View(), "Inventory") {
		t.Fatal("i should open the inventory panel")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.game.Progress().ShowInventory {
		t.Error("esc should close the inventory panel")
	}
}

func TestModelAnyKeyStartsClock(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"inventory", runeKey('i')},
		{"help", runeKey('?')},
		{"call", runeKey('t')},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := loadSheet(t, newTestModel(t, Options{}, nil))
			m = tick(t, m, 0)
			if m.game.Elapsed() != 0 {
				t.Fatal("clock ran before any input")
			}

			m, _ = update(t, m, tc.msg)
			m.game.CloseModal()
			m = tick(t, m, 50*time.Millisecond)
			if m.game.Elapsed() == 0 || !m.game.Gestured() {
				t.Errorf("clock did not start after %s, elapsed %v", tc.name, m.game.Elapsed())
			}
		})
	}
}

func TestModelClickOutsidePadStartsClock(t *testing.T) {
	m := loadSheet(t, newTestModel(t, Options{Touch: true}, nil))
	m = tick(t, m, 0)

	m, _ = update(t, m, tea.MouseMsg{X: 60, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.pad.Pressed() != core.ActionNone {
		t.Fatal("the click should miss the pad")
	}
	m = tick(t, m, 50*time.Millisecond)
	if m.game.Elapsed() == 0 {
		t.Error("a click should start the clock")
	}
}

func TestModelEndingRecordsCompletion(t *testing.T) {
	store := openStore(t)
	m := loadSheet(t, newTestModel(t, Options{Store: store}, nil))
	if err := m.game.OpenModal(progress.EndingModal{}); err != nil {
		t.Fatalf("OpenModal: %v", err)
	}

	// esc does not skip the ending
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.game.Progress().Modal == nil {
		t.Fatal("esc closed the ending")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("finishing should quit the play screen")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit command")
	}
	if !m.Finished() || m.game.Progress().Modal != nil {
		t.Error("ending should finish and reset the journey")
	}

	runs, err := store.RecentRuns(journey.ID, 10)
	if err != nil || len(runs) != 1 || runs[0].Outcome != storage.OutcomeCompleted {
		t.Errorf("runs = %+v, err = %v", runs, err)
	}
}

func TestModelTouchPad(t *testing.T) {
	m := loadSheet(t, newTestModel(t, Options{Touch: true}, nil))

	// 80x24 terminal: the map has 22 rows below the HUD line
	m, _ = update(t, m, tea.MouseMsg{X: 8, Y: 13 + hudHeight, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.pad.Pressed() != core.ActionUp {
		t.Fatalf("pad pressed = %v, expected up", m.pad.Pressed())
	}

	spawn := m.game.Player().Pos
	m = tick(t, m, 0)
	m = tick(t, m, 50*time.Millisecond)
	if m.game.Player().Pos.Y >= spawn.Y {
		t.Errorf("holding up should move the player up, y %v -> %v", spawn.Y, m.game.Player().Pos.Y)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 8, Y: 14, Action: tea.MouseActionRelease})
	if m.pad.Pressed() != core.ActionNone {
		t.Error("release should free the pad")
	}
}

func TestModelIgnoresMouseWithoutTouch(t *testing.T) {
	m := loadSheet(t, newTestModel(t, Options{}, nil))
	m, _ = update(t, m, tea.MouseMsg{X: 8, Y: 14, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.pad.Pressed() != core.ActionNone {
		t.Error("keyboard mode should ignore the pad")
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	m := newTestModel(t, Options{}, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 28 {
		t.Fatalf("map = %dx%d, expected 100x28", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll || m.screen.Height() >= 28 {
		t.Errorf("full help should take rows from the map, map height %d", m.screen.Height())
	}
}

func TestModelTuningAppliesOnRestart(t *testing.T) {
	m := loadSheet(t, newTestModel(t, Options{}, nil))

	tuned := config.DefaultTuning()
	tuned.Clock.Duration = 30
	m, cmd := update(t, m, tuningMsg{tuning: tuned})
	if cmd != nil {
		t.Error("no watcher, nothing to wait for")
	}
	if m.game.Tuning().Clock.Duration != 60 {
		t.Fatal("tuning must not change mid-run")
	}

	m.restart()
	if m.game.Tuning().Clock.Duration != 30 || m.game.Progress().Duration != 30 {
		t.Errorf("restart should apply the staged tuning, got %v", m.game.Tuning().Clock.Duration)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{}, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
