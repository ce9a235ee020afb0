package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/homeward/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"inventory", runeKey('i'), core.ActionInventory},
		{"call", runeKey('t'), core.ActionCall},
		{"restart", runeKey('r'), core.ActionRestart},
		{"help", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(250 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionUp, t0.Add(100*time.Millisecond))

	if in := h.Intents(t0.Add(200 * time.Millisecond)); !in.Right || !in.Up {
		t.Fatalf("both keys should be held, got %+v", in)
	}
	if in := h.Intents(t0.Add(300 * time.Millisecond)); in.Right || !in.Up {
		t.Fatalf("right should have expired, got %+v", in)
	}
	if in := h.Intents(t0.Add(time.Second)); in.Any() {
		t.Fatalf("everything should have expired, got %+v", in)
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(250 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	for i := range 5 {
		h.Press(core.ActionLeft, t0.Add(time.Duration(i)*200*time.Millisecond))
	}
	if in := h.Intents(t0.Add(1000 * time.Millisecond)); !in.Left {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestHeldKeysOppositeCancels(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0)
	in := h.Intents(t0)
	if in.Left || !in.Right {
		t.Errorf("newest direction should win, got %+v", in)
	}

	h.Press(core.ActionInventory, t0)
	h.Clear()
	if h.Intents(t0).Any() {
		t.Error("Clear should release every key")
	}
}

func TestPadHitTest(t *testing.T) {
	p := NewPad(22)
	// the grid is 15x9 cells anchored one cell in from the bottom-left
	tests := []struct {
		x, y int
		want core.Action
	}{
		{8, 13, core.ActionUp},
		{3, 16, core.ActionLeft},
		{13, 16, core.ActionRight},
		{8, 19, core.ActionDown},
		{8, 16, core.ActionNone}, // center
		{3, 13, core.ActionNone}, // corner
		{0, 16, core.ActionNone}, // margin
		{40, 5, core.ActionNone},
	}
	for _, tt := range tests {
		if got := p.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPadPressRelease(t *testing.T) {
	p := NewPad(22)

	if p.Press(40, 5) {
		t.Error("press outside the pad should miss")
	}
	if !p.Press(13, 16) {
		t.Fatal("press on the right button should hit")
	}
	if in := p.Intents(); !in.Right || in.Left || in.Up || in.Down {
		t.Errorf("Intents() = %+v, expected right only", in)
	}

	p.Release()
	if p.Intents().Any() || p.Pressed() != core.ActionNone {
		t.Error("release should clear the pad")
	}
}

func TestPadLayoutFollowsHeight(t *testing.T) {
	p := NewPad(22)
	p.Layout(12)
	if got := p.HitTest(8, 3); got != core.ActionUp {
		t.Errorf("after Layout(12) up button at (8, 3) = %v", got)
	}

	s := core.NewScreen(20, 12)
	p.Press(8, 3)
	p.Draw(s)
	if s.Get(8, 3) != '▲' || s.GetCell(8, 3).Color != core.ColorBrightWhite {
		t.Errorf("pressed up button drawn as %+v", s.GetCell(8, 3))
	}
	if s.Get(3, 6) != '◀' || s.GetCell(3, 6).Color != core.ColorGray {
		t.Errorf("idle left button drawn as %+v", s.GetCell(3, 6))
	}
}
