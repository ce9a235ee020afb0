package progress

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/homeward/internal/core"
	"github.com/vovakirdan/homeward/internal/world"
)

var zones = []world.TriggerZone{
	{ID: "a", StepIndex: 0, Reward: "ra", Rect: core.RectF{W: 10, H: 10}},
	{ID: "b", StepIndex: 1, Reward: "rb", Rect: core.RectF{X: 20, W: 10, H: 10}},
	{ID: "c", StepIndex: 2, Reward: "rc", Rect: core.RectF{X: 40, W: 10, H: 10}},
}

func checkInvariant(t *testing.T, s *State) {
	t.Helper()
	snap := s.Snapshot()
	if len(snap.Discovered) != snap.Step {
		t.Fatalf("discovered %d != step %d", len(snap.Discovered), snap.Step)
	}
}

func TestDiscoverAdvancesAtomically(t *testing.T) {
	s := New(len(zones), 60)

	if !s.Discover(zones[0], false) {
		t.Fatal("first zone should fire")
	}
	checkInvariant(t, s)

	snap := s.Snapshot()
	if snap.Step != 1 || !snap.HasDiscovered("a") || !snap.HasItem("ra") || snap.LastTrigger != "a" {
		t.Errorf("after discover: %+v", snap)
	}
	if m, ok := snap.Modal.(TriggerModal); !ok || m.ID != "a" {
		t.Errorf("modal = %#v, expected TriggerModal{a}", snap.Modal)
	}
	if !s.Paused() {
		t.Error("an open modal pauses the simulation")
	}
}

func TestDiscoverGuards(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*State)
		zone  world.TriggerZone
	}{
		{"wrong step", func(*State) {}, zones[1]},
		{"already discovered", func(s *State) { s.Discover(zones[0], false); s.CloseModal() }, zones[0]},
		{"same as last trigger", func(s *State) { s.SetLastTrigger("a") }, zones[0]},
		{"game over", func(s *State) { s.EndGame(ReasonTimeout) }, zones[0]},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(len(zones), 60)
			tc.setup(s)
			before := s.Snapshot()

			if s.Discover(tc.zone, false) {
				t.Fatal("Discover should refuse")
			}
			if !reflect.DeepEqual(before, s.Snapshot()) {
				t.Error("refused Discover must not change state")
			}
			checkInvariant(t, s)
		})
	}
}

func TestFinalZoneOpensEnding(t *testing.T) {
	s := New(len(zones), 60)
	for i, z := range zones {
		if !s.Discover(z, i == len(zones)-1) {
			t.Fatalf("zone %s should fire", z.ID)
		}
		checkInvariant(t, s)
		if i < len(zones)-1 {
			s.CloseModal()
		}
	}

	if _, ok := s.Modal().(EndingModal); !ok {
		t.Errorf("modal = %#v, expected EndingModal", s.Modal())
	}
	if !s.Completed() {
		t.Error("all steps discovered should be completed")
	}
	want := []string{"ra", "rb", "rc"}
	for i, it := range s.Snapshot().Inventory {
		if string(it) != want[i] {
			t.Errorf("inventory[%d] = %s, expected %s", i, it, want[i])
		}
	}
}

func TestEndGameFirstReasonWins(t *testing.T) {
	s := New(3, 60)
	if !s.EndGame(ReasonCaught) {
		t.Fatal("first EndGame should succeed")
	}
	if s.EndGame(ReasonTimeout) {
		t.Error("second EndGame should be ignored")
	}
	if s.Reason() != ReasonCaught {
		t.Errorf("Reason = %s, expected caught", s.Reason())
	}
	if s.EndGame(ReasonNone) {
		t.Error("ReasonNone never ends a game")
	}
}

func TestSyncElapsedClamps(t *testing.T) {
	s := New(3, 60)

	s.SyncElapsed(10)
	s.SyncElapsed(5)
	if s.Elapsed() != 10 {
		t.Errorf("clock ran backwards: %v", s.Elapsed())
	}

	s.SyncElapsed(75)
	if s.Elapsed() != 60 {
		t.Errorf("Elapsed = %v, expected cap 60", s.Elapsed())
	}

	s.EndGame(ReasonTimeout)
	s.SyncElapsed(1)
	if s.Elapsed() != 60 {
		t.Error("elapsed is frozen after game over")
	}
}

func TestModalCommands(t *testing.T) {
	s := New(3, 60)

	if err := s.OpenModal(NpcDialogModal{Line: "hi"}); err != nil {
		t.Fatalf("OpenModal: %v", err)
	}
	if m, ok := s.Modal().(NpcDialogModal); !ok || m.Line != "hi" {
		t.Errorf("Modal = %#v", s.Modal())
	}

	s.CloseModal()
	s.CloseModal()
	if s.Modal() != nil || s.Paused() {
		t.Error("CloseModal should resume play")
	}

	if err := s.OpenModal(nil); err == nil {
		t.Error("nil modal should be rejected")
	}

	s.EndGame(ReasonCaught)
	if err := s.OpenModal(EndingModal{}); !errors.Is(err, ErrGameOver) {
		t.Errorf("OpenModal after game over = %v, expected ErrGameOver", err)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	fresh := New(len(zones), 60).Snapshot()

	s := New(len(zones), 60)
	s.Discover(zones[0], false)
	s.ToggleInventory()
	s.SyncElapsed(42)
	s.EndGame(ReasonTimeout)

	s.Reset()
	if !reflect.DeepEqual(fresh, s.Snapshot()) {
		t.Errorf("after Reset:\n%+v\nexpected:\n%+v", s.Snapshot(), fresh)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := New(len(zones), 60)
	s.Discover(zones[0], false)

	snap := s.Snapshot()
	snap.Discovered[0] = "tampered"
	snap.Inventory[0] = "tampered"

	if !s.IsDiscovered("a") || s.Snapshot().Inventory[0] != "ra" {
		t.Error("mutating a snapshot must not touch the state")
	}
}

func TestObserverEvents(t *testing.T) {
	s := New(len(zones), 60)
	var kinds []EventKind
	s.Observe(func(e Event) { kinds = append(kinds, e.Kind) })

	s.SyncElapsed(1)
	s.Discover(zones[0], false)
	s.CloseModal()
	s.EndGame(ReasonCaught)
	s.Reset()

	want := []EventKind{EventTimeSynced, EventDiscovered, EventModalOpened, EventModalClosed, EventGameOver, EventReset}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("events = %v, expected %v", kinds, want)
	}
}

func TestInventoryToggle(t *testing.T) {
	s := New(1, 60)
	s.ToggleInventory()
	if !s.ShowInventory() {
		t.Error("toggle should show the inventory")
	}
	s.ToggleInventory()
	if s.ShowInventory() {
		t.Error("second toggle should hide it")
	}
}
