package progress

import (
	"slices"

	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/world"
)

// Snapshot is a read-only copy of the state for HUD, dialogs and tests.
type Snapshot struct {
	Step          int
	TotalSteps    int
	Discovered    []world.TriggerID // discovery order
	Inventory     []content.ItemID  // acquisition order
	LastTrigger   world.TriggerID
	Elapsed       float64
	Duration      float64
	GameOver      bool
	Reason        Reason
	Modal         Modal
	ShowInventory bool
}

// Snapshot returns a deep copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Step:          s.step,
		TotalSteps:    s.totalSteps,
		Discovered:    slices.Clone(s.discOrder),
		Inventory:     slices.Clone(s.invOrder),
		LastTrigger:   s.lastTrigger,
		Elapsed:       s.elapsed,
		Duration:      s.duration,
		GameOver:      s.gameOver,
		Reason:        s.reason,
		Modal:         s.modal,
		ShowInventory: s.showInventory,
	}
}

// HasDiscovered reports whether id is in the discovered list.
func (s Snapshot) HasDiscovered(id world.TriggerID) bool {
	return slices.Contains(s.Discovered, id)
}

// HasItem reports whether id has been collected.
func (s Snapshot) HasItem(id content.ItemID) bool {
	return slices.Contains(s.Inventory, id)
}

// Completed reports whether every step is done.
func (s Snapshot) Completed() bool {
	return s.Step >= s.TotalSteps
}
