package progress

import "github.com/vovakirdan/homeward/internal/world"

// Modal is the dialog currently pausing the simulation.
// The set of variants is closed: TriggerModal, NpcDialogModal, EndingModal.
type Modal interface {
	isModal()
	String() string
}

// TriggerModal tells the story of a discovered place.
type TriggerModal struct {
	ID world.TriggerID
}

// NpcDialogModal shows one line from the phone call.
type NpcDialogModal struct {
	Line string
}

// EndingModal closes the journey.
type EndingModal struct{}

func (TriggerModal) isModal()   {}
func (NpcDialogModal) isModal() {}
func (EndingModal) isModal()    {}

func (m TriggerModal) String() string { return "trigger:" + string(m.ID) }
func (NpcDialogModal) String() string { return "npc" }
func (EndingModal) String() string    { return "ending" }
