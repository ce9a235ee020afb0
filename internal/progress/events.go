package progress

import (
	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/world"
)

// EventKind identifies what changed in the state.
type EventKind uint8

const (
	EventDiscovered EventKind = iota
	EventModalOpened
	EventModalClosed
	EventTimeSynced
	EventGameOver
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventDiscovered:
		return "discovered"
	case EventModalOpened:
		return "modal_opened"
	case EventModalClosed:
		return "modal_closed"
	case EventTimeSynced:
		return "time_synced"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after the change it describes is applied.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Step    int
	Trigger world.TriggerID
	Item    content.ItemID
	Modal   Modal
	Reason  Reason
	Elapsed float64
}

// Observer receives state events. Observers run synchronously on the
// simulation goroutine and must not call back into the State.
type Observer func(Event)
