// Package progress is the single authoritative record of how far the
// journey has come: the current step, what has been discovered and
// collected, the clock, the open dialog and whether the game is over.
package progress

import (
	"errors"

	"github.com/vovakirdan/homeward/internal/content"
	"github.com/vovakirdan/homeward/internal/world"
)

// ErrGameOver is returned by commands that are not allowed after the game ended.
var ErrGameOver = errors.New("progress: game is over")

// Reason says why the game ended.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonTimeout
	ReasonCaught
)

func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonCaught:
		return "caught"
	default:
		return "none"
	}
}

// State is mutated only by the simulation loop and by commands applied
// between ticks. Invariant: len(discovered) == step.
type State struct {
	totalSteps int
	duration   float64

	step        int
	discovered  map[world.TriggerID]bool
	discOrder   []world.TriggerID
	inventory   map[content.ItemID]bool
	invOrder    []content.ItemID
	lastTrigger world.TriggerID

	elapsed  float64
	gameOver bool
	reason   Reason

	modal         Modal
	showInventory bool

	observers []Observer
}

// New creates the initial state for a journey of totalSteps steps whose
// clock runs out after duration seconds.
func New(totalSteps int, duration float64) *State {
	s := &State{totalSteps: totalSteps, duration: duration}
	s.clear()
	return s
}

func (s *State) clear() {
	s.step = 0
	s.discovered = make(map[world.TriggerID]bool, s.totalSteps)
	s.discOrder = nil
	s.inventory = make(map[content.ItemID]bool, s.totalSteps)
	s.invOrder = nil
	s.lastTrigger = ""
	s.elapsed = 0
	s.gameOver = false
	s.reason = ReasonNone
	s.modal = nil
	s.showInventory = false
}

// Observe registers o for every subsequent event.
func (s *State) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *State) emit(e Event) {
	for _, o := range s.observers {
		o(e)
	}
}

// Step returns the current step.
func (s *State) Step() int { return s.step }

// TotalSteps returns the number of steps in the journey.
func (s *State) TotalSteps() int { return s.totalSteps }

// Duration returns the clock length in seconds.
func (s *State) Duration() float64 { return s.duration }

// Completed reports whether every step has been discovered.
func (s *State) Completed() bool { return s.step >= s.totalSteps }

// IsDiscovered reports whether id has fired.
func (s *State) IsDiscovered(id world.TriggerID) bool { return s.discovered[id] }

// LastTrigger returns the zone the player is standing in, or "".
func (s *State) LastTrigger() world.TriggerID { return s.lastTrigger }

// Elapsed returns the last synced elapsed time.
func (s *State) Elapsed() float64 { return s.elapsed }

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool { return s.gameOver }

// Reason returns why the game ended, ReasonNone while playing.
func (s *State) Reason() Reason { return s.reason }

// Modal returns the open dialog, or nil.
func (s *State) Modal() Modal { return s.modal }

// Paused reports whether the simulation is suspended.
func (s *State) Paused() bool { return s.modal != nil || s.gameOver }

// ShowInventory reports whether the inventory panel is toggled on.
func (s *State) ShowInventory() bool { return s.showInventory }

// Discover fires zone z: it is marked discovered, its reward is collected,
// it becomes the last trigger, the step advances and the story dialog (or
// the ending, when final) opens. It returns false and changes nothing when
// z is not the current step, is already discovered, is the last trigger,
// or the game is over.
func (s *State) Discover(z world.TriggerZone, final bool) bool {
	if s.gameOver || z.StepIndex != s.step || s.discovered[z.ID] || z.ID == s.lastTrigger {
		return false
	}

	s.discovered[z.ID] = true
	s.discOrder = append(s.discOrder, z.ID)
	if !s.inventory[z.Reward] {
		s.inventory[z.Reward] = true
		s.invOrder = append(s.invOrder, z.Reward)
	}
	s.lastTrigger = z.ID
	s.step++

	var m Modal = TriggerModal{ID: z.ID}
	if final {
		m = EndingModal{}
	}
	s.modal = m

	s.emit(Event{Kind: EventDiscovered, Step: s.step, Trigger: z.ID, Item: z.Reward})
	s.emit(Event{Kind: EventModalOpened, Step: s.step, Modal: m})
	return true
}

// SetLastTrigger records the zone the player is currently inside.
func (s *State) SetLastTrigger(id world.TriggerID) { s.lastTrigger = id }

// ClearLastTrigger re-arms trigger checks once the player left every zone.
func (s *State) ClearLastTrigger() { s.lastTrigger = "" }

// SyncElapsed publishes the loop's elapsed time. Values are clamped to
// [current, duration], so the clock never runs backwards. Ignored after
// the game ended.
func (s *State) SyncElapsed(t float64) {
	if s.gameOver {
		return
	}
	if t > s.duration {
		t = s.duration
	}
	if t < s.elapsed {
		t = s.elapsed
	}
	s.elapsed = t
	s.emit(Event{Kind: EventTimeSynced, Step: s.step, Elapsed: t})
}

// EndGame makes the game terminal. The first reason wins; later calls
// return false.
func (s *State) EndGame(r Reason) bool {
	if s.gameOver || r == ReasonNone {
		return false
	}
	s.gameOver = true
	s.reason = r
	s.emit(Event{Kind: EventGameOver, Step: s.step, Reason: r, Elapsed: s.elapsed})
	return true
}

// OpenModal opens a dialog, replacing any open one.
func (s *State) OpenModal(m Modal) error {
	if m == nil {
		return errors.New("progress: nil modal")
	}
	if s.gameOver {
		return ErrGameOver
	}
	s.modal = m
	s.emit(Event{Kind: EventModalOpened, Step: s.step, Modal: m})
	return nil
}

// CloseModal closes the open dialog. It is a no-op when none is open.
func (s *State) CloseModal() {
	if s.modal == nil {
		return
	}
	m := s.modal
	s.modal = nil
	s.emit(Event{Kind: EventModalClosed, Step: s.step, Modal: m})
}

// ToggleInventory flips the inventory panel.
func (s *State) ToggleInventory() {
	s.showInventory = !s.showInventory
}

// Reset returns every field to its initial value. Observers stay registered.
func (s *State) Reset() {
	s.clear()
	s.emit(Event{Kind: EventReset})
}
