package tui

import (
	"time"

	"github.com/vovakirdan/homeward/internal/core"
)

// HeldKeys emulates key-up events. Terminals only report presses and
// auto-repeats, so a direction counts as held until hold has passed
// since its last press.
type HeldKeys struct {
	hold time.Duration
	last map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{hold: hold, last: make(map[core.Action]time.Time, 4)}
}

// Press records a press of a directional action at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if !a.IsMove() {
		return
	}
	// opposite directions cancel, the newest wins
	delete(h.last, opposite(a))
	h.last[a] = now
}

// Intents returns the directions still held at now and forgets the rest.
func (h *HeldKeys) Intents(now time.Time) core.Intents {
	var in core.Intents
	for a, t := range h.last {
		if now.Sub(t) > h.hold {
			delete(h.last, a)
			continue
		}
		in = in.With(a)
	}
	return in
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	clear(h.last)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
