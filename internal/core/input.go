package core

// Action represents a semantic command, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionConfirm          // Enter - close the open dialog
	ActionBack             // Escape - close the open dialog
	ActionRestart          // R - try again after game over
	ActionQuit             // Q, Ctrl+C
	ActionInventory        // I - toggle the inventory panel
	ActionCall             // T - answer Mom's call
	ActionHelp             // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionInventory:
		return "Inventory"
	case ActionCall:
		return "Call"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsMove reports whether a is one of the four directional actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// Intents is the set of directional inputs held during one tick.
// Keyboard and on-screen pad intents are unioned before the simulation sees them.
type Intents struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is held.
func (in Intents) Any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Union returns the directions held in either set.
func (in Intents) Union(o Intents) Intents {
	return Intents{
		Up:    in.Up || o.Up,
		Down:  in.Down || o.Down,
		Left:  in.Left || o.Left,
		Right: in.Right || o.Right,
	}
}

// With returns a copy of in with the direction for a marked as held.
// Non-directional actions leave the set unchanged.
func (in Intents) With(a Action) Intents {
	switch a {
	case ActionUp:
		in.Up = true
	case ActionDown:
		in.Down = true
	case ActionLeft:
		in.Left = true
	case ActionRight:
		in.Right = true
	}
	return in
}
