package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionFire         // Space
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the per-frame snapshot of the player's controls.
// Values are raw "is held" flags; edge detection is the engine's job.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// InputSource is polled once per frame by the engine.
type InputSource interface {
	PlayerInput() Input
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func() Input

// PlayerInput calls f.
func (f InputFunc) PlayerInput() Input {
	return f()
}
