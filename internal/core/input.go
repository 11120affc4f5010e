package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // A, Left arrow - rotate heading counter-clockwise
	ActionTurnRight        // D, Right arrow - rotate heading clockwise
	ActionSpeedUp          // W, Up arrow - one speed level forward per press
	ActionSpeedDown        // S, Down arrow - one speed level back per press
	ActionClimb            // R - climb, also takes off when landed
	ActionDescend          // F - descend
	ActionLand             // L - land assist near the ground
	ActionToggleView       // V - flip map orientation
	ActionToggleMap        // M - enlarge or shrink the minimap
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B - go back to menu
	ActionRestart          // N - new game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionClimb:
		return "Climb"
	case ActionDescend:
		return "Descend"
	case ActionLand:
		return "Land"
	case ActionToggleView:
		return "ToggleView"
	case ActionToggleMap:
		return "ToggleMap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the polled input snapshot for one simulation tick.
// Actions holds key-down state; edge detection belongs to the consumer.
type InputFrame struct {
	Actions map[Action]bool
	// Wheel is a one-shot scroll delta, consumed by the first tick that sees it.
	Wheel int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the wheel delta.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Wheel = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Wheel = f.Wheel
	return clone
}
