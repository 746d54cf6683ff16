package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps raw keys to actions so the simulation never sees key codes.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, W, Up - fire the jump impulse (also launches from the title screen)
	ActionLeft              // A, Left arrow - drift toward the left edge
	ActionRight             // D, Right arrow - drift toward the right edge
	ActionPause             // P, Escape - pause/unpause
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionTierEasy          // 1 - select easy difficulty (title screen only)
	ActionTierMedium        // 2 - select medium difficulty
	ActionTierHard          // 3 - select hard difficulty
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionTierEasy:
		return "TierEasy"
	case ActionTierMedium:
		return "TierMedium"
	case ActionTierHard:
		return "TierHard"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
