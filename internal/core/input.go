package core

import "slices"

// Action is a player intent, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRestart        // Space, R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

var actionNames = [...]string{"None", "Up", "Down", "Left", "Right", "Restart", "Quit"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Direction returns the movement direction for a directional action.
// The second result is false for non-directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return Direction{}, false
	}
}

// InputFrame holds the intents collected during one frame, in arrival order.
// Order matters: when several directions arrive in one frame the last one wins.
type InputFrame struct {
	actions []Action
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends a to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has reports whether a arrived this frame.
func (f InputFrame) Has(a Action) bool {
	return slices.Contains(f.actions, a)
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone copies the frame so the original can be cleared and reused.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{actions: slices.Clone(f.actions)}
}
