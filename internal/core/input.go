package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // Space, W, Up
	ActionDuck               // S, Down (pressed or auto-repeated)
	ActionDuckRelease        // synthesized when the duck key stops repeating
	ActionRestart            // R key - restart after game over
	ActionPause              // P, Escape - pause/unpause
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionDuckRelease:
		return "DuckRelease"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the two halves of a press-and-hold gesture.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerRelease
)

// PointerEvent is a timestamped mouse (touch) press or release.
type PointerEvent struct {
	Kind PointerKind
	At   time.Time
}

// InputFrame represents the input collected for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds press/release events in arrival order.
	Pointer []PointerEvent

	// Now is the tick timestamp; hold durations are measured against it.
	Now time.Time
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

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(kind PointerKind, at time.Time) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, At: at})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
	f.Now = time.Time{}
}
