package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionCursorLeft         // Left, H - move build cursor
	ActionCursorRight        // Right, L - move build cursor
	ActionCursorUp           // Up, K - move build cursor
	ActionCursorDown         // Down, J - move build cursor
	ActionPlace              // Space, Enter - build or upgrade at cursor
	ActionRemove             // X, Backspace - demolish at cursor
	ActionRestart            // R - start a new game after game over
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionPlace:
		return "Place"
	case ActionRemove:
		return "Remove"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerButton identifies which pointer button produced a click.
type PointerButton int

const (
	PointerPrimary   PointerButton = iota // left click: build or upgrade
	PointerSecondary                      // right click: demolish
)

// PointerEvent is a click in screen cell coordinates.
type PointerEvent struct {
	X, Y   int
	Button PointerButton
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds clicks in arrival order.
	Pointer []PointerEvent
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

// Click records a pointer click for this frame.
func (f *InputFrame) Click(x, y int, button PointerButton) {
	f.Pointer = append(f.Pointer, PointerEvent{X: x, Y: y, Button: button})
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}
