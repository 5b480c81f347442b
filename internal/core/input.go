package core

// Action is an input intent, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // dismiss the win banner
	ActionRestart // abandon the current game and start a new one
	ActionQuit
	ActionPause

	numActions
)

var actionNames = [numActions]string{
	"None", "Up", "Down", "Left", "Right", "Confirm", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed since the previous tick.
// The zero value is an empty frame.
type InputFrame struct {
	pressed uint16
}

func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as pressed. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= numActions {
		return
	}
	f.pressed |= 1 << a
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a < numActions && f.pressed&(1<<a) != 0
}

func (f InputFrame) Empty() bool {
	return f.pressed == 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = 0
}
