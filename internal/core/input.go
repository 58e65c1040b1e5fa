package core

import "time"

// Action is a semantic game action, decoupled from the physical key.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionStart            // Space, Enter - start a round; a tap does the same
	ActionPause            // P - pause/resume
	ActionBackspace        // Backspace - remove the last collected letter
	ActionRestart          // R - reset the round
	ActionBack             // Esc, B - back to the menu
	ActionQuit             // Q, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionStart:     "Start",
	ActionPause:     "Pause",
	ActionBackspace: "Backspace",
	ActionRestart:   "Restart",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Gesture is a finished pointer drag: displacement in pixels between press
// and release, and how long it took. The game decides whether it was a
// swipe or a tap.
type Gesture struct {
	DX, DY   float64
	Duration time.Duration
}

// InputFrame is everything the player did during one frame.
type InputFrame struct {
	Actions  map[Action]bool
	Gestures []Gesture
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

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddGesture records a completed pointer gesture.
func (f *InputFrame) AddGesture(g Gesture) {
	f.Gestures = append(f.Gestures, g)
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Gestures) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Gestures = f.Gestures[:0]
}

// Clone returns a deep copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Gestures = append([]Gesture(nil), f.Gestures...)
	return clone
}
