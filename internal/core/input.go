package core

import "github.com/vovakirdan/tui-pong/internal/physics"

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move paddle up
	ActionDown           // move paddle down
	ActionPause          // pause/unpause
	ActionRestart        // restart the session
	ActionQuit           // leave the game
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions one seat triggered during a tick.
type InputFrame struct {
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Direction reduces the frame to a paddle intent. Up wins when both
// directions were pressed, matching the order keys are checked in.
func (f InputFrame) Direction() physics.Direction {
	switch {
	case f.Has(ActionUp):
		return physics.DirectionUp
	case f.Has(ActionDown):
		return physics.DirectionDown
	default:
		return physics.DirectionNone
	}
}

// SeatInput holds one input frame per side of the field.
type SeatInput struct {
	BySide map[physics.Side]InputFrame
}

// NewSeatInput creates empty frames for both sides.
func NewSeatInput() SeatInput {
	return SeatInput{
		BySide: map[physics.Side]InputFrame{
			physics.SideLeft:  NewInputFrame(),
			physics.SideRight: NewInputFrame(),
		},
	}
}

// Side returns the frame for side, or an empty frame.
func (m SeatInput) Side(side physics.Side) InputFrame {
	if frame, ok := m.BySide[side]; ok {
		return frame
	}
	return NewInputFrame()
}

// Set marks action for side.
func (m *SeatInput) Set(side physics.Side, a Action) {
	if m.BySide == nil {
		m.BySide = make(map[physics.Side]InputFrame)
	}
	frame := m.BySide[side]
	frame.Set(a)
	m.BySide[side] = frame
}

// Clear resets both sides for the next tick.
func (m *SeatInput) Clear() {
	for side, frame := range m.BySide {
		frame.Clear()
		m.BySide[side] = frame
	}
}
