// Package players contains the built-in paddle players. Importing it
// registers them with the registry.
package players

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/round"
)

// Human follows keyboard input. Terminals report key repeats rather than
// key state, so a press keeps the paddle moving for a few ticks.
type Human struct {
	holdFrames int
	dir        physics.Direction
	remaining  int
}

// NewHuman creates a keyboard player. holdFrames below 1 is treated as 1.
func NewHuman(holdFrames int) *Human {
	return &Human{holdFrames: max(holdFrames, 1)}
}

// ID returns "human".
func (h *Human) ID() string { return "human" }

// Title returns the display name.
func (h *Human) Title() string { return "Keyboard" }

// Feed records the seat's input for the coming tick.
func (h *Human) Feed(frame core.InputFrame) {
	if dir := frame.Direction(); dir != physics.DirectionNone {
		h.dir = dir
		h.remaining = h.holdFrames
	}
}

// Intent returns the held direction while the hold lasts.
func (h *Human) Intent(physics.Side, round.View) physics.Direction {
	if h.remaining <= 0 {
		return physics.DirectionNone
	}
	h.remaining--
	return h.dir
}

// Tracker follows the ball vertically outside a deadband.
type Tracker struct {
	deadband float64
}

// NewTracker creates a tracker. A non-positive deadband uses the default.
func NewTracker(deadband float64) *Tracker {
	if deadband <= 0 {
		deadband = round.DefaultDeadband
	}
	return &Tracker{deadband: deadband}
}

// ID returns "tracker".
func (t *Tracker) ID() string { return "tracker" }

// Title returns the display name.
func (t *Tracker) Title() string { return "Ball tracker" }

// Intent moves toward the ball.
func (t *Tracker) Intent(side physics.Side, view round.View) physics.Direction {
	return round.Track(view.Ball.Y, view.Paddle(side).Y, t.deadband)
}

// Idle never moves.
type Idle struct{}

// ID returns "idle".
func (Idle) ID() string { return "idle" }

// Title returns the display name.
func (Idle) Title() string { return "Idle" }

// Intent always returns no movement.
func (Idle) Intent(physics.Side, round.View) physics.Direction { return physics.DirectionNone }

var (
	_ registry.InputReceiver = (*Human)(nil)
	_ registry.Player        = (*Tracker)(nil)
	_ registry.Player        = Idle{}
)

func init() {
	registry.Register("human", func(s registry.Settings) registry.Player {
		return NewHuman(s.HoldFrames)
	})
	registry.Register("tracker", func(s registry.Settings) registry.Player {
		return NewTracker(s.Deadband)
	})
	registry.Register("idle", func(registry.Settings) registry.Player {
		return Idle{}
	})
}
