// Package physics implements the motion and collision core of the game:
// paddle motion bounded by the field, ball integration, rounded-rectangle
// paddle collision with angle remapping, border reflection and the
// past-paddle scoring signal.
//
// The package is deterministic given delta time and inputs and does not
// know about rendering, input devices or time sources.
package physics

import "math"

// Default tuning, in world units per second.
const (
	BallSpeed         = 8.0
	PaddleSpeed       = 4.5
	DefaultBallRadius = 0.25

	// MaxDeflection is the largest bounce angle off a paddle, measured from
	// the horizontal ejection direction.
	MaxDeflection = math.Pi / 4
)

// Direction is a vertical movement intent. The zero value means no movement.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Side identifies a half of the field. Its numeric value is the sign of the
// x axis on that side.
type Side int

const (
	SideLeft  Side = -1
	SideNone  Side = 0
	SideRight Side = 1
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the other side. SideNone maps to itself.
func (s Side) Opposite() Side {
	return -s
}

func clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
