package round

import "github.com/vovakirdan/tui-pong/internal/physics"

// DefaultDeadband is the vertical offset below which the tracker holds
// still.
const DefaultDeadband = 0.2

// Track moves a paddle toward the ball once the vertical offset leaves the
// deadband.
func Track(ballY, paddleY, deadband float64) physics.Direction {
	dY := ballY - paddleY
	switch {
	case dY > deadband:
		return physics.DirectionUp
	case dY < -deadband:
		return physics.DirectionDown
	default:
		return physics.DirectionNone
	}
}
