package physics

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/geom"
)

// Paddle is a vertically moving box. Its x coordinate never changes after
// Reset.
type Paddle struct {
	position geom.Vector2
	scale    geom.Vector2
	speed    float64
	bound    float64 // field half-height
}

// NewPaddle creates a paddle with the default speed at the origin of a
// field halfHeight tall on either side of the center line.
func NewPaddle(halfHeight float64) *Paddle {
	return &Paddle{speed: PaddleSpeed, bound: math.Max(halfHeight, 0)}
}

// SetSpeed overrides the vertical speed. Non-positive values are ignored.
func (p *Paddle) SetSpeed(speed float64) {
	if speed > 0 {
		p.speed = speed
	}
}

// Reset places the paddle and fixes its size for the round, clamped to
// the field the paddle was created for.
func (p *Paddle) Reset(position, scale geom.Vector2) {
	p.position = position
	p.scale = scale
	p.clampTo(p.bound)
}

// Move shifts the paddle by speed*dt in dir and keeps it inside
// [-halfHeight, halfHeight]. The clamp runs even when dir is none.
func (p *Paddle) Move(dt float64, dir Direction, halfHeight float64) {
	switch dir {
	case DirectionUp:
		p.position.Y += p.speed * dt
	case DirectionDown:
		p.position.Y -= p.speed * dt
	}
	p.clampTo(halfHeight)
}

func (p *Paddle) clampTo(halfHeight float64) {
	limit := math.Max(halfHeight-p.scale.Y*0.5, 0)
	p.position.Y = clamp(p.position.Y, -limit, limit)
}

// DistanceToPoint is the signed distance from the paddle's rectangle to
// point: positive outside, zero on the boundary, negative inside.
func (p *Paddle) DistanceToPoint(point geom.Vector2) float64 {
	dx := math.Abs(point.X-p.position.X) - p.scale.X*0.5
	dy := math.Abs(point.Y-p.position.Y) - p.scale.Y*0.5
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	return outside + math.Min(math.Max(dx, dy), 0)
}

// Position returns the paddle center.
func (p *Paddle) Position() geom.Vector2 { return p.position }

// Scale returns the full width and height.
func (p *Paddle) Scale() geom.Vector2 { return p.scale }

// Speed returns the vertical speed.
func (p *Paddle) Speed() float64 { return p.speed }

// Transform maps the unit box mesh onto the paddle.
func (p *Paddle) Transform() geom.Matrix3 {
	return geom.Compose(p.position, p.scale)
}
