package physics

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/geom"
)

// Ball moves in a straight line at constant speed. Only its direction
// changes on bounces.
type Ball struct {
	position geom.Vector2
	velocity geom.Vector2
	radius   float64
	speed    float64
}

// NewBall creates a resting ball with the default radius and speed.
func NewBall() *Ball {
	return &Ball{radius: DefaultBallRadius, speed: BallSpeed}
}

// SetRadius sets the collision radius. Non-positive values are ignored.
func (b *Ball) SetRadius(radius float64) {
	if radius > 0 {
		b.radius = radius
	}
}

// SetSpeed sets the speed used by the next Reset or bounce and rescales the
// current velocity so |velocity| stays equal to speed.
func (b *Ball) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	if l := b.velocity.Len(); l > 0 {
		b.velocity = b.velocity.Scale(speed / l)
	}
	b.speed = speed
}

// Reset centers the ball and launches it at angle radians.
func (b *Ball) Reset(angle float64) {
	b.velocity = geom.FromAngle(angle, b.speed)
	b.position = geom.Vector2{}
}

// Update integrates position over dt. Collisions are not resolved here.
func (b *Ball) Update(dt float64) {
	b.position = b.position.Add(b.velocity.Scale(dt))
}

// CheckPaddleCollision bounces the ball off p when its center is within
// radius of the paddle's rectangle.
//
// The outgoing angle grows linearly with the vertical offset from the
// paddle center, up to MaxDeflection at the paddle's top or bottom edge,
// and always points away from the paddle.
func (b *Ball) CheckPaddleCollision(p *Paddle) bool {
	if p.DistanceToPoint(b.position) > b.radius {
		return false
	}
	angle := BounceAngle(b.position.Sub(p.position), p.scale.Y*0.5, b.velocity.X)
	b.velocity = geom.FromAngle(angle, b.speed)
	return true
}

// BounceAngle returns the ejection angle for a ball at offset from a paddle
// center, where halfHeight is half the paddle height and vx is the ball's
// horizontal velocity before the hit.
//
// The ball leaves on the side its center is on; when the centers share an
// x coordinate it leaves opposite to vx. A zero vertical offset always
// yields an exactly horizontal ejection.
func BounceAngle(offset geom.Vector2, halfHeight, vx float64) float64 {
	leftward := offset.X < 0 || (offset.X == 0 && vx > 0)

	if offset.Y == 0 {
		if leftward {
			return math.Pi
		}
		return 0
	}

	ratio := 1.0
	if halfHeight > 0 {
		ratio = math.Min(math.Abs(offset.Y), halfHeight) / halfHeight
	}
	deflection := ratio * MaxDeflection

	switch {
	case leftward && offset.Y > 0:
		return math.Pi - deflection
	case leftward:
		return math.Pi + deflection
	case offset.Y > 0:
		return deflection
	default:
		return -deflection
	}
}

// CheckBorderCollision reflects the vertical velocity when the ball's edge
// reaches the top or bottom border while still heading into it.
func (b *Ball) CheckBorderCollision(halfHeight float64) bool {
	if b.position.Y+b.radius >= halfHeight && b.velocity.Y > 0 {
		b.velocity.Y = -b.velocity.Y
		return true
	}
	if b.position.Y-b.radius <= -halfHeight && b.velocity.Y < 0 {
		b.velocity.Y = -b.velocity.Y
		return true
	}
	return false
}

// CheckPastPaddleBoundary reports which horizontal boundary the ball has
// reached, within radius, or SideNone. Velocity is not touched.
//
// A ball that jumped past a boundary in a single large step is still
// reported.
func (b *Ball) CheckPastPaddleBoundary(halfWidth float64) Side {
	switch {
	case b.position.X >= halfWidth-b.radius:
		return SideRight
	case b.position.X <= -halfWidth+b.radius:
		return SideLeft
	default:
		return SideNone
	}
}

// Position returns the ball center.
func (b *Ball) Position() geom.Vector2 { return b.position }

// Velocity returns the current velocity.
func (b *Ball) Velocity() geom.Vector2 { return b.velocity }

// Radius returns the collision radius.
func (b *Ball) Radius() float64 { return b.radius }

// Speed returns the fixed speed magnitude.
func (b *Ball) Speed() float64 { return b.speed }

// Transform maps the unit circle mesh onto the ball.
func (b *Ball) Transform() geom.Matrix3 {
	return geom.Compose(b.position, geom.Vector2{X: b.radius, Y: b.radius})
}
