package round

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/geom"
	"github.com/vovakirdan/tui-pong/internal/physics"
)

// State is the round state. Resetting is entered and left within one Step.
type State int

const (
	StatePlaying State = iota
	StateResetting
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateResetting:
		return "Resetting"
	default:
		return "Unknown"
	}
}

// Collision identifies the first contact resolved in a frame.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeftPaddle
	CollisionRightPaddle
	CollisionBorder
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeftPaddle:
		return "left paddle"
	case CollisionRightPaddle:
		return "right paddle"
	case CollisionBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Layout is the starting configuration restored on every reset.
type Layout struct {
	PaddleScale geom.Vector2 // full width and height
	PaddleInset float64      // distance of the paddle centers from the side boundaries
	BallRadius  float64
	BallSpeed   float64
	PaddleSpeed float64
}

// DefaultLayout returns the standard paddle and ball setup.
func DefaultLayout() Layout {
	return Layout{
		PaddleScale: geom.Vec(0.33, 1.5),
		PaddleInset: 0.5,
		BallRadius:  physics.DefaultBallRadius,
		BallSpeed:   physics.BallSpeed,
		PaddleSpeed: physics.PaddleSpeed,
	}
}

// Frame is the complete external input of one simulation step.
type Frame struct {
	Delta float64
	Left  physics.Direction
	Right physics.Direction
}

// StepResult reports what happened during a Step.
type StepResult struct {
	Frame     uint64
	Collision Collision
	Scored    physics.Side // boundary crossed, SideNone if none
	State     State
}

// Controller owns the ball and both paddles and advances them in a fixed
// order each frame.
type Controller struct {
	field  Playfield
	angles AngleSource
	layout Layout
	logger *log.Logger

	ball  *physics.Ball
	left  *physics.Paddle
	right *physics.Paddle

	state       State
	frame       uint64
	pointsLeft  int
	pointsRight int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLayout overrides the default layout.
func WithLayout(l Layout) Option {
	return func(c *Controller) { c.layout = l }
}

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller and performs the initial reset.
func New(field Playfield, angles AngleSource, opts ...Option) *Controller {
	c := &Controller{
		field:  field,
		angles: angles,
		layout: DefaultLayout(),
		logger: log.New(io.Discard),
		ball:   physics.NewBall(),
		left:   physics.NewPaddle(field.HalfHeight),
		right:  physics.NewPaddle(field.HalfHeight),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.ball.SetRadius(c.layout.BallRadius)
	c.ball.SetSpeed(c.layout.BallSpeed)
	for _, p := range []*physics.Paddle{c.left, c.right} {
		p.SetSpeed(c.layout.PaddleSpeed)
	}

	c.resetEntities()
	c.logger.Debug("round started",
		"half_width", field.HalfWidth,
		"half_height", field.HalfHeight,
		"velocity", c.ball.Velocity())
	return c
}

func (c *Controller) resetEntities() {
	inset := c.field.HalfWidth - c.layout.PaddleInset
	c.left.Reset(geom.Vec(-inset, 0), c.layout.PaddleScale)
	c.right.Reset(geom.Vec(inset, 0), c.layout.PaddleScale)
	c.ball.Reset(c.angles.Angle())
}

// Restart resets every entity and clears the session counters.
func (c *Controller) Restart() {
	c.frame = 0
	c.pointsLeft, c.pointsRight = 0, 0
	c.state = StatePlaying
	c.resetEntities()
}

// Step advances the simulation by one frame:
// paddles move, the ball integrates, the first of left paddle, right paddle
// and border collisions is resolved, then a boundary crossing resets the
// round.
func (c *Controller) Step(f Frame) StepResult {
	c.frame++
	res := StepResult{Frame: c.frame}

	c.left.Move(f.Delta, f.Left, c.field.HalfHeight)
	c.right.Move(f.Delta, f.Right, c.field.HalfHeight)

	c.ball.Update(f.Delta)

	switch {
	case c.ball.CheckPaddleCollision(c.left):
		res.Collision = CollisionLeftPaddle
	case c.ball.CheckPaddleCollision(c.right):
		res.Collision = CollisionRightPaddle
	case c.ball.CheckBorderCollision(c.field.HalfHeight):
		res.Collision = CollisionBorder
	}

	if side := c.ball.CheckPastPaddleBoundary(c.field.HalfWidth); side != physics.SideNone {
		c.state = StateResetting
		res.Scored = side
		// The player defending the other side takes the point.
		if side == physics.SideRight {
			c.pointsLeft++
		} else {
			c.pointsRight++
		}
		c.logger.Debug("point",
			"frame", c.frame,
			"crossed", side,
			"left", c.pointsLeft,
			"right", c.pointsRight)
		c.resetEntities()
		c.state = StatePlaying
	}

	res.State = c.state
	return res
}

// Field returns the playfield.
func (c *Controller) Field() Playfield { return c.field }

// Ball returns the ball. Callers must not mutate it outside Step.
func (c *Controller) Ball() *physics.Ball { return c.ball }

// Paddle returns the paddle on side. Any side other than SideLeft returns
// the right paddle.
func (c *Controller) Paddle(side physics.Side) *physics.Paddle {
	if side == physics.SideLeft {
		return c.left
	}
	return c.right
}

// State returns the current round state.
func (c *Controller) State() State { return c.state }

// Frames returns the number of frames stepped since the last restart.
func (c *Controller) Frames() uint64 { return c.frame }

// Points returns the session points of the left and right players.
func (c *Controller) Points() (left, right int) {
	return c.pointsLeft, c.pointsRight
}
