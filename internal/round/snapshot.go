package round

import (
	"github.com/vovakirdan/tui-pong/internal/geom"
	"github.com/vovakirdan/tui-pong/internal/physics"
)

// Entity is the render-facing state of one object: where it is, how big it
// is, and the combined model-projection transform for its mesh.
type Entity struct {
	Position geom.Vector2
	Scale    geom.Vector2
	MP       geom.Matrix3
}

// Snapshot is everything a renderer needs for one frame. Renderers consume
// it read-only; nothing flows back into the simulation.
type Snapshot struct {
	Frame       uint64
	Field       Playfield
	Projection  geom.Matrix3
	Ball        Entity
	Left        Entity
	Right       Entity
	PointsLeft  int
	PointsRight int
}

// Snapshot captures the current frame for rendering.
func (c *Controller) Snapshot() Snapshot {
	proj := c.field.Projection()
	left, right := c.Points()
	return Snapshot{
		Frame:       c.frame,
		Field:       c.field,
		Projection:  proj,
		Ball:        entity(c.ball.Transform(), proj),
		Left:        entity(c.left.Transform(), proj),
		Right:       entity(c.right.Transform(), proj),
		PointsLeft:  left,
		PointsRight: right,
	}
}

func entity(model, proj geom.Matrix3) Entity {
	return Entity{
		Position: model.Position(),
		Scale:    model.Scale(),
		MP:       model.Mul(proj),
	}
}

// View is the read-only state offered to paddle intent providers.
type View struct {
	Field        Playfield
	Ball         geom.Vector2
	BallVelocity geom.Vector2
	Left         geom.Vector2
	Right        geom.Vector2
}

// View returns the state intent providers decide on.
func (c *Controller) View() View {
	return View{
		Field:        c.field,
		Ball:         c.ball.Position(),
		BallVelocity: c.ball.Velocity(),
		Left:         c.left.Position(),
		Right:        c.right.Position(),
	}
}

// Paddle returns the position of the paddle on side.
func (v View) Paddle(side physics.Side) geom.Vector2 {
	if side == physics.SideLeft {
		return v.Left
	}
	return v.Right
}
