package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/geom"
)

func assertSpeed(t *testing.T, b *Ball) {
	t.Helper()
	if got := b.Velocity().Len(); math.Abs(got-b.Speed()) > 1e-9 {
		t.Errorf("|velocity| = %f, expected %f", got, b.Speed())
	}
}

func TestBallResetCenterLaunch(t *testing.T) {
	b := NewBall()
	b.position = geom.Vec(3, -2)
	b.Reset(0)

	if b.Position() != (geom.Vector2{}) {
		t.Errorf("Position() = %v, expected origin", b.Position())
	}
	if !b.Velocity().ApproxEqual(geom.Vec(BallSpeed, 0), eps) {
		t.Errorf("Velocity() = %v, expected (%f, 0)", b.Velocity(), BallSpeed)
	}

	b.Update(1.0)
	if !b.Position().ApproxEqual(geom.Vec(BallSpeed, 0), eps) {
		t.Errorf("after Update(1): Position() = %v, expected (%f, 0)", b.Position(), BallSpeed)
	}
}

func TestBallResetSpeedInvariance(t *testing.T) {
	b := NewBall()
	for deg := 0; deg < 360; deg += 7 {
		b.Reset(float64(deg) * math.Pi / 180)
		assertSpeed(t, b)
	}
}

func TestBallUpdateIsKinematic(t *testing.T) {
	b := NewBall()
	b.Reset(math.Pi / 4)
	v := b.Velocity()
	b.Update(0.5)
	b.Update(0.25)
	want := v.Scale(0.75)
	if !b.Position().ApproxEqual(want, eps) {
		t.Errorf("Position() = %v, expected %v", b.Position(), want)
	}
	if b.Velocity() != v {
		t.Errorf("Update changed velocity: %v -> %v", v, b.Velocity())
	}
}

func TestBounceAngle(t *testing.T) {
	const half = 0.75
	tests := []struct {
		name     string
		offset   geom.Vector2
		vx       float64
		expected float64
	}{
		{"center hit from left side", geom.Vec(-0.3, 0), 8, math.Pi},
		{"center hit from right side", geom.Vec(0.3, 0), -8, 0},
		{"top edge, ball on left", geom.Vec(-0.3, half), 8, math.Pi - math.Pi/4},
		{"bottom edge, ball on left", geom.Vec(-0.3, -half), 8, math.Pi + math.Pi/4},
		{"top edge, ball on right", geom.Vec(0.3, half), -8, math.Pi / 4},
		{"bottom edge, ball on right", geom.Vec(0.3, -half), -8, -math.Pi / 4},
		{"beyond edge clamps", geom.Vec(0.3, 2*half), -8, math.Pi / 4},
		{"halfway up, ball on right", geom.Vec(0.3, half/2), -8, math.Pi / 8},
		{"shared x, moving right", geom.Vec(0, 0.1), 8, math.Pi - 0.1/half*math.Pi/4},
		{"shared x, moving left", geom.Vec(0, 0.1), -8, 0.1 / half * math.Pi / 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BounceAngle(tc.offset, half, tc.vx)
			if math.Abs(got-tc.expected) > eps {
				t.Errorf("BounceAngle(%v, %f, %f) = %f, expected %f", tc.offset, half, tc.vx, got, tc.expected)
			}
		})
	}
}

func TestBallPaddleCenterHitEjectsHorizontally(t *testing.T) {
	p := newTestPaddle(geom.Vec(8.5, 0), geom.Vec(0.33, 1.5))
	b := NewBall()
	b.Reset(0)
	b.position = geom.Vec(8.5-0.165-0.1, 0)

	if !b.CheckPaddleCollision(p) {
		t.Fatal("expected collision")
	}
	v := b.Velocity()
	if !v.ApproxEqual(geom.Vec(-BallSpeed, 0), 1e-12) {
		t.Errorf("Velocity() = %v, expected (-%f, 0)", v, BallSpeed)
	}
	assertSpeed(t, b)
}

func TestBallPaddleEdgeHitEjectsAt45(t *testing.T) {
	p := newTestPaddle(geom.Vec(-8.5, 0), geom.Vec(0.33, 1.5))
	b := NewBall()
	b.Reset(math.Pi)

	// Ball to the right of the left paddle at its bottom edge.
	b.position = geom.Vec(-8.5+0.165+0.2, -0.75)
	if !b.CheckPaddleCollision(p) {
		t.Fatal("expected collision")
	}
	want := geom.FromAngle(-math.Pi/4, BallSpeed)
	if !b.Velocity().ApproxEqual(want, eps) {
		t.Errorf("Velocity() = %v, expected %v", b.Velocity(), want)
	}
	if b.Velocity().X <= 0 || b.Velocity().Y >= 0 {
		t.Errorf("expected rightward and downward ejection, got %v", b.Velocity())
	}
	assertSpeed(t, b)
}

func TestBallPaddleCornerHit(t *testing.T) {
	p := newTestPaddle(geom.Vec(0, 0), geom.Vec(0.33, 1.5))
	b := NewBall()
	b.Reset(0)

	// Diagonally off the top-left corner: each axis is within radius but the
	// Euclidean distance is not.
	b.position = geom.Vec(-0.165-0.2, 0.75+0.2)
	if b.CheckPaddleCollision(p) {
		t.Error("corner miss reported as collision")
	}

	b.position = geom.Vec(-0.165-0.15, 0.75+0.15)
	if !b.CheckPaddleCollision(p) {
		t.Fatal("corner hit not detected")
	}
	if b.Velocity().X >= 0 || b.Velocity().Y <= 0 {
		t.Errorf("expected up-left ejection, got %v", b.Velocity())
	}
}

func TestBallPaddleNoCollision(t *testing.T) {
	p := newTestPaddle(geom.Vec(8.5, 0), geom.Vec(0.33, 1.5))
	b := NewBall()
	b.Reset(0)
	v := b.Velocity()

	if b.CheckPaddleCollision(p) {
		t.Error("ball at center should not hit a far paddle")
	}
	if b.Velocity() != v {
		t.Error("velocity changed without a collision")
	}
}

func TestBallRepeatedOverlapKeepsEjecting(t *testing.T) {
	p := newTestPaddle(geom.Vec(8.5, 0), geom.Vec(0.33, 1.5))
	b := NewBall()
	b.Reset(0)
	b.position = geom.Vec(8.5-0.1, 0.3)

	// A ball still overlapping on the following frame must not be sent
	// back into the paddle.
	for i := 0; i < 3; i++ {
		b.CheckPaddleCollision(p)
		if b.Velocity().X >= 0 {
			t.Fatalf("check %d: velocity %v points into the paddle", i, b.Velocity())
		}
	}
}

func TestBallBorderCollision(t *testing.T) {
	const halfHeight = 5.0

	t.Run("top while moving up", func(t *testing.T) {
		b := NewBall()
		b.Reset(math.Pi / 3)
		before := b.Velocity()
		b.position = geom.Vec(1, halfHeight-b.Radius()+0.01)

		if !b.CheckBorderCollision(halfHeight) {
			t.Fatal("expected top border hit")
		}
		if b.Velocity().Y != -before.Y || b.Velocity().X != before.X {
			t.Errorf("Velocity() = %v, expected (%f, %f)", b.Velocity(), before.X, -before.Y)
		}
		assertSpeed(t, b)
	})

	t.Run("bottom while moving down", func(t *testing.T) {
		b := NewBall()
		b.Reset(-math.Pi / 6)
		before := b.Velocity()
		b.position = geom.Vec(-2, -halfHeight+b.Radius())

		if !b.CheckBorderCollision(halfHeight) {
			t.Fatal("expected bottom border hit")
		}
		if b.Velocity().Y != -before.Y || b.Velocity().X != before.X {
			t.Errorf("Velocity() = %v, expected (%f, %f)", b.Velocity(), before.X, -before.Y)
		}
	})

	t.Run("already leaving", func(t *testing.T) {
		b := NewBall()
		b.Reset(-math.Pi / 4)
		b.position = geom.Vec(0, halfHeight)
		if b.CheckBorderCollision(halfHeight) {
			t.Error("ball moving away from the top should not bounce again")
		}
	})

	t.Run("inside field", func(t *testing.T) {
		b := NewBall()
		b.Reset(math.Pi / 4)
		if b.CheckBorderCollision(halfHeight) {
			t.Error("ball at center should not hit a border")
		}
	})
}

func TestBallPastPaddleBoundary(t *testing.T) {
	const halfWidth = 8.0
	tests := []struct {
		name     string
		x        float64
		expected Side
	}{
		{"center", 0, SideNone},
		{"just short of right", halfWidth - 0.3, SideNone},
		{"right within radius", halfWidth - 0.25, SideRight},
		{"right beyond", halfWidth + 3, SideRight},
		{"left within radius", -halfWidth + 0.1, SideLeft},
		{"left beyond", -halfWidth - 10, SideLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall()
			b.Reset(0)
			v := b.Velocity()
			b.position = geom.Vec(tc.x, 0)
			if got := b.CheckPastPaddleBoundary(halfWidth); got != tc.expected {
				t.Errorf("CheckPastPaddleBoundary() = %v, expected %v", got, tc.expected)
			}
			if b.Velocity() != v {
				t.Error("boundary check changed velocity")
			}
		})
	}
}

func TestBallCenterLaunchScoresRight(t *testing.T) {
	const halfWidth = 8.888
	right := newTestPaddle(geom.Vec(halfWidth-0.5, 0), geom.Vec(0.33, 1.5))
	right.position.Y = 3 // out of the way

	b := NewBall()
	b.Reset(0)

	side := SideNone
	for i := 0; i < 200 && side == SideNone; i++ {
		b.Update(1.0 / 60)
		b.CheckPaddleCollision(right)
		side = b.CheckPastPaddleBoundary(halfWidth)
	}
	if side != SideRight {
		t.Fatalf("expected right side signal, got %v", side)
	}
	if b.Position().X < halfWidth-b.Radius() {
		t.Errorf("signal before reaching boundary: x = %f", b.Position().X)
	}
}

func TestBallSpeedInvarianceRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	left := newTestPaddle(geom.Vec(-7.5, 0), geom.Vec(0.33, 1.5))
	right := newTestPaddle(geom.Vec(7.5, 0), geom.Vec(0.33, 1.5))
	b := NewBall()
	b.Reset(0.3)

	for i := 0; i < 20000; i++ {
		left.Move(1.0/60, Direction(rng.Intn(3)), 5)
		right.Move(1.0/60, Direction(rng.Intn(3)), 5)
		b.Update(1.0 / 60)
		_ = b.CheckPaddleCollision(left) || b.CheckPaddleCollision(right) || b.CheckBorderCollision(5)
		if b.CheckPastPaddleBoundary(8) != SideNone {
			b.Reset(rng.Float64() * 2 * math.Pi)
		}
		assertSpeed(t, b)
		if t.Failed() {
			t.Fatalf("speed drift at step %d", i)
		}
	}
}

func TestBallSetSpeed(t *testing.T) {
	b := NewBall()
	b.Reset(1)
	b.SetSpeed(4)
	assertSpeed(t, b)
	if b.Speed() != 4 {
		t.Errorf("Speed() = %f, expected 4", b.Speed())
	}
	b.SetSpeed(0)
	if b.Speed() != 4 {
		t.Error("zero speed should be ignored")
	}
}

func TestBallTransform(t *testing.T) {
	b := NewBall()
	b.SetRadius(0.5)
	b.Reset(0)
	b.Update(0.25)
	m := b.Transform()
	if m.Position() != b.Position() || m.Scale() != geom.Vec(0.5, 0.5) {
		t.Errorf("Transform() = %v", m)
	}
}

func TestDirectionAndSideStrings(t *testing.T) {
	if DirectionUp.String() != "Up" || DirectionDown.String() != "Down" || DirectionNone.String() != "None" {
		t.Error("unexpected Direction names")
	}
	if SideLeft.Opposite() != SideRight || SideNone.Opposite() != SideNone {
		t.Error("Opposite() mismatch")
	}
	if SideRight.String() != "right" {
		t.Errorf("SideRight.String() = %q", SideRight.String())
	}
}
