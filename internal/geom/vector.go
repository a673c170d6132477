// Package geom provides the 2D vector and affine matrix types shared by the
// physics core and the renderer. Everything here is a value type with no
// external dependencies.
package geom

import "math"

// Vector2 is an immutable 2D point or direction in world units.
type Vector2 struct {
	X, Y float64
}

// Vec creates a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Abs returns the component-wise absolute value.
func (v Vector2) Abs() Vector2 {
	return Vector2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Len returns the Euclidean length.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns a vector of the given length pointing at angle radians
// counter-clockwise from +X.
func FromAngle(angle, length float64) Vector2 {
	return Vector2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// ApproxEqual reports whether both components are within eps.
func (v Vector2) ApproxEqual(o Vector2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}
