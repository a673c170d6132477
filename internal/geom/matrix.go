package geom

// Matrix3 is a row-major 3x3 affine transform.
//
// Points are row vectors multiplied on the left: p' = [x y 1] * M. Scale
// lives on the diagonal and translation in the last row (M[6], M[7]); the
// last column is always (0, 0, 1). With this convention A.Mul(B) applies A
// first, so model.Mul(projection) maps model space to clip space.
type Matrix3 struct {
	M [9]float64
}

// Identity returns the identity transform.
func Identity() Matrix3 {
	return Matrix3{M: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// Ortho returns a projection mapping [-h, h] x [-v, v] onto [-1, 1] x [-1, 1].
func Ortho(h, v float64) Matrix3 {
	return Matrix3{M: [9]float64{
		1 / h, 0, 0,
		0, 1 / v, 0,
		0, 0, 1,
	}}
}

// Compose returns a transform that scales by scale and then translates to
// position.
func Compose(position, scale Vector2) Matrix3 {
	m := Identity()
	m.SetScale(scale)
	m.SetPosition(position)
	return m
}

// SetScale overwrites the diagonal scale terms.
func (m *Matrix3) SetScale(s Vector2) {
	m.M[0] = s.X
	m.M[4] = s.Y
}

// SetPosition overwrites the translation terms.
func (m *Matrix3) SetPosition(p Vector2) {
	m.M[6] = p.X
	m.M[7] = p.Y
}

// Position returns the translation part.
func (m Matrix3) Position() Vector2 {
	return Vector2{X: m.M[6], Y: m.M[7]}
}

// Scale returns the diagonal scale part.
func (m Matrix3) Scale() Vector2 {
	return Vector2{X: m.M[0], Y: m.M[4]}
}

// Mul returns m * o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	a, b := m.M, o.M
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r.M[row*3+col] = a[row*3]*b[col] + a[row*3+1]*b[3+col] + a[row*3+2]*b[6+col]
		}
	}
	return r
}

// Apply transforms point p.
func (m Matrix3) Apply(p Vector2) Vector2 {
	return Vector2{
		X: p.X*m.M[0] + p.Y*m.M[3] + m.M[6],
		Y: p.X*m.M[1] + p.Y*m.M[4] + m.M[7],
	}
}

// IsAffine reports whether the last column is (0, 0, 1).
func (m Matrix3) IsAffine() bool {
	return m.M[2] == 0 && m.M[5] == 0 && m.M[8] == 1
}

// Inverse returns the inverse transform and false when m is singular.
func (m Matrix3) Inverse() (Matrix3, bool) {
	a, b := m.M[0], m.M[1]
	c, d := m.M[3], m.M[4]
	tx, ty := m.M[6], m.M[7]

	det := a*d - b*c
	if det == 0 {
		return Matrix3{}, false
	}
	ia, ib := d/det, -b/det
	ic, id := -c/det, a/det
	return Matrix3{M: [9]float64{
		ia, ib, 0,
		ic, id, 0,
		-(tx*ia + ty*ic), -(tx*ib + ty*id), 1,
	}}, true
}
