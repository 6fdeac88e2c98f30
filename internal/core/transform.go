package core

import "math"

// Transform is a 2x3 affine matrix mapping local to device coordinates:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns t followed locally by a translation.
func (t Transform) Translate(x, y float64) Transform {
	t.E += t.A*x + t.C*y
	t.F += t.B*x + t.D*y
	return t
}

// Rotate returns t followed locally by a rotation of rad radians.
func (t Transform) Rotate(rad float64) Transform {
	sin, cos := math.Sincos(rad)
	a, b, c, d := t.A, t.B, t.C, t.D
	t.A = a*cos + c*sin
	t.B = b*cos + d*sin
	t.C = c*cos - a*sin
	t.D = d*cos - b*sin
	return t
}

// Scale returns t followed locally by a scale.
func (t Transform) Scale(sx, sy float64) Transform {
	t.A *= sx
	t.B *= sx
	t.C *= sy
	t.D *= sy
	return t
}

// Apply maps a local point to device coordinates.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// Invert returns the inverse transform. ok is false for a singular matrix.
func (t Transform) Invert() (inv Transform, ok bool) {
	det := t.A*t.D - t.B*t.C
	if det == 0 {
		return Transform{}, false
	}
	inv.A = t.D / det
	inv.B = -t.B / det
	inv.C = -t.C / det
	inv.D = t.A / det
	inv.E = (t.C*t.F - t.D*t.E) / det
	inv.F = (t.B*t.E - t.A*t.F) / det
	return inv, true
}

// IsAxisAligned reports whether t has no rotation or shear.
func (t Transform) IsAxisAligned() bool {
	return t.B == 0 && t.C == 0
}
