package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine is a 2D affine transform in the row-major layout used by
// golang.org/x/image/draw:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Affine f64.Aff3

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

// Translation returns a transform moving points by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{1, 0, tx, 0, 1, ty}
}

// Rotation returns a rotation by rad radians around the origin.
// With y pointing down a positive angle turns clockwise on screen.
func Rotation(rad float64) Affine {
	sin, cos := math.Sincos(rad)
	return Affine{cos, -sin, 0, sin, cos, 0}
}

// Scaling returns a scale by (sx, sy) around the origin.
func Scaling(sx, sy float64) Affine {
	return Affine{sx, 0, 0, 0, sy, 0}
}

// Mul returns m·n, the transform that applies n first and then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Translate appends a translation: the result translates before applying m.
func (m Affine) Translate(tx, ty float64) Affine {
	return m.Mul(Translation(tx, ty))
}

// Rotate appends a rotation by rad radians.
func (m Affine) Rotate(rad float64) Affine {
	return m.Mul(Rotation(rad))
}

// Scale appends a scale.
func (m Affine) Scale(sx, sy float64) Affine {
	return m.Mul(Scaling(sx, sy))
}

// Apply maps p through m.
func (m Affine) Apply(p Vec) Vec {
	return Vec{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// ApplyVector maps a displacement through m, ignoring translation.
func (m Affine) ApplyVector(v Vec) Vec {
	return Vec{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[3]*v.X + m[4]*v.Y,
	}
}

// Det returns the determinant of the linear part.
func (m Affine) Det() float64 {
	return m[0]*m[4] - m[1]*m[3]
}

// Invert returns the inverse transform. ok is false when m is singular.
func (m Affine) Invert() (inv Affine, ok bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Affine{}, false
	}
	a := m[4] / det
	b := -m[1] / det
	d := -m[3] / det
	e := m[0] / det
	return Affine{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}

// Aff3 returns m in the form expected by golang.org/x/image/draw.
func (m Affine) Aff3() f64.Aff3 {
	return f64.Aff3(m)
}
