// Package geom provides the 2D math used by the engine: vectors, affine
// transforms backed by x/image's f64.Aff3, shapes and exact overlap tests.
package geom

import "math"

// Vec is a point or displacement in world or screen space.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec      { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec      { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Mul(s float64) Vec  { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(o Vec) float64  { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64       { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// Cross returns the z component of the 3D cross product.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns v rotated by 90 degrees.
func (v Vec) Perp() Vec {
	return Vec{-v.Y, v.X}
}

// Unit returns v scaled to length 1, or the zero vector.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Angle returns the direction of v in degrees, as atan2(y, x).
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Polar returns the vector of length r pointing at deg degrees.
func Polar(r, deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{r * math.Cos(rad), r * math.Sin(rad)}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
