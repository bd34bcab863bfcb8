package geom

import "math"

// Shape is a closed 2D region in some local coordinate system.
type Shape interface {
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Rect
	// Transform returns the shape mapped through m.
	Transform(m Affine) Shape
	// Contains reports whether p lies inside the shape.
	Contains(p Vec) bool
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered returns a w×h rectangle centered on the origin.
func Centered(w, h float64) Rect {
	return Rect{X: -w / 2, Y: -h / 2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if p is inside this rectangle (right and bottom edges exclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Bottom(), other.Bottom())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Bounds returns r.
func (r Rect) Bounds() Rect {
	return r
}

// Polygon returns the corners of r, clockwise on screen.
func (r Rect) Polygon() Polygon {
	return Polygon{Points: []Vec{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
		{r.X, r.Bottom()},
	}}
}

// Transform maps r through m. The result is a Polygon since m may rotate.
func (r Rect) Transform(m Affine) Shape {
	return r.Polygon().Transform(m)
}

// Polygon is a simple polygon, convex or concave, given by its vertices in order.
type Polygon struct {
	Points []Vec
}

// NewPolygon builds a polygon from alternating x, y coordinates.
func NewPolygon(coords ...float64) Polygon {
	pts := make([]Vec, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, Vec{coords[i], coords[i+1]})
	}
	return Polygon{Points: pts}
}

// Bounds returns the bounding box of the vertices.
func (p Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, v := range p.Points[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Transform maps every vertex through m.
func (p Polygon) Transform(m Affine) Shape {
	pts := make([]Vec, len(p.Points))
	for i, v := range p.Points {
		pts[i] = m.Apply(v)
	}
	return Polygon{Points: pts}
}

// Contains reports whether pt is inside the polygon (even-odd rule).
func (p Polygon) Contains(pt Vec) bool {
	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Area returns the signed area: positive when the vertices run clockwise on
// screen (counter-clockwise in y-up coordinates).
func (p Polygon) Area() float64 {
	return signedArea(p.Points)
}

// Circle is a disk with center C and radius R.
type Circle struct {
	C Vec
	R float64
}

// NewCircle returns a circle of the given diameter centered on the origin.
func NewCircle(diameter float64) Circle {
	return Circle{R: diameter / 2}
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{c.C.X - c.R, c.C.Y - c.R, 2 * c.R, 2 * c.R}
}

// Transform maps the circle through m. Only rotations, translations,
// mirrors and uniform scales keep a circle round; for other transforms the
// radius is scaled by sqrt(|det|), which preserves the area.
func (c Circle) Transform(m Affine) Shape {
	return Circle{C: m.Apply(c.C), R: c.R * math.Sqrt(math.Abs(m.Det()))}
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Vec) bool {
	return p.Dist(c.C) < c.R
}

// Outline approximates the circle with n vertices.
func (c Circle) Outline(n int) Polygon {
	if n < 3 {
		n = 3
	}
	pts := make([]Vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec{c.C.X + c.R*math.Cos(a), c.C.Y + c.R*math.Sin(a)}
	}
	return Polygon{Points: pts}
}

// AsPolygon converts a non-circular shape into a Polygon.
func AsPolygon(s Shape) (Polygon, bool) {
	switch v := s.(type) {
	case Polygon:
		return v, true
	case *Polygon:
		return *v, true
	case Rect:
		return v.Polygon(), true
	case *Rect:
		return v.Polygon(), true
	}
	return Polygon{}, false
}
