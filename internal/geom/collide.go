package geom

import "math"

// eps absorbs rounding noise so that shapes which only touch do not overlap.
const eps = 1e-9

// Intersects reports whether a and b share a region of non-zero area.
// Shapes that merely touch along an edge or at a point do not intersect.
// The bounding boxes are compared first as a fast reject.
func Intersects(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}

	ca, aRound := circleOf(a)
	cb, bRound := circleOf(b)
	switch {
	case aRound && bRound:
		r := ca.R + cb.R
		d := ca.C.Sub(cb.C)
		return d.Dot(d) < r*r-eps
	case aRound:
		return circleHitsShape(ca, b)
	case bRound:
		return circleHitsShape(cb, a)
	}

	pa := convexParts(polygonOf(a))
	pb := convexParts(polygonOf(b))
	for _, x := range pa {
		for _, y := range pb {
			if convexOverlap(x, y) {
				return true
			}
		}
	}
	return false
}

func circleOf(s Shape) (Circle, bool) {
	switch v := s.(type) {
	case Circle:
		return v, true
	case *Circle:
		return *v, true
	}
	return Circle{}, false
}

// polygonOf falls back to the bounding box for shape kinds it does not know.
func polygonOf(s Shape) Polygon {
	if p, ok := AsPolygon(s); ok {
		return p
	}
	return s.Bounds().Polygon()
}

func circleHitsShape(c Circle, s Shape) bool {
	if c.R <= 0 {
		return false
	}
	for _, part := range convexParts(polygonOf(s)) {
		if circleOverlap(c, part) {
			return true
		}
	}
	return false
}

// convexOverlap runs the separating axis test on two convex polygons.
func convexOverlap(a, b []Vec) bool {
	return !separatedByEdges(a, a, b) && !separatedByEdges(b, a, b)
}

func separatedByEdges(src, a, b []Vec) bool {
	n := len(src)
	for i := range src {
		edge := src[(i+1)%n].Sub(src[i])
		axis := edge.Perp().Unit()
		if axis == (Vec{}) {
			continue
		}
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA <= minB+eps || maxB <= minA+eps {
			return true
		}
	}
	return false
}

func circleOverlap(c Circle, poly []Vec) bool {
	axes := make([]Vec, 0, len(poly)+1)
	n := len(poly)
	closest, best := Vec{}, math.Inf(1)
	for i, v := range poly {
		axes = append(axes, poly[(i+1)%n].Sub(v).Perp().Unit())
		if d := v.Dist(c.C); d < best {
			closest, best = v, d
		}
	}
	axes = append(axes, closest.Sub(c.C).Unit())

	for _, axis := range axes {
		if axis == (Vec{}) {
			continue
		}
		minP, maxP := project(poly, axis)
		center := c.C.Dot(axis)
		if maxP <= center-c.R+eps || center+c.R <= minP+eps {
			return false
		}
	}
	return true
}

func project(pts []Vec, axis Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		d := p.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
