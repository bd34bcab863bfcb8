package geom

import "math"

func signedArea(pts []Vec) float64 {
	var sum float64
	n := len(pts)
	for i := range pts {
		sum += pts[i].Cross(pts[(i+1)%n])
	}
	return sum / 2
}

// IsConvex reports whether the polygon is convex. Collinear vertices are allowed.
func (p Polygon) IsConvex() bool {
	return isConvex(p.Points)
}

func isConvex(pts []Vec) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	sign := 0.0
	for i := range pts {
		c := pts[(i+1)%n].Sub(pts[i]).Cross(pts[(i+2)%n].Sub(pts[(i+1)%n]))
		if math.Abs(c) < eps {
			continue
		}
		if sign == 0 {
			sign = math.Copysign(1, c)
		} else if math.Copysign(1, c) != sign {
			return false
		}
	}
	return sign != 0
}

// ConvexParts splits the polygon into convex pieces: the polygon itself when
// it is already convex, otherwise the triangles of an ear-clipping
// triangulation. Polygons without area yield no parts.
func (p Polygon) ConvexParts() [][]Vec {
	return convexParts(p)
}

func convexParts(p Polygon) [][]Vec {
	if len(p.Points) < 3 || math.Abs(signedArea(p.Points)) < eps {
		return nil
	}
	if isConvex(p.Points) {
		return [][]Vec{p.Points}
	}
	return triangulate(p.Points)
}

// triangulate ear-clips a simple polygon of either winding.
func triangulate(pts []Vec) [][]Vec {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	if signedArea(pts) < 0 {
		for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	var tris [][]Vec
	for len(idx) > 3 {
		clipped := false
		for i := range idx {
			prev := pts[idx[(i+len(idx)-1)%len(idx)]]
			cur := pts[idx[i]]
			next := pts[idx[(i+1)%len(idx)]]

			turn := cur.Sub(prev).Cross(next.Sub(cur))
			if math.Abs(turn) < eps {
				// collinear vertex, drop it without emitting a triangle
				idx = append(idx[:i], idx[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 {
				continue // reflex
			}
			if anyInside(pts, idx, prev, cur, next) {
				continue
			}
			tris = append(tris, []Vec{prev, cur, next})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// self-intersecting input: fan the remainder
			for i := 1; i+1 < len(idx); i++ {
				tris = append(tris, []Vec{pts[idx[0]], pts[idx[i]], pts[idx[i+1]]})
			}
			return tris
		}
	}
	if len(idx) == 3 {
		t := []Vec{pts[idx[0]], pts[idx[1]], pts[idx[2]]}
		if math.Abs(signedArea(t)) >= eps {
			tris = append(tris, t)
		}
	}
	return tris
}

func anyInside(pts []Vec, idx []int, a, b, c Vec) bool {
	for _, k := range idx {
		p := pts[k]
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

// inTriangle reports whether p lies inside or on the positively wound triangle abc.
func inTriangle(p, a, b, c Vec) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}
