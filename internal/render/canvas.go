// Package render draws shapes, images and text into an in-memory RGBA
// raster. A Canvas carries a current transform and clip rectangle, so
// callers draw in their own coordinates and presentation backends only copy
// pixels out.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// circleSegments is the number of edges used to approximate circles.
const circleSegments = 48

// Canvas is a raster drawing surface with a transform and clip stack.
type Canvas struct {
	img   *image.RGBA
	m     geom.Affine
	clip  image.Rectangle
	stack []state
	z     vector.Rasterizer
}

type state struct {
	m    geom.Affine
	clip image.Rectangle
}

// NewCanvas creates a w×h canvas with an identity transform.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the pixels when the size changes and resets the
// transform and clip.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if c.img == nil || c.img.Bounds().Dx() != w || c.img.Bounds().Dy() != h {
		c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	c.Reset()
}

// Reset restores the identity transform and full clip and empties the stack.
func (c *Canvas) Reset() {
	c.m = geom.Identity()
	c.clip = c.img.Bounds()
	c.stack = c.stack[:0]
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the backing pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Save pushes the current transform and clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, state{c.m, c.clip})
}

// Restore pops the transform and clip pushed by the matching Save.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.m, c.clip = top.m, top.clip
}

// Transform returns the current local-to-device transform.
func (c *Canvas) Transform() geom.Affine {
	return c.m
}

// SetTransform replaces the current transform.
func (c *Canvas) SetTransform(m geom.Affine) {
	c.m = m
}

// Concat appends m to the current transform: m is applied to local
// coordinates before the existing transform.
func (c *Canvas) Concat(m geom.Affine) {
	c.m = c.m.Mul(m)
}

// ToLocal maps a device pixel position to local coordinates. ok is false
// when the current transform cannot be inverted.
func (c *Canvas) ToLocal(p geom.Vec) (geom.Vec, bool) {
	inv, ok := c.m.Invert()
	if !ok {
		return geom.Vec{}, false
	}
	return inv.Apply(p), true
}

// Clip narrows the clip region to the device bounding box of s.
func (c *Canvas) Clip(s geom.Shape) {
	b := s.Transform(c.m).Bounds()
	r := image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.Right())), int(math.Ceil(b.Bottom())),
	)
	c.clip = c.clip.Intersect(r)
}

// ClipBounds returns the current clip rectangle in device pixels.
func (c *Canvas) ClipBounds() image.Rectangle {
	return c.clip
}

// Clear fills the whole canvas with col, ignoring transform and clip.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill paints the clip region with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.clip, image.NewUniform(col), image.Point{}, draw.Over)
}

// FillShape fills s with col.
func (c *Canvas) FillShape(s geom.Shape, col color.Color) {
	if s == nil {
		return
	}
	c.fillPaths([][]geom.Vec{c.outline(s)}, col)
}

// StrokeShape draws the outline of s with the given line width in local units.
func (c *Canvas) StrokeShape(s geom.Shape, col color.Color, width float64) {
	if s == nil || width <= 0 {
		return
	}
	pts := c.outline(s)
	// width is in local units
	hw := width / 2 * math.Sqrt(math.Abs(c.m.Det()))

	var paths [][]geom.Vec
	n := len(pts)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%n]
		nrm := b.Sub(a).Perp().Unit().Mul(hw)
		if nrm == (geom.Vec{}) {
			continue
		}
		// wound like Circle.Outline so overlapping pieces add up
		paths = append(paths, []geom.Vec{a.Sub(nrm), b.Sub(nrm), b.Add(nrm), a.Add(nrm)})
		paths = append(paths, geom.Circle{C: a, R: hw}.Outline(8).Points)
	}
	c.fillPaths(paths, col)
}

// DrawLine draws a segment between two local points.
func (c *Canvas) DrawLine(a, b geom.Vec, col color.Color, width float64) {
	da, db := c.m.Apply(a), c.m.Apply(b)
	hw := width / 2 * math.Sqrt(math.Abs(c.m.Det()))
	nrm := db.Sub(da).Perp().Unit().Mul(hw)
	if nrm == (geom.Vec{}) {
		return
	}
	c.fillPaths([][]geom.Vec{{da.Sub(nrm), db.Sub(nrm), db.Add(nrm), da.Add(nrm)}}, col)
}

// outline returns the device-space polygon of s.
func (c *Canvas) outline(s geom.Shape) []geom.Vec {
	if circ, ok := s.(geom.Circle); ok {
		s = circ.Outline(circleSegments)
	}
	if p, ok := geom.AsPolygon(s.Transform(c.m)); ok {
		return p.Points
	}
	return s.Transform(c.m).Bounds().Polygon().Points
}

// fillPaths rasterizes device-space polygons into the clip region with the
// non-zero winding rule.
func (c *Canvas) fillPaths(paths [][]geom.Vec, col color.Color) {
	r := c.clip
	if r.Empty() {
		return
	}
	c.z.Reset(r.Dx(), r.Dy())
	guard := geom.Rect{X: -1, Y: -1, W: float64(r.Dx() + 2), H: float64(r.Dy() + 2)}
	origin := geom.V(float64(r.Min.X), float64(r.Min.Y))

	drawn := false
	for _, path := range paths {
		local := make([]geom.Vec, len(path))
		for i, p := range path {
			local[i] = p.Sub(origin)
		}
		local = clipPolygon(local, guard)
		if len(local) < 3 {
			continue
		}
		c.z.MoveTo(float32(local[0].X), float32(local[0].Y))
		for _, p := range local[1:] {
			c.z.LineTo(float32(p.X), float32(p.Y))
		}
		c.z.ClosePath()
		drawn = true
	}
	if drawn {
		c.z.Draw(c.img, r, image.NewUniform(col), image.Point{})
	}
}

// DrawImage draws img with its top-left corner at local (x, y), one image
// pixel per local unit.
func (c *Canvas) DrawImage(img image.Image, x, y float64) {
	if img == nil || c.clip.Empty() {
		return
	}
	b := img.Bounds()
	s2d := c.m.Translate(x-float64(b.Min.X), y-float64(b.Min.Y))
	dst, ok := c.img.SubImage(c.clip).(*image.RGBA)
	if !ok {
		return
	}
	if _, ok := s2d.Invert(); !ok {
		return
	}
	draw.ApproxBiLinear.Transform(dst, s2d.Aff3(), img, b, draw.Over, nil)
}

// DrawImageCentered draws img centered on the local origin.
func (c *Canvas) DrawImageCentered(img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	c.DrawImage(img, -float64(b.Dx())/2, -float64(b.Dy())/2)
}

// clipPolygon clips a polygon against an axis-aligned rectangle
// (Sutherland-Hodgman). Concave input stays correct for filling.
func clipPolygon(pts []geom.Vec, r geom.Rect) []geom.Vec {
	type edge struct {
		inside func(geom.Vec) bool
		cross  func(a, b geom.Vec) geom.Vec
	}
	atX := func(x float64) func(a, b geom.Vec) geom.Vec {
		return func(a, b geom.Vec) geom.Vec {
			t := (x - a.X) / (b.X - a.X)
			return geom.V(x, a.Y+t*(b.Y-a.Y))
		}
	}
	atY := func(y float64) func(a, b geom.Vec) geom.Vec {
		return func(a, b geom.Vec) geom.Vec {
			t := (y - a.Y) / (b.Y - a.Y)
			return geom.V(a.X+t*(b.X-a.X), y)
		}
	}
	edges := []edge{
		{func(p geom.Vec) bool { return p.X >= r.X }, atX(r.X)},
		{func(p geom.Vec) bool { return p.X <= r.Right() }, atX(r.Right())},
		{func(p geom.Vec) bool { return p.Y >= r.Y }, atY(r.Y)},
		{func(p geom.Vec) bool { return p.Y <= r.Bottom() }, atY(r.Bottom())},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]geom.Vec, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
