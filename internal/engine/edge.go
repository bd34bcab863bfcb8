package engine

import (
	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// edgeSize is the side of the square behind each boundary. It only has to
// be larger than anything that moves in the world.
const edgeSize = 0x0fffffff

// Edge is an invisible wall just outside one side of a sized world. Anything
// that crosses the boundary overlaps the matching Edge.
type Edge struct {
	Base
	Dir direction.Direction
}

func newEdge(w *World, dir direction.Direction, width, height float64) *Edge {
	const l = edgeSize
	var r geom.Rect
	switch dir {
	case direction.North:
		r = geom.NewRect(-l/2, -(height/2 + l), l, l)
	case direction.South:
		r = geom.NewRect(-l/2, height/2, l, l)
	case direction.West:
		r = geom.NewRect(-(width/2 + l), -l/2, l, l)
	case direction.East:
		r = geom.NewRect(width/2, -l/2, l, l)
	}
	e := &Edge{Dir: dir}
	e.Mode = None
	e.SetShape(r)
	e.world = w
	e.self = e
	e.live = true
	return e
}

// Paint does nothing; edges are never drawn.
func (e *Edge) Paint(*render.Canvas) {}
