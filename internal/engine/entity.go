// Package engine runs a world of entities on a fixed tick: it owns the
// entity lifecycle, the camera and zoom transform pipeline, the boundary
// edges, and the game loop that ties input, update and paint together.
package engine

import (
	"image/color"
	"math"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/render"
	"github.com/vovakirdan/arcade-engine/internal/sprite"
)

// RotationMode controls how an entity's rotation affects its transform.
type RotationMode int

const (
	// Rotate turns the entity by its rotation.
	Rotate RotationMode = iota
	// Flip mirrors the entity horizontally when it faces left (|rotation| > 90).
	Flip
	// None ignores rotation.
	None
)

func (m RotationMode) String() string {
	switch m {
	case Rotate:
		return "ROTATE"
	case Flip:
		return "FLIP"
	case None:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// defaultShape is used by entities with neither a shape nor a sprite.
var defaultShape geom.Shape = geom.NewCircle(20)

const defaultLineWidth = 2

// Entity is a simulation object living in a World. Concrete entities embed
// Base, which provides everything except their behavior:
//
//	type Ball struct {
//		engine.Base
//		speed float64
//	}
//
//	func (b *Ball) Update() { b.X += b.speed }
type Entity interface {
	// Setup runs once when the entity is added to a world, after its
	// position is set and before its first update.
	Setup()
	// Update runs once per tick while the entity is live.
	Update()
	// Paint draws the entity in its local coordinates.
	Paint(c *render.Canvas)
	// Shape returns the hit shape in local coordinates, centered on the origin.
	Shape() geom.Shape

	base() *Base
}

// Base holds the state shared by all entities. The zero value is ready to
// use: a magenta filled circle of diameter 20 that rotates with Rotation.
type Base struct {
	X, Y     float64
	Rotation float64 // degrees, any range
	Mode     RotationMode

	// Sprite, when set, is drawn instead of the shape and provides the
	// hit shape unless one is set explicitly.
	Sprite sprite.Source

	Color     color.Color // nil means magenta
	Hollow    bool        // stroke the shape instead of filling it
	LineWidth float64     // 0 means 2

	shape geom.Shape
	world *World
	self  Entity
	live  bool
}

func (b *Base) base() *Base { return b }

// Setup does nothing. Entities override it to initialize themselves.
func (b *Base) Setup() {}

// Update does nothing. Entities override it to act every tick.
func (b *Base) Update() {}

// World returns the world the entity was added to, or nil.
func (b *Base) World() *World {
	return b.world
}

// Alive reports whether the entity is currently in its world's live set.
func (b *Base) Alive() bool {
	return b.live
}

// Remove queues the entity for removal from its world.
func (b *Base) Remove() {
	if b.world != nil && b.self != nil {
		b.world.Remove(b.self)
	}
}

// Position returns the entity position.
func (b *Base) Position() geom.Vec {
	return geom.Vec{X: b.X, Y: b.Y}
}

// SetPosition moves the entity to (x, y).
func (b *Base) SetPosition(x, y float64) {
	b.X, b.Y = x, y
}

// Radians returns the rotation normalized into (-Pi, Pi]. The stored
// rotation is normalized as a side effect.
func (b *Base) Radians() float64 {
	b.Rotation = direction.NormalizeDegrees(b.Rotation)
	return direction.ToRadians(b.Rotation)
}

// SetShape sets an explicit hit shape, centered on the origin. Nil restores
// the sprite or default shape.
func (b *Base) SetShape(s geom.Shape) {
	b.shape = s
}

// Shape returns the explicit shape if set, else the sprite's shape, else a
// circle of diameter 20.
func (b *Base) Shape() geom.Shape {
	if b.shape != nil {
		return b.shape
	}
	if b.Sprite != nil {
		if s := b.Sprite.Shape(); s != nil {
			return s
		}
	}
	return defaultShape
}

// shapeOf resolves the shape through the concrete entity, which may
// override Shape.
func (b *Base) shapeOf() geom.Shape {
	if b.self != nil {
		return b.self.Shape()
	}
	return b.Shape()
}

// Transform returns the local-to-world transform: a translation to the
// position, then a rotation, mirror or nothing depending on Mode. Painting
// and collision both use it.
func (b *Base) Transform() geom.Affine {
	m := geom.Translation(b.X, b.Y)
	switch b.Mode {
	case Rotate:
		return m.Rotate(b.Radians())
	case Flip:
		if math.Abs(direction.NormalizeDegrees(b.Rotation)) > 90 {
			return m.Scale(-1, 1)
		}
	}
	return m
}

// CollisionShape returns the hit shape in world coordinates.
func (b *Base) CollisionShape() geom.Shape {
	return b.shapeOf().Transform(b.Transform())
}

// CollidesWith reports whether the hit shapes of b and other overlap in
// world space. An entity never collides with itself.
func (b *Base) CollidesWith(other Entity) bool {
	if other == nil {
		return false
	}
	ob := other.base()
	if ob == b {
		return false
	}
	return geom.Intersects(b.CollisionShape(), ob.CollisionShape())
}

// DirectionTo returns the angle in degrees from b to other.
func (b *Base) DirectionTo(other Entity) float64 {
	return b.DirectionToPoint(other.base().Position())
}

// DirectionToPoint returns the angle in degrees from b to p.
func (b *Base) DirectionToPoint(p geom.Vec) float64 {
	return p.Sub(b.Position()).Angle()
}

// DistanceTo returns the distance between the positions of b and other.
func (b *Base) DistanceTo(other Entity) float64 {
	return b.DistanceToPoint(other.base().Position())
}

// DistanceToPoint returns the distance from b to p.
func (b *Base) DistanceToPoint(p geom.Vec) float64 {
	return b.Position().Dist(p)
}

// Frame returns the sprite frame to draw now, or nil without a sprite.
func (b *Base) Frame() *sprite.Sprite {
	if b.Sprite == nil {
		return nil
	}
	return b.Sprite.Current(b.now())
}

func (b *Base) now() time.Time {
	if b.world != nil {
		return b.world.Now()
	}
	return time.Now()
}

// PaintColor returns the color used for the shape.
func (b *Base) PaintColor() color.Color {
	if b.Color == nil {
		return render.Magenta
	}
	return b.Color
}

// Paint draws the current sprite frame centered on the origin, or fills or
// strokes the shape when there is no sprite.
func (b *Base) Paint(c *render.Canvas) {
	if f := b.Frame(); f != nil && f.Image() != nil {
		c.DrawImageCentered(f.Image())
		return
	}
	if b.Hollow {
		w := b.LineWidth
		if w == 0 {
			w = defaultLineWidth
		}
		c.StrokeShape(b.shapeOf(), b.PaintColor(), w)
		return
	}
	c.FillShape(b.shapeOf(), b.PaintColor())
}

// CollisionWith returns the first live entity of type T that e collides with.
// Querying *Edge checks the world's boundary edges.
func CollisionWith[T Entity](e Entity) (T, bool) {
	for _, t := range AllOfType[T](e.base().world) {
		if e.base().CollidesWith(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// CollisionsWith returns every live entity of type T that e collides with.
func CollisionsWith[T Entity](e Entity) []T {
	var out []T
	for _, t := range AllOfType[T](e.base().world) {
		if e.base().CollidesWith(t) {
			out = append(out, t)
		}
	}
	return out
}
