package asteroids

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/render"
	"github.com/vovakirdan/arcade-engine/internal/sprite"
)

// rockPoints is the number of vertices of a rock outline.
const rockPoints = 12

// Rock drifts and spins, wrapping around the field. A shot rock splits in
// two until it gets smaller than the configured minimum.
type Rock struct {
	engine.Base
	game   *Game
	radius float64
	vx, vy float64
	spin   float64
	dead   bool
}

func newRock(g *Game, radius, heading, speed float64) *Rock {
	r := &Rock{
		game:   g,
		radius: radius,
		vx:     speed * math.Cos(heading),
		vy:     speed * math.Sin(heading),
		spin:   g.rng.Float64()*4 - 2,
	}
	r.SetShape(r.outline())
	return r
}

// outline builds a jagged, usually concave polygon around the origin.
// Every third vertex is pulled in to make a dent.
func (r *Rock) outline() geom.Polygon {
	coords := make([]float64, 0, 2*rockPoints)
	for i := range rockPoints {
		a := 2 * math.Pi * float64(i) / rockPoints
		d := r.radius * (0.8 + 0.2*r.game.rng.Float64())
		if i%3 == 1 {
			d = r.radius * (0.45 + 0.15*r.game.rng.Float64())
		}
		coords = append(coords, d*math.Cos(a), d*math.Sin(a))
	}
	return geom.NewPolygon(coords...)
}

// Setup implements engine.Entity.
func (r *Rock) Setup() {
	r.Hollow = true
	r.LineWidth = 2
	r.Color = render.Gray
}

// Update implements engine.Entity.
func (r *Rock) Update() {
	r.Rotation += r.spin
	r.X += r.vx
	r.Y += r.vy

	w, h, ok := r.World().Size()
	if !ok {
		return
	}
	r.X = wrap(r.X, w/2+r.radius)
	r.Y = wrap(r.Y, h/2+r.radius)
}

// wrap moves v to the opposite side once it is past ±limit.
func wrap(v, limit float64) float64 {
	switch {
	case v > limit:
		return v - 2*limit
	case v < -limit:
		return v + 2*limit
	}
	return v
}

// Radius returns the size of the rock.
func (r *Rock) Radius() float64 { return r.radius }

// shatter removes the rock, scores it and splits it when it is big enough.
// Only the first hit in a tick counts.
func (r *Rock) shatter() {
	if r.dead {
		return
	}
	r.dead = true
	r.Remove()
	r.game.rockDestroyed(r)
}

// explosion plays the explosion sheet once and removes itself.
type explosion struct {
	engine.Base
	ticks int
}

func newExplosion(sheet *sprite.Sprite, fps float64, tickRate float64) *explosion {
	anim := sprite.NewAnimation(sheet, fps)
	e := &explosion{ticks: int(math.Ceil(float64(anim.Len()) * tickRate / fps))}
	e.Sprite = anim
	e.Mode = engine.None
	return e
}

// Shape keeps explosions out of collisions.
func (e *explosion) Shape() geom.Shape {
	return geom.Rect{}
}

// Update implements engine.Entity.
func (e *explosion) Update() {
	e.ticks--
	if e.ticks <= 0 {
		e.Remove()
	}
}
