package asteroids

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// shieldTicks is how long a fresh ship ignores rocks.
const shieldTicks = 100

// Ship turns with LEFT/RIGHT or toward the mouse while the left button is
// held, thrusts with UP and fires with SPACE. It bounces off the edges of
// the field.
type Ship struct {
	engine.Base
	game   *Game
	vx, vy float64
	shield int
}

// Setup implements engine.Entity.
func (s *Ship) Setup() {
	s.Sprite = s.game.images.shipOff
	s.Color = render.White
	s.Rotation = -90
	s.shield = shieldTicks
}

// Update implements engine.Entity.
func (s *Ship) Update() {
	cfg := s.game.cfg.Ship
	ctrl := s.World().Controller()

	if ctrl.ControlDown("LEFT") {
		s.Rotation -= cfg.TurnRate
	}
	if ctrl.ControlDown("RIGHT") {
		s.Rotation += cfg.TurnRate
	}
	if ctrl.ButtonDown(input.ButtonLeft) {
		s.Rotation = s.DirectionToPoint(s.World().Mouse())
	}

	s.Sprite = s.game.images.shipOff
	if ctrl.ControlDown("UP") {
		a := s.Radians()
		s.vx += cfg.Thrust * math.Cos(a)
		s.vy += cfg.Thrust * math.Sin(a)
		s.Sprite = s.game.images.shipOn
	}
	s.vx *= cfg.Drag
	s.vy *= cfg.Drag
	s.X += s.vx
	s.Y += s.vy

	for _, edge := range engine.CollisionsWith[*engine.Edge](s) {
		s.bounce(edge)
	}

	if ctrl.ControlPressed("SPACE") {
		s.fire()
	}

	if s.shield > 0 {
		s.shield--
		return
	}
	if rock, hit := engine.CollisionWith[*Rock](s); hit && !rock.dead {
		s.game.shipDestroyed(s)
	}
}

// bounce steps back inside the field and reverses the velocity component
// that crossed the edge. Turning against an edge can leave the hull
// overlapping it, so the ship is then nudged inward until it is clear.
func (s *Ship) bounce(edge *engine.Edge) {
	b := s.game.cfg.Ship.Bounce
	var in geom.Vec
	switch edge.Dir {
	case direction.North, direction.South:
		s.Y -= s.vy
		s.vy *= b
		in = geom.V(0, 1)
	default:
		s.X -= s.vx
		s.vx *= b
		in = geom.V(1, 0)
	}
	if edge.Dir == direction.South || edge.Dir == direction.East {
		in = in.Mul(-1)
	}
	for i := 0; i < 64 && s.CollidesWith(edge); i++ {
		s.X += in.X
		s.Y += in.Y
	}
}

func (s *Ship) fire() {
	a := s.Radians()
	cos, sin := math.Cos(a), math.Sin(a)
	speed := s.game.cfg.Bullets.Speed
	b := &Bullet{
		vx:   s.vx + speed*cos,
		vy:   s.vy + speed*sin,
		life: s.game.cfg.Bullets.Lifespan,
		size: s.game.cfg.Bullets.Size,
	}
	s.World().Add(b, s.X+30*cos, s.Y+30*sin)
}

// Velocity returns the ship velocity per tick.
func (s *Ship) Velocity() (vx, vy float64) { return s.vx, s.vy }

// Shielded reports whether rocks pass through the ship.
func (s *Ship) Shielded() bool { return s.shield > 0 }

// Paint blinks the ship while it is shielded.
func (s *Ship) Paint(c *render.Canvas) {
	if s.shield > 0 && (s.shield/5)%2 == 1 {
		return
	}
	s.Base.Paint(c)
}

// Bullet flies straight until its lifespan runs out, it leaves the field or
// it hits a rock.
type Bullet struct {
	engine.Base
	vx, vy float64
	life   int
	size   float64
}

// Setup implements engine.Entity.
func (b *Bullet) Setup() {
	b.SetShape(geom.Circle{R: b.size / 2})
	b.Mode = engine.None
	b.Hollow = true
	b.LineWidth = 2
	b.Color = render.White
}

// Update implements engine.Entity.
func (b *Bullet) Update() {
	b.life--
	if b.life <= 0 {
		b.Remove()
		return
	}
	b.X += b.vx
	b.Y += b.vy
	if _, out := engine.CollisionWith[*engine.Edge](b); out {
		b.Remove()
		return
	}
	for _, rock := range engine.CollisionsWith[*Rock](b) {
		if rock.dead {
			continue
		}
		rock.shatter()
		b.Remove()
		return
	}
}
