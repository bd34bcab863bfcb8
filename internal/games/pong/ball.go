package pong

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Ball bounces off the top and bottom edges and the paddles. Leaving
// through a side edge scores for the other player and serves again.
type Ball struct {
	engine.Base
	game   *Game
	delay  int
	speed  float64
	vx, vy float64
}

// Setup implements engine.Entity.
func (b *Ball) Setup() {
	s := b.game.cfg.Ball.Size
	b.SetShape(geom.NewRect(-s/2, -s/2, s, s))
	b.Mode = engine.None
	b.Color = render.White
	b.reset()
}

// Update implements engine.Entity.
func (b *Ball) Update() {
	b.delay--
	if b.delay > 0 {
		return
	}
	b.X += b.vx
	b.Y += b.vy

	if edge, hit := engine.CollisionWith[*engine.Edge](b); hit {
		switch edge.Dir {
		case direction.North, direction.South:
			b.vy *= -1
		case direction.East:
			b.game.left.score++
			b.reset()
		default:
			b.game.right.score++
			b.reset()
		}
	}

	if paddle, hit := engine.CollisionWith[*Paddle](b); hit && paddle.onLeft == (b.vx < 0) {
		cfg := b.game.cfg.Ball
		b.vx *= -1
		b.speed += cfg.SpeedUp
		b.vy += (b.Y - paddle.Y) / cfg.Spin
		b.scaleSpeed()
	}
}

// scaleSpeed keeps the heading and sets the velocity magnitude to speed.
func (b *Ball) scaleSpeed() {
	theta := math.Atan2(b.vy, b.vx)
	b.vx = b.speed * math.Cos(theta)
	b.vy = b.speed * math.Sin(theta)
}

// reset serves from the center along a random diagonal after the serve
// delay.
func (b *Ball) reset() {
	b.delay = b.game.cfg.Gameplay.ServeDelay
	b.SetPosition(0, 0)
	b.Rotation = float64(45 + 90*b.game.rng.IntN(4))
	b.speed = b.game.difficulty.Speed(b.game.cfg.Ball.Speed, 0, b.game.ticks)
	b.vx = b.speed * math.Cos(b.Radians())
	b.vy = b.speed * math.Sin(b.Radians())
}

// Serving reports whether the ball is waiting to be served.
func (b *Ball) Serving() bool {
	return b.delay > 0
}

// Velocity returns the ball velocity per tick.
func (b *Ball) Velocity() geom.Vec {
	return geom.V(b.vx, b.vy)
}

// Paint blinks the ball while it waits to be served.
func (b *Ball) Paint(c *render.Canvas) {
	if b.Serving() && (b.delay/10)%2 == 1 {
		return
	}
	b.Base.Paint(c)
}
