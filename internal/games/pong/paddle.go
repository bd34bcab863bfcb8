package pong

import (
	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// Paddle is one player's bat. The left paddle reads L_UP/L_DOWN and the
// right one R_UP/R_DOWN unless the CPU drives it.
type Paddle struct {
	engine.Base
	game   *Game
	onLeft bool
	cpu    bool
	score  int
}

func (p *Paddle) prefix() string {
	if p.onLeft {
		return "L_"
	}
	return "R_"
}

// Setup implements engine.Entity.
func (p *Paddle) Setup() {
	cfg := p.game.cfg.Paddles
	w, _, _ := p.World().Size()
	side := 1.0
	if p.onLeft {
		side = -1
	}
	p.SetPosition(side*(w/2-cfg.Offset), 0)
	p.SetShape(geom.Centered(cfg.Width, cfg.Height))
	p.Color = render.White
}

// Update implements engine.Entity.
func (p *Paddle) Update() {
	if p.cpu {
		p.Y += p.cpuStep()
	} else {
		ctrl := p.World().Controller()
		speed := p.game.cfg.Paddles.Speed
		if ctrl.ControlDown(p.prefix() + "UP") {
			p.Y -= speed
		}
		if ctrl.ControlDown(p.prefix() + "DOWN") {
			p.Y += speed
		}
	}

	if edge, hit := engine.CollisionWith[*engine.Edge](p); hit {
		move := -1.0
		if edge.Dir == direction.North {
			move = 1
		}
		_, h, _ := p.World().Size()
		for i := 0; i < int(h) && p.CollidesWith(edge); i++ {
			p.Y += move
		}
	}
}

// cpuStep follows the ball while it is coming toward the paddle, at a
// speed that grows with the difficulty level.
func (p *Paddle) cpuStep() float64 {
	b := p.game.ball
	if b == nil || (b.vx > 0) == p.onLeft {
		return 0
	}
	speed := p.game.difficulty.Speed(p.game.cfg.CPU.Speed, 0, p.game.ticks)
	diff := b.Y - p.Y
	switch {
	case diff > speed:
		return speed
	case diff < -speed:
		return -speed
	}
	return 0
}

// Score returns the points this paddle has won.
func (p *Paddle) Score() int { return p.score }
