package pong

import (
	"strconv"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/render"
	"github.com/vovakirdan/arcade-engine/internal/sprite"
)

// Scoreboard shows one paddle's score with the digit sheet.
type Scoreboard struct {
	engine.Base
	host   *Paddle
	digits *sprite.Sprite
}

// Setup implements engine.Entity.
func (s *Scoreboard) Setup() {
	w, h, _ := s.World().Size()
	side := 1.0
	if s.host.onLeft {
		side = -1
	}
	s.SetPosition(side*w/4, 40-h/2)
	s.Mode = engine.None
	s.Update()
}

// Update implements engine.Entity.
func (s *Scoreboard) Update() {
	if s.digits == nil {
		return
	}
	s.Sprite = s.digits.Frame(min(max(s.host.score, 0), s.digits.Len()-1))
}

// Shape keeps the scoreboard out of collisions.
func (s *Scoreboard) Shape() geom.Shape {
	return geom.Rect{}
}

// Paint draws the digit, or the number as text if the sheet is missing.
func (s *Scoreboard) Paint(c *render.Canvas) {
	if s.digits == nil {
		c.DrawText(strconv.Itoa(s.host.score), 0, 0, render.Face(40), render.White, render.AlignCenter)
		return
	}
	s.Base.Paint(c)
}

// net draws the dashed center line.
type net struct {
	engine.Base
}

func (n *net) Shape() geom.Shape {
	return geom.Rect{}
}

func (n *net) Paint(c *render.Canvas) {
	_, h, _ := n.World().Size()
	for y := -h / 2; y < h/2; y += 30 {
		c.FillShape(geom.NewRect(-2, y+5, 4, 20), render.Gray)
	}
}
