package numbers

import (
	"image/color"
	"strconv"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// tileColors are indexed by rank-1; higher ranks use the last color.
var tileColors = []color.RGBA{
	{0xee, 0xe4, 0xda, 0xff}, // 2
	{0xed, 0xe0, 0xc8, 0xff}, // 4
	{0xf2, 0xb1, 0x79, 0xff}, // 8
	{0xf5, 0x95, 0x63, 0xff}, // 16
	{0xf6, 0x7c, 0x5f, 0xff}, // 32
	{0xf6, 0x5e, 0x3b, 0xff}, // 64
	{0xed, 0xcf, 0x72, 0xff}, // 128
	{0xed, 0xcc, 0x61, 0xff}, // 256
	{0xed, 0xc8, 0x50, 0xff}, // 512
	{0xed, 0xc5, 0x3f, 0xff}, // 1024
	{0xed, 0xc2, 0x2e, 0xff}, // 2048
	{0x3c, 0x3a, 0x32, 0xff}, // 4096+
}

var (
	darkText  = color.RGBA{0x77, 0x6e, 0x65, 0xff}
	lightText = color.RGBA{0xf9, 0xf6, 0xf2, 0xff}
)

func tileColor(rank int) color.RGBA {
	return tileColors[min(max(rank, 1), len(tileColors))-1]
}

// Tile is the on-screen piece for one board cell. It glides toward its
// target and, once a merge has absorbed it, removes itself on arrival.
type Tile struct {
	engine.Base
	rank   int
	size   float64
	speed  float64
	target geom.Vec
	dying  bool
}

func newTile(rank int, size, speed float64) *Tile {
	return &Tile{rank: rank, size: size, speed: speed}
}

// Setup implements engine.Entity.
func (t *Tile) Setup() {
	t.Mode = engine.None
	t.SetShape(geom.Centered(t.size, t.size))
	t.target = t.Position()
}

// Update implements engine.Entity.
func (t *Tile) Update() {
	d := t.target.Sub(t.Position())
	if dist := d.Len(); dist <= t.speed {
		t.SetPosition(t.target.X, t.target.Y)
	} else {
		step := d.Mul(t.speed / dist)
		t.X += step.X
		t.Y += step.Y
	}
	if t.dying && t.Settled() {
		t.Remove()
	}
}

// Rank returns the tile rank.
func (t *Tile) Rank() int { return t.rank }

// Settled reports whether the tile has reached its target.
func (t *Tile) Settled() bool {
	return t.Position() == t.target
}

func (t *Tile) glideTo(p geom.Vec) {
	t.target = p
}

// Paint implements engine.Entity.
func (t *Tile) Paint(c *render.Canvas) {
	c.FillShape(t.Shape(), tileColor(t.rank))

	label := strconv.Itoa(1 << t.rank)
	size := t.size * 0.45
	if len(label) > 2 {
		size = t.size * 0.9 / float64(len(label))
	}
	ink := lightText
	if t.rank <= 2 {
		ink = darkText
	}
	c.DrawText(label, 0, 0, render.Face(size), ink, render.AlignCenter)
}

// slots paints the empty board cells under the tiles.
type slots struct {
	engine.Base
	layout layout
}

// Paint implements engine.Entity.
func (s *slots) Paint(c *render.Canvas) {
	n := s.layout.n
	for y := range n {
		for x := range n {
			p := s.layout.center(Cell{x, y})
			r := geom.NewRect(p.X-s.layout.tile/2, p.Y-s.layout.tile/2, s.layout.tile, s.layout.tile)
			c.FillShape(r, slotColor)
		}
	}
}

// Shape keeps the slots out of collision queries.
func (s *slots) Shape() geom.Shape {
	return geom.Rect{}
}

// layout maps board cells to world coordinates with the board centered on
// the origin.
type layout struct {
	n         int
	tile, gap float64
}

func (l layout) side() float64 {
	return float64(l.n)*l.tile + float64(l.n+1)*l.gap
}

func (l layout) center(c Cell) geom.Vec {
	origin := -l.side()/2 + l.gap + l.tile/2
	pitch := l.tile + l.gap
	return geom.V(origin+float64(c.X)*pitch, origin+float64(c.Y)*pitch)
}
