package numbers

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

var (
	backgroundColor = color.RGBA{0x00, 0x5b, 0x10, 0xff}
	boardColor      = color.RGBA{0xb9, 0xad, 0xa1, 0xff}
	slotColor       = color.RGBA{0xca, 0xc1, 0xb5, 0xff}
	overlayColor    = color.NRGBA{0xfa, 0xf8, 0xef, 0x80}
)

func init() {
	registry.Register(registry.GameInfo{
		ID:          "numbers",
		Title:       "2048",
		Description: "Slide tiles, merge equal numbers, reach 2048",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadNumbers(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(cfg, opts.Seed, opts.Logger), nil
	})
}

// Game is the 2048 client. The Board holds the rules; Tiles only animate
// what the board decided.
type Game struct {
	cfg    config.NumbersConfig
	layout layout
	rng    *rand.Rand
	logger *log.Logger

	world *engine.World
	board *Board
	tiles map[Cell]*Tile

	score        int
	over, won    bool
	spawnPending bool
}

// New creates a 2048 game. A zero seed picks a time-based one.
func New(cfg config.NumbersConfig, seed int64, logger *log.Logger) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		cfg:    cfg,
		layout: layout{n: cfg.Grid.Size, tile: cfg.Tile.Size, gap: cfg.Tile.Gap},
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32)),
		logger: logger.WithPrefix("numbers"),
	}
}

// ID implements registry.Game.
func (n *Game) ID() string { return "numbers" }

// Title implements registry.Game.
func (n *Game) Title() string { return "2048" }

// Setup implements engine.Client.
func (n *Game) Setup(g *engine.Game) {
	n.world = g.World()
	side := n.layout.side()
	n.world.SetSize(side, side)
	n.world.Zoom = engine.Letterbox
	n.world.Background = backgroundColor
	n.world.FillColor = boardColor
	n.world.Add(&slots{layout: n.layout}, 0, 0)

	g.Controller().BindAll("RESTART", input.KeySpace, "r")
	n.reset()
}

func (n *Game) reset() {
	for _, t := range n.tiles {
		t.Remove()
	}
	n.tiles = make(map[Cell]*Tile)
	n.board = NewBoard(n.cfg.Grid.Size)
	n.score = 0
	n.over, n.won = false, false
	n.spawnPending = false
	n.spawn()
	n.spawn()
}

func (n *Game) spawn() {
	c, rank, ok := n.board.Spawn(n.rng, n.cfg.FourChance)
	if !ok {
		return
	}
	n.addTile(c, rank)
}

func (n *Game) addTile(c Cell, rank int) {
	t := newTile(rank, n.cfg.Tile.Size, n.cfg.Tile.Speed)
	p := n.layout.center(c)
	n.world.Add(t, p.X, p.Y)
	n.tiles[c] = t
}

// Update implements engine.Client.
func (n *Game) Update(g *engine.Game) {
	ctrl := g.Controller()
	if n.over {
		if ctrl.ControlPressed("RESTART") {
			n.logger.Info("restart", "score", n.score)
			n.reset()
		}
		return
	}

	for _, t := range engine.AllOfType[*Tile](n.world) {
		if !t.Settled() {
			return
		}
	}

	if n.spawnPending {
		n.spawnPending = false
		n.spawn()
		if !n.board.CanMove() {
			n.over = true
			n.logger.Info("game over", "score", n.score, "best", 1<<n.board.MaxRank())
		}
		return
	}

	d, ok := pressedDirection(ctrl)
	if !ok {
		return
	}
	moves, points, moved := n.board.Slide(d)
	if !moved {
		return
	}
	n.score += points
	n.apply(moves)
	n.spawnPending = true

	if !n.won && n.board.MaxRank() >= n.cfg.TargetRank {
		n.won = true
		n.logger.Info("target reached", "tile", 1<<n.board.MaxRank(), "score", n.score)
	}
}

func pressedDirection(ctrl *input.Controller) (direction.Direction, bool) {
	switch {
	case ctrl.ControlPressed("UP"):
		return direction.North, true
	case ctrl.ControlPressed("DOWN"):
		return direction.South, true
	case ctrl.ControlPressed("LEFT"):
		return direction.West, true
	case ctrl.ControlPressed("RIGHT"):
		return direction.East, true
	}
	return 0, false
}

// apply sends each moved tile to its new cell. A merged tile glides onto
// the survivor and disappears; the survivor takes the new rank.
func (n *Game) apply(moves []Move) {
	from := make(map[Cell]bool, len(moves))
	for _, m := range moves {
		from[m.From] = true
	}
	next := make(map[Cell]*Tile, len(n.tiles))
	for c, t := range n.tiles {
		if !from[c] {
			next[c] = t
		}
	}

	for _, m := range moves {
		t := n.tiles[m.From]
		t.glideTo(n.layout.center(m.To))
		if !m.Merged {
			next[m.To] = t
			continue
		}
		t.dying = true
		if survivor := next[m.To]; survivor != nil {
			survivor.rank = n.board.At(m.To)
		}
	}
	n.tiles = next
}

// Score implements registry.Scorer.
func (n *Game) Score() int { return n.score }

// Over implements registry.Scorer.
func (n *Game) Over() bool { return n.over }

// Board returns the current board.
func (n *Game) Board() *Board { return n.board }

// HUD implements registry.HUDer.
func (n *Game) HUD() string {
	s := fmt.Sprintf("Score %d  Best %d", n.score, 1<<n.board.MaxRank())
	switch {
	case n.over:
		s += "  GAME OVER - space to restart"
	case n.won:
		s += "  You made it!"
	}
	return s
}

// PaintOverlay implements engine.OverlayPainter.
func (n *Game) PaintOverlay(g *engine.Game, c *render.Canvas) {
	if !n.over {
		return
	}
	c.Fill(overlayColor)

	w, h := float64(c.Width()), float64(c.Height())
	big := render.Face(max(h/10, 8))
	small := render.Face(max(h/30, 6))
	ink := color.RGBA{0, 0, 0, 0xff}
	c.DrawText("Game Over!", w/2, h/2-h/8, big, ink, render.AlignCenter)
	c.DrawText(fmt.Sprintf("Score: %d", n.score), w/2, h/2, big, ink, render.AlignCenter)
	c.DrawText("Press SPACE to restart", w/2, h/2+h/8, small, ink, render.AlignCenter)
}
