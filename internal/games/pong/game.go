// Package pong is two-paddle Pong for one or two players, first to ten.
package pong

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/render"
	"github.com/vovakirdan/arcade-engine/internal/sprite"
)

func init() {
	registry.Register(registry.GameInfo{
		ID:          "pong",
		Title:       "Pong",
		Description: "Two paddles, one ball, first to ten",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadPong(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Difficulty.Apply(opts.Difficulty)
		return New(cfg, opts.Seed, opts.Logger), nil
	})
}

// Game is the Pong client.
type Game struct {
	cfg        config.PongConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger
	images     *sprite.Store

	world       *engine.World
	left, right *Paddle
	ball        *Ball

	ticks   int
	winner  *Paddle
	matches [2]int // matches won by left and right
}

// New creates a Pong game. A zero seed picks a time-based one.
func New(cfg config.PongConfig, seed int64, logger *log.Logger) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("pong")
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)),
		logger:     logger,
		images:     newStore(logger),
	}
}

// ID implements registry.Game.
func (p *Game) ID() string { return "pong" }

// Title implements registry.Game.
func (p *Game) Title() string { return "Pong" }

// Setup implements engine.Client.
func (p *Game) Setup(g *engine.Game) {
	ctrl := g.Controller()
	ctrl.ClearBindings()
	ctrl.BindAll("L_UP", "w")
	ctrl.BindAll("L_DOWN", "s")
	if !p.cfg.CPU.Enabled {
		ctrl.BindAll("R_UP", input.KeyUp)
		ctrl.BindAll("R_DOWN", input.KeyDown)
	} else {
		ctrl.BindAll("L_UP", input.KeyUp)
		ctrl.BindAll("L_DOWN", input.KeyDown)
	}
	ctrl.BindAll("RESTART", input.KeySpace)

	w := g.World()
	p.world = w
	w.SetSize(p.cfg.World.Width, p.cfg.World.Height)
	w.FillColor = render.Black
	w.Background = render.DarkGray
	if zoom, err := engine.ParseZoomMode(p.cfg.World.Zoom); err == nil {
		w.Zoom = zoom
	} else {
		p.logger.Warn("bad zoom mode, using letterbox", "error", err)
		w.Zoom = engine.Letterbox
	}

	digits := p.images.Sheet("digits", 2, 5)
	p.left = &Paddle{game: p, onLeft: true}
	p.right = &Paddle{game: p, cpu: p.cfg.CPU.Enabled}
	p.ball = &Ball{game: p}

	w.Add(&net{}, 0, 0)
	w.Add(p.left, 0, 0)
	w.Add(p.right, 0, 0)
	w.Add(&Scoreboard{host: p.left, digits: digits}, 0, 0)
	w.Add(&Scoreboard{host: p.right, digits: digits}, 0, 0)
	w.Add(p.ball, 0, 0)
}

// Update implements engine.Client.
func (p *Game) Update(g *engine.Game) {
	win := p.cfg.Gameplay.WinScore
	if p.left.score >= win || p.right.score >= win {
		p.finish()
	}
	if !p.world.Running() && g.Controller().ControlPressed("RESTART") {
		p.world.BackgroundSprite = nil
		p.winner = nil
		p.world.Play()
	}
	if p.world.Running() {
		p.ticks++
	}
}

func (p *Game) finish() {
	name := "right"
	p.winner = p.right
	if p.left.score > p.right.score {
		name = "left"
		p.winner = p.left
		p.matches[0]++
	} else {
		p.matches[1]++
	}
	p.logger.Info("match over", "winner", name, "left", p.left.score, "right", p.right.score)

	p.world.BackgroundSprite = p.images.Sprite("win_" + name)
	p.world.Pause(true)
	p.left.score, p.right.score = 0, 0
}

// Score implements registry.Scorer: matches won by the left player.
func (p *Game) Score() int { return p.matches[0] }

// Over implements registry.Scorer. A finished match waits for a restart.
func (p *Game) Over() bool { return p.winner != nil }

// HUD implements registry.HUDer.
func (p *Game) HUD() string {
	if p.left == nil {
		return ""
	}
	s := fmt.Sprintf("%d : %d   matches %d-%d", p.left.score, p.right.score, p.matches[0], p.matches[1])
	if p.winner != nil {
		side := "Right"
		if p.winner.onLeft {
			side = "Left"
		}
		s += fmt.Sprintf("   %s wins! space to play again", side)
	}
	return s
}

// Ball returns the ball.
func (p *Game) Ball() *Ball { return p.ball }

// Paddles returns the left and right paddles.
func (p *Game) Paddles() (left, right *Paddle) { return p.left, p.right }
