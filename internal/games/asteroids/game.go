// Package asteroids is a ship in a field of rocks: shoot them all before
// they take your last life.
package asteroids

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

const (
	explosionFPS = 12
	shakeOffset  = 12
	shakeSpeed   = 2
)

var overlayColor = color.NRGBA{0, 0, 0, 0xa0}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "asteroids",
		Title:       "Asteroids",
		Description: "Fly, shoot and split the rocks",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadAsteroids(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Difficulty.Apply(opts.Difficulty)
		return New(cfg, opts.Seed, opts.Logger), nil
	})
}

// Game is the Asteroids client.
type Game struct {
	cfg        config.AsteroidsConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger
	images     *images

	world    *engine.World
	tickRate float64
	ship     *Ship

	score   int
	lives   int
	wave    int
	rocks   int // rocks alive or queued
	respawn int // ticks until the next ship, 0 when none is due
	ticks   int
	over    bool
}

// New creates an Asteroids game. A zero seed picks a time-based one.
func New(cfg config.AsteroidsConfig, seed int64, logger *log.Logger) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("asteroids")
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewPCG(uint64(seed), 0x2545f4914f6cdd1d)),
		logger:     logger,
		images:     loadImages(logger),
	}
}

// ID implements registry.Game.
func (a *Game) ID() string { return "asteroids" }

// Title implements registry.Game.
func (a *Game) Title() string { return "Asteroids" }

// Setup implements engine.Client.
func (a *Game) Setup(g *engine.Game) {
	a.tickRate = g.Framerate()
	if a.tickRate <= 0 {
		a.tickRate = engine.DefaultFramerate
	}
	g.Controller().BindAll("RESTART", "r", input.KeyEnter)

	w := g.World()
	a.world = w
	w.SetSize(a.cfg.World.Width, a.cfg.World.Height)
	w.Background = render.Black
	w.FillColor = render.Black
	w.BackgroundSprite = a.images.stars
	if zoom, err := engine.ParseZoomMode(a.cfg.World.Zoom); err == nil {
		w.Zoom = zoom
	} else {
		a.logger.Warn("bad zoom mode, using letterbox", "error", err)
		w.Zoom = engine.Letterbox
	}
	a.reset()
}

func (a *Game) reset() {
	a.world.Clear()
	a.world.Camera.MoveTo(0, 0)
	a.score, a.wave, a.rocks, a.respawn, a.ticks = 0, 0, 0, 0, 0
	a.lives = a.cfg.Gameplay.Lives
	a.over = false
	a.spawnShip()
	a.nextWave()
}

func (a *Game) spawnShip() {
	a.ship = &Ship{game: a}
	a.world.Add(a.ship, 0, 0)
}

// nextWave places one more rock than the last wave on a ring around the
// center, heading in random directions.
func (a *Game) nextWave() {
	a.wave++
	w, h, _ := a.world.Size()
	ring := min(w, h) * 0.4
	n := a.cfg.Rocks.Count + a.wave - 1
	for range n {
		at := a.rng.Float64() * 2 * math.Pi
		a.addRock(a.cfg.Rocks.Size, ring*math.Cos(at), ring*math.Sin(at))
	}
	a.logger.Debug("wave started", "wave", a.wave, "rocks", n)
}

func (a *Game) addRock(radius, x, y float64) {
	speed := a.difficulty.Speed(a.cfg.Rocks.Speed, a.score, a.ticks)
	r := newRock(a, radius, a.rng.Float64()*2*math.Pi, speed)
	a.world.Add(r, x, y)
	a.rocks++
}

// rockDestroyed scores a shot rock and splits it. Smaller rocks are worth
// more.
func (a *Game) rockDestroyed(r *Rock) {
	a.rocks--
	a.score += int(math.Round(float64(a.cfg.Rocks.Points) * a.cfg.Rocks.Size / r.radius))
	if half := r.radius / 2; half >= a.cfg.Rocks.MinSize {
		a.addRock(half, r.X, r.Y)
		a.addRock(half, r.X, r.Y)
	}
}

// shipDestroyed blows up the ship, shakes the camera and either schedules a
// respawn or ends the game.
func (a *Game) shipDestroyed(s *Ship) {
	s.Remove()
	a.ship = nil
	a.world.Add(newExplosion(a.images.explosion, explosionFPS, a.tickRate), s.X, s.Y)
	a.world.Camera.MoveTo(shakeOffset, shakeOffset/2)
	a.world.Camera.PanTo(0, 0, shakeSpeed)

	a.lives--
	if a.lives <= 0 {
		a.over = true
		a.logger.Info("game over", "score", a.score, "wave", a.wave)
		return
	}
	a.respawn = a.cfg.Gameplay.RespawnDelay
}

// Update implements engine.Client.
func (a *Game) Update(g *engine.Game) {
	if a.over {
		if g.Controller().ControlPressed("RESTART") || g.Controller().ControlPressed("SPACE") {
			a.reset()
		}
		return
	}
	a.ticks++
	if a.respawn > 0 {
		a.respawn--
		if a.respawn == 0 {
			a.spawnShip()
		}
	}
	if a.rocks == 0 {
		a.nextWave()
	}
}

// Score implements registry.Scorer.
func (a *Game) Score() int { return a.score }

// Over implements registry.Scorer.
func (a *Game) Over() bool { return a.over }

// Lives returns the ships left, the current one included.
func (a *Game) Lives() int { return a.lives }

// Wave returns the current wave number, starting at 1.
func (a *Game) Wave() int { return a.wave }

// Ship returns the current ship, or nil between lives.
func (a *Game) Ship() *Ship { return a.ship }

// HUD implements registry.HUDer.
func (a *Game) HUD() string {
	s := fmt.Sprintf("score %d   lives %d   wave %d", a.score, a.lives, a.wave)
	if a.over {
		s += "   game over, r to restart"
	}
	return s
}

// PaintOverlay implements engine.OverlayPainter.
func (a *Game) PaintOverlay(g *engine.Game, c *render.Canvas) {
	w, h := float64(c.Width()), float64(c.Height())
	small := render.Face(max(h/30, 6))
	c.DrawText(fmt.Sprintf("%d", a.score), 8, max(h/30, 6), small, render.White, render.AlignLeft)
	if !a.over {
		return
	}
	c.Fill(overlayColor)
	big := render.Face(max(h/10, 8))
	c.DrawText("Game Over", w/2, h/2-h/10, big, render.White, render.AlignCenter)
	c.DrawText(fmt.Sprintf("Score: %d", a.score), w/2, h/2+h/20, big, render.White, render.AlignCenter)
	c.DrawText("Press R to play again", w/2, h/2+h/6, small, render.White, render.AlignCenter)
}
