package engine

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/render"
)

// DefaultFramerate is the tick rate of a new Game (20ms per tick).
const DefaultFramerate = 50

// Default window size.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Client is a concrete game driven by a Game.
type Client interface {
	// Setup runs once before the first tick.
	Setup(g *Game)
	// Update runs every tick after input is refreshed and before the world
	// updates its entities.
	Update(g *Game)
}

// OverlayPainter is implemented by clients that draw in screen space on
// top of the world, such as score panels and messages.
type OverlayPainter interface {
	PaintOverlay(g *Game, c *render.Canvas)
}

// Game runs a Client on a fixed tick. Each tick refreshes the controller,
// updates the client, updates the world, then paints the world into the
// canvas. Presentation backends drive ticks at Delay intervals and copy the
// canvas to the screen.
type Game struct {
	client Client
	world  *World
	ctrl   *input.Controller
	canvas *render.Canvas
	logger *log.Logger
	clock  func() time.Time

	mu          sync.Mutex // guards fps and delay
	fps         float64
	delay       time.Duration
	rateChanged chan struct{}

	windowW, windowH int
	started          bool
	debug            bool
	ticks            uint64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClock sets the time source used for animations.
func WithClock(clock func() time.Time) Option {
	return func(g *Game) { g.clock = clock }
}

// WithController shares an existing input controller.
func WithController(c *input.Controller) Option {
	return func(g *Game) { g.ctrl = c }
}

// WithDebug enables debug logging and collision outlines.
func WithDebug(on bool) Option {
	return func(g *Game) { g.debug = on }
}

// WithFramerate sets the initial tick rate.
func WithFramerate(fps float64) Option {
	return func(g *Game) { g.fps = fps }
}

// WithWindowSize sets the preferred window size.
func WithWindowSize(w, h int) Option {
	return func(g *Game) { g.windowW, g.windowH = w, h }
}

// New creates a game for client. Nothing runs until Start or the first Tick.
func New(client Client, opts ...Option) *Game {
	g := &Game{
		client:      client,
		clock:       time.Now,
		fps:         DefaultFramerate,
		windowW:     DefaultWidth,
		windowH:     DefaultHeight,
		rateChanged: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.ctrl == nil {
		g.ctrl = input.NewController()
	}
	g.world = NewWorld(g.ctrl, g.logger)
	g.canvas = render.NewCanvas(0, 0)
	g.SetDebug(g.debug)
	g.SetFramerate(g.fps)
	<-g.rateChanged
	g.SetWindowSize(g.windowW, g.windowH)
	return g
}

// World returns the game world.
func (g *Game) World() *World { return g.world }

// Controller returns the input controller.
func (g *Game) Controller() *input.Controller { return g.ctrl }

// Canvas returns the surface painted every tick.
func (g *Game) Canvas() *render.Canvas { return g.canvas }

// Logger returns the game logger.
func (g *Game) Logger() *log.Logger { return g.logger }

// Client returns the game being run.
func (g *Game) Client() Client { return g.client }

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() uint64 { return g.ticks }

// Now returns the current time from the game clock.
func (g *Game) Now() time.Time { return g.clock() }

// Debug reports whether debug mode is on.
func (g *Game) Debug() bool { return g.debug }

// SetDebug turns debug mode on or off: debug log level and collision outlines.
func (g *Game) SetDebug(on bool) {
	g.debug = on
	g.world.SetDebug(on)
	if on {
		g.logger.SetLevel(log.DebugLevel)
	}
}

// SetWindowSize sets the window size the game is designed for. Unbounded
// worlds scale against it, and the canvas takes this size until a backend
// resizes it.
func (g *Game) SetWindowSize(w, h int) {
	g.windowW, g.windowH = w, h
	g.world.SetPreferredSize(float64(w), float64(h))
	if g.canvas.Width() == 0 && g.canvas.Height() == 0 {
		g.Resize(w, h)
	}
}

// WindowSize returns the preferred window size.
func (g *Game) WindowSize() (w, h int) {
	return g.windowW, g.windowH
}

// Resize sets the canvas size in pixels.
func (g *Game) Resize(w, h int) {
	g.canvas.Resize(w, h)
	g.world.SetViewport(float64(w), float64(h))
}

// SetFramerate sets the tick rate. A rate of zero or less stops ticking
// until a positive rate is set again.
func (g *Game) SetFramerate(fps float64) {
	g.mu.Lock()
	g.fps = fps
	if fps <= 0 {
		g.delay = time.Duration(math.MaxInt64)
	} else {
		g.delay = time.Duration(float64(time.Second) / fps)
	}
	g.mu.Unlock()

	select {
	case g.rateChanged <- struct{}{}:
	default:
	}
}

// Framerate returns the tick rate.
func (g *Game) Framerate() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fps
}

// Delay returns the time between ticks.
func (g *Game) Delay() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.delay
}

// Enabled reports whether the game should tick at all.
func (g *Game) Enabled() bool {
	return g.Framerate() > 0
}

// Start runs the client setup. It is called by the first Tick if needed
// and does nothing on later calls.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.logger.Debug("starting game", "fps", g.Framerate(), "window", [2]int{g.windowW, g.windowH})
	g.client.Setup(g)
}

// Tick runs one tick: controller refresh, client update, world update and
// paint, in that order.
func (g *Game) Tick() {
	g.Start()
	g.world.SetNow(g.clock())

	g.ctrl.Refresh()
	g.client.Update(g)
	g.world.Update()
	g.Paint()
	g.ticks++
}

// Paint draws the world and the client overlay into the canvas.
func (g *Game) Paint() {
	g.canvas.Reset()
	g.world.Paint(g.canvas)
	if op, ok := g.client.(OverlayPainter); ok {
		g.canvas.Reset()
		op.PaintOverlay(g, g.canvas)
	}
}

// Run ticks the game at its framerate until ctx is done. It is a headless
// driver; interactive backends schedule Tick themselves.
func (g *Game) Run(ctx context.Context) error {
	g.Start()
	for {
		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		if g.Enabled() {
			timer = time.NewTimer(g.Delay())
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case <-g.rateChanged:
			if timer != nil {
				timer.Stop()
			}
		case <-fire:
			g.Tick()
		}
	}
}
