package pong

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
)

func newTestGame(t *testing.T, cfg config.PongConfig) (*engine.Game, *Game) {
	t.Helper()
	quiet := log.New(io.Discard)
	p := New(cfg, 3, quiet)
	g := engine.New(p, engine.WithLogger(quiet), engine.WithWindowSize(64, 48))
	g.Tick()
	return g, p
}

func TestSetup(t *testing.T) {
	_, p := newTestGame(t, config.DefaultPongConfig())
	left, right := p.Paddles()

	if left.X != -300 || right.X != 300 {
		t.Errorf("paddles at %v and %v, want -300 and 300", left.X, right.X)
	}
	if got := len(engine.AllOfType[*Scoreboard](p.world)); got != 2 {
		t.Errorf("scoreboards = %d, want 2", got)
	}
	if !p.Ball().Serving() {
		t.Error("ball should wait before the first serve")
	}
	v := p.Ball().Velocity()
	if math.Abs(v.Len()-5) > 1e-9 || math.Abs(math.Abs(v.X)-math.Abs(v.Y)) > 1e-9 {
		t.Errorf("serve velocity = %v, want speed 5 on a diagonal", v)
	}
}

func TestServeDelay(t *testing.T) {
	g, p := newTestGame(t, config.DefaultPongConfig())
	b := p.Ball()

	// The first tick already counted down once.
	for i := 2; i < 100; i++ {
		g.Tick()
		if b.X != 0 || b.Y != 0 {
			t.Fatalf("ball moved during the serve delay at tick %d", i)
		}
	}
	g.Tick()
	if b.X == 0 && b.Y == 0 {
		t.Error("ball did not move after the serve delay")
	}
}

func TestBallScoresOnSideEdges(t *testing.T) {
	tests := []struct {
		name      string
		x, vx     float64
		wantLeft  int
		wantRight int
	}{
		{"east edge scores for left", 318, 5, 1, 0},
		{"west edge scores for right", -318, -5, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, p := newTestGame(t, config.DefaultPongConfig())
			b := p.Ball()
			b.delay = 0
			b.SetPosition(tc.x, 200)
			b.vx, b.vy = tc.vx, 0

			g.Tick()
			left, right := p.Paddles()
			if left.Score() != tc.wantLeft || right.Score() != tc.wantRight {
				t.Errorf("score = %d:%d, want %d:%d", left.Score(), right.Score(), tc.wantLeft, tc.wantRight)
			}
			if b.X != 0 || b.Y != 0 || !b.Serving() {
				t.Errorf("ball not reset: at %v serving=%v", b.Position(), b.Serving())
			}
		})
	}
}

func TestBallBouncesOffTop(t *testing.T) {
	g, p := newTestGame(t, config.DefaultPongConfig())
	b := p.Ball()
	b.delay = 0
	b.SetPosition(0, -234)
	b.vx, b.vy = 1, -3

	g.Tick()
	if b.vy != 3 {
		t.Errorf("vy = %v after hitting the top, want 3", b.vy)
	}
}

func TestPaddleHitSpeedsUp(t *testing.T) {
	g, p := newTestGame(t, config.DefaultPongConfig())
	b := p.Ball()
	left, _ := p.Paddles()
	b.delay = 0
	b.speed = 5
	b.SetPosition(left.X+12, left.Y+20)
	b.vx, b.vy = -5, 0

	g.Tick()
	if b.vx <= 0 {
		t.Fatalf("ball not returned: vx = %v", b.vx)
	}
	if got := b.Velocity().Len(); math.Abs(got-6) > 1e-9 {
		t.Errorf("speed after hit = %v, want 6", got)
	}
	if b.vy <= 0 {
		t.Errorf("hit below the paddle center should send the ball down, vy = %v", b.vy)
	}

	// Moving away from the paddle it is still touching, nothing changes.
	vx := b.vx
	g.Tick()
	if b.vx != vx {
		t.Errorf("ball bounced twice: vx %v -> %v", vx, b.vx)
	}
}

func TestPaddleControlsAndEdges(t *testing.T) {
	g, p := newTestGame(t, config.DefaultPongConfig())
	left, right := p.Paddles()
	ctrl := g.Controller()

	ctrl.PressKey("w")
	ctrl.PressKey(input.KeyDown)
	g.Tick()
	if left.Y != -5 || right.Y != 5 {
		t.Errorf("paddles at %v, %v, want -5, 5", left.Y, right.Y)
	}

	for i := 0; i < 100; i++ {
		g.Tick()
	}
	if top := left.Y - 50; top < -240 {
		t.Errorf("left paddle top %v went past the north edge", top)
	}
	if left.Y != -190 {
		t.Errorf("left paddle should rest against the north edge, y = %v", left.Y)
	}
	if right.Y != 190 {
		t.Errorf("right paddle should rest against the south edge, y = %v", right.Y)
	}
}

func TestCPUFollowsBall(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.CPU.Enabled = true
	cfg.Difficulty.Enabled = false
	g, p := newTestGame(t, cfg)
	_, right := p.Paddles()
	b := p.Ball()
	b.delay = 1000
	b.SetPosition(0, 100)
	b.vx = 5

	g.Tick()
	if right.Y != cfg.CPU.Speed {
		t.Errorf("cpu paddle y = %v, want %v", right.Y, cfg.CPU.Speed)
	}

	b.vx = -5
	g.Tick()
	if right.Y != cfg.CPU.Speed {
		t.Errorf("cpu paddle moved while the ball went away: y = %v", right.Y)
	}
}

func TestMatchWinPausesAndRestarts(t *testing.T) {
	g, p := newTestGame(t, config.DefaultPongConfig())
	left, right := p.Paddles()
	left.score = 10
	right.score = 4

	g.Tick()
	if p.world.Running() {
		t.Fatal("world should pause after a win")
	}
	if !p.Over() || p.Score() != 1 {
		t.Errorf("Over() = %v, Score() = %d", p.Over(), p.Score())
	}
	if p.world.BackgroundSprite == nil {
		t.Error("win banner not shown")
	}
	if left.score != 0 || right.score != 0 {
		t.Error("scores not reset after the match")
	}
	if !strings.Contains(p.HUD(), "Left wins") {
		t.Errorf("HUD() = %q", p.HUD())
	}

	g.Controller().PressKey(input.KeySpace)
	g.Tick()
	if !p.world.Running() || p.Over() || p.world.BackgroundSprite != nil {
		t.Error("space should start a new match")
	}
}
