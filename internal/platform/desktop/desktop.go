// Package desktop runs engine games in a native window with Ebitengine.
package desktop

import (
	"errors"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/platform"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// Options configure the desktop runner.
type Options struct {
	Store  *storage.Store // nil disables score saving
	Logger *log.Logger
}

var buttons = map[ebiten.MouseButton]input.Button{
	ebiten.MouseButtonLeft:   input.ButtonLeft,
	ebiten.MouseButtonMiddle: input.ButtonMiddle,
	ebiten.MouseButtonRight:  input.ButtonRight,
}

// runner adapts an engine.Game to ebiten.Game. Ebitengine calls Update at
// the TPS, which follows the game framerate.
type runner struct {
	game   *engine.Game
	scores *platform.ScoreKeeper
	logger *log.Logger
	tps    int
	keys   []ebiten.Key
}

func keyName(k ebiten.Key) input.Key {
	return input.ParseKey(k.String())
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	r.syncTPS()

	ctrl := r.game.Controller()
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, k := range r.keys {
		ctrl.PressKey(keyName(k))
	}
	r.keys = inpututil.AppendJustReleasedKeys(r.keys[:0])
	for _, k := range r.keys {
		ctrl.ReleaseKey(keyName(k))
	}

	x, y := ebiten.CursorPosition()
	ctrl.MoveMouse(float64(x), float64(y))
	for eb, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			ctrl.PressButton(b)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			ctrl.ReleaseButton(b)
		}
	}

	if !r.game.Enabled() {
		return nil
	}
	r.game.Tick()
	r.scores.Observe(r.game.Ticks())
	return nil
}

// syncTPS follows framerate changes made by the game.
func (r *runner) syncTPS() {
	fps := r.game.Framerate()
	if fps <= 0 {
		return
	}
	tps := max(int(math.Round(fps)), 1)
	if tps != r.tps {
		ebiten.SetTPS(tps)
		r.tps = tps
		r.logger.Debug("tick rate changed", "tps", tps)
	}
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	img := r.game.Canvas().Image()
	if img.Bounds().Size() != screen.Bounds().Size() {
		return
	}
	screen.WritePixels(img.Pix)
}

// Layout implements ebiten.Game. The canvas follows the window, one canvas
// pixel per device-independent pixel.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := r.game.Canvas()
	if c.Width() != outsideWidth || c.Height() != outsideHeight {
		r.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run plays client in a window until it is closed or Escape is pressed.
func Run(g *engine.Game, client registry.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("desktop")

	w, h := g.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(client.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	r := &runner{
		game:   g,
		scores: platform.NewScoreKeeper(opts.Store, client, logger),
		logger: logger,
	}
	g.Start()
	err := ebiten.RunGame(r)
	r.scores.Finish(g.Ticks())
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
