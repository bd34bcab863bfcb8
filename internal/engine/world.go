package engine

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/geom"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/render"
	"github.com/vovakirdan/arcade-engine/internal/sprite"
)

// ErrSingularTransform is returned when the world transform cannot be
// inverted, typically because the window has zero width or height.
var ErrSingularTransform = errors.New("engine: world transform is not invertible")

// ZoomMode decides how the world is scaled to the window.
type ZoomMode int

const (
	// Stretch scales each axis independently to fill the window exactly.
	Stretch ZoomMode = iota
	// Letterbox keeps the aspect ratio and shows the whole world.
	Letterbox
	// Fill keeps the aspect ratio and fills the window, cropping the world.
	Fill
	// Manual uses the camera zoom factors.
	Manual
)

var zoomNames = map[ZoomMode]string{
	Stretch:   "stretch",
	Letterbox: "letterbox",
	Fill:      "fill",
	Manual:    "manual",
}

func (z ZoomMode) String() string {
	if n, ok := zoomNames[z]; ok {
		return n
	}
	return "unknown"
}

// ParseZoomMode parses a zoom mode name as written in configuration files.
func ParseZoomMode(s string) (ZoomMode, error) {
	for z, n := range zoomNames {
		if n == s {
			return z, nil
		}
	}
	return Stretch, fmt.Errorf("unknown zoom mode %q", s)
}

// World owns the live entities, the camera and the optional boundary.
//
// Adding and removing entities is deferred: both are queued and applied at
// the start of the next Update, so the live set never changes while
// entities are being updated or painted.
type World struct {
	Camera Camera
	Zoom   ZoomMode

	// Background fills the whole window; FillColor fills the world
	// rectangle of a sized world; BackgroundSprite is drawn centered on the
	// world origin.
	Background       color.Color
	FillColor        color.Color
	BackgroundSprite sprite.Source

	entities []Entity
	toAdd    []Entity
	toRemove []Entity

	size  geom.Vec
	sized bool
	edges []*Edge

	view      geom.Vec // canvas size in pixels
	preferred geom.Vec // window size the game was designed for
	mouse     geom.Vec
	singular  bool

	paused bool
	debug  bool
	now    time.Time

	ctrl   *input.Controller
	logger *log.Logger
}

// NewWorld creates an empty, unbounded world reading the mouse from ctrl.
func NewWorld(ctrl *input.Controller, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	if ctrl == nil {
		ctrl = input.NewController()
	}
	return &World{
		Camera:     Camera{ZoomX: 1, ZoomY: 1},
		Background: render.Black,
		ctrl:       ctrl,
		logger:     logger.WithPrefix("world"),
	}
}

// Controller returns the input controller the world reads.
func (w *World) Controller() *input.Controller {
	return w.ctrl
}

// Logger returns the world's logger.
func (w *World) Logger() *log.Logger {
	return w.logger
}

// Add places e at (x, y), runs its Setup and queues it to become live at
// the next Update. It panics if e already belongs to a world.
func (w *World) Add(e Entity, x, y float64) {
	b := e.base()
	if b.world != nil {
		panic(fmt.Sprintf("engine: %T already added to a world", e))
	}
	b.X, b.Y = x, y
	b.world = w
	b.self = e
	e.Setup()
	w.toAdd = append(w.toAdd, e)
}

// Remove queues e for removal at the next Update.
func (w *World) Remove(e Entity) {
	w.toRemove = append(w.toRemove, e)
}

// Clear queues every live entity for removal and drops pending additions.
func (w *World) Clear() {
	w.toRemove = append(w.toRemove, w.entities...)
	w.toAdd = nil
}

// Pending returns the number of queued additions and removals.
func (w *World) Pending() (adds, removes int) {
	return len(w.toAdd), len(w.toRemove)
}

// applyPending removes queued entities, then adds queued entities in the
// order they were added.
func (w *World) applyPending() {
	if len(w.toRemove) > 0 {
		w.entities = slices.DeleteFunc(w.entities, func(e Entity) bool {
			return slices.Contains(w.toRemove, e)
		})
		for _, e := range w.toRemove {
			e.base().live = false
		}
	}
	for _, e := range w.toAdd {
		e.base().live = true
	}
	w.entities = append(w.entities, w.toAdd...)
	w.toAdd = nil
	w.toRemove = nil
}

// Update runs one world tick: apply queued additions and removals, map the
// mouse into world space, update every live entity in order, then step the
// camera. A paused world only applies queued changes and tracks the mouse.
func (w *World) Update() {
	w.applyPending()
	if p, err := w.ScreenToWorld(w.ctrl.Mouse()); err == nil {
		w.mouse = p
	}
	if w.paused {
		return
	}
	w.logger.Debug("updating entities", "count", len(w.entities))
	for _, e := range w.entities {
		e.Update()
	}
	w.Camera.Step()
}

// Pause stops or resumes entity updates.
func (w *World) Pause(paused bool) {
	w.paused = paused
}

// Play resumes entity updates.
func (w *World) Play() {
	w.paused = false
}

// Running reports whether entities are being updated.
func (w *World) Running() bool {
	return !w.paused
}

// SetDebug turns on drawing of collision shapes.
func (w *World) SetDebug(on bool) {
	w.debug = on
}

// Now returns the time of the current tick.
func (w *World) Now() time.Time {
	if w.now.IsZero() {
		return time.Now()
	}
	return w.now
}

// SetNow sets the time of the current tick. Game calls it every tick.
func (w *World) SetNow(t time.Time) {
	w.now = t
}

// Entities returns a copy of the live entities in update order.
func (w *World) Entities() []Entity {
	return slices.Clone(w.entities)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// AllOfType returns the live entities of type T in update order. Asking for
// *Edge returns the boundary edges, if any.
func AllOfType[T Entity](w *World) []T {
	if w == nil {
		return nil
	}
	var out []T
	if _, ok := any(*new(T)).(*Edge); ok {
		for _, e := range w.edges {
			out = append(out, any(e).(T))
		}
		return out
	}
	for _, e := range w.entities {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// SetSize bounds the world to a w×h rectangle centered on the origin and
// creates its four edges.
func (w *World) SetSize(width, height float64) {
	w.size = geom.Vec{X: width, Y: height}
	w.sized = true
	w.edges = w.edges[:0]
	for _, d := range direction.Cardinals() {
		w.edges = append(w.edges, newEdge(w, d, width, height))
	}
}

// ClearSize makes the world unbounded and removes its edges.
func (w *World) ClearSize() {
	w.size = geom.Vec{}
	w.sized = false
	w.edges = nil
}

// Size returns the world size; ok is false for an unbounded world.
func (w *World) Size() (width, height float64, ok bool) {
	return w.size.X, w.size.Y, w.sized
}

// Bounds returns the world rectangle of a sized world.
func (w *World) Bounds() (geom.Rect, bool) {
	return geom.Centered(w.size.X, w.size.Y), w.sized
}

// Edges returns the boundary edges in North, South, East, West order.
func (w *World) Edges() []*Edge {
	return slices.Clone(w.edges)
}

// Edge returns the boundary edge on side d, or nil.
func (w *World) Edge(d direction.Direction) *Edge {
	for _, e := range w.edges {
		if e.Dir == d {
			return e
		}
	}
	return nil
}

// SetViewport sets the size in pixels of the surface the world is painted on.
func (w *World) SetViewport(width, height float64) {
	w.view = geom.Vec{X: width, Y: height}
}

// Viewport returns the size of the paint surface.
func (w *World) Viewport() geom.Vec {
	return w.view
}

// SetPreferredSize sets the window size an unbounded world is scaled against.
func (w *World) SetPreferredSize(width, height float64) {
	w.preferred = geom.Vec{X: width, Y: height}
}

// Scale returns the world-to-screen scale factors for the zoom mode.
func (w *World) Scale() (sx, sy float64) {
	if w.Zoom == Manual {
		return w.Camera.ZoomX, w.Camera.ZoomY
	}
	ref := w.preferred
	if w.sized {
		ref = w.size
	}
	if ref.X <= 0 || ref.Y <= 0 {
		return 1, 1
	}
	sx, sy = w.view.X/ref.X, w.view.Y/ref.Y
	switch w.Zoom {
	case Letterbox:
		s := min(sx, sy)
		return s, s
	case Fill:
		s := max(sx, sy)
		return s, s
	}
	return sx, sy
}

// Transform returns the world-to-screen transform: the camera position is
// moved to the screen center, then rotated and scaled.
func (w *World) Transform() geom.Affine {
	sx, sy := w.Scale()
	return geom.Translation(w.view.X/2, w.view.Y/2).
		Scale(sx, sy).
		Rotate(direction.ToRadians(w.Camera.Rotation)).
		Translate(-w.Camera.X, -w.Camera.Y)
}

// ScreenToWorld maps a screen pixel to world coordinates. It returns
// ErrSingularTransform instead of a point when the transform cannot be
// inverted.
func (w *World) ScreenToWorld(p geom.Vec) (geom.Vec, error) {
	inv, ok := w.Transform().Invert()
	if !ok {
		if !w.singular {
			w.logger.Warn("cannot map screen to world", "viewport", w.view, "error", ErrSingularTransform)
		}
		w.singular = true
		return geom.Vec{}, ErrSingularTransform
	}
	w.singular = false
	return inv.Apply(p), nil
}

// WorldToScreen maps a world point to screen pixels.
func (w *World) WorldToScreen(p geom.Vec) geom.Vec {
	return w.Transform().Apply(p)
}

// Mouse returns the mouse position in world coordinates as of the last Update.
func (w *World) Mouse() geom.Vec {
	return w.mouse
}

// Paint draws the world on c: background, world rectangle, background
// sprite, then every live entity in update order.
func (w *World) Paint(c *render.Canvas) {
	if w.Background != nil {
		c.Clear(w.Background)
	}
	c.Save()
	defer c.Restore()

	c.Concat(w.Transform())
	if w.sized {
		c.Clip(geom.Centered(w.size.X, w.size.Y))
		if w.FillColor != nil {
			c.Fill(w.FillColor)
		}
	}
	if w.BackgroundSprite != nil {
		if f := w.BackgroundSprite.Current(w.Now()); f != nil {
			c.DrawImageCentered(f.Image())
		}
	}
	for _, e := range w.entities {
		w.paintEntity(c, e)
	}
}

func (w *World) paintEntity(c *render.Canvas, e Entity) {
	c.Save()
	defer c.Restore()
	c.Concat(e.base().Transform())
	e.Paint(c)
	if w.debug {
		c.StrokeShape(e.Shape(), render.Green, 1)
	}
}
