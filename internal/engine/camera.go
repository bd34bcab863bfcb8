package engine

import (
	"github.com/vovakirdan/arcade-engine/internal/direction"
	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// panEpsilon absorbs rounding so a pan never takes an extra tiny step.
const panEpsilon = 1e-9

// Camera is the point of the world shown at the center of the screen.
type Camera struct {
	X, Y     float64
	Rotation float64 // degrees
	// ZoomX and ZoomY scale the world when the zoom mode is Manual.
	ZoomX, ZoomY float64

	panning bool
	target  geom.Vec
	speed   float64
}

// Position returns the camera position.
func (c *Camera) Position() geom.Vec {
	return geom.Vec{X: c.X, Y: c.Y}
}

// MoveTo jumps to (x, y) and cancels any pan in progress.
func (c *Camera) MoveTo(x, y float64) {
	c.X, c.Y = x, y
	c.panning = false
}

// PanTo moves the camera toward (x, y) by speed world units per tick. The
// pan finishes exactly on the target, within ceil(distance/speed) steps. A
// target closer than one step, or a speed that is not positive, is reached
// at once.
func (c *Camera) PanTo(x, y, speed float64) {
	target := geom.Vec{X: x, Y: y}
	if speed <= 0 || c.Position().Dist(target) <= speed+panEpsilon {
		c.MoveTo(x, y)
		return
	}
	c.panning = true
	c.target = target
	c.speed = speed
}

// Panning reports whether a pan is in progress.
func (c *Camera) Panning() bool {
	return c.panning
}

// SetZoom sets both manual zoom factors.
func (c *Camera) SetZoom(s float64) {
	c.ZoomX, c.ZoomY = s, s
}

// SetZoomXY sets the manual zoom factors independently.
func (c *Camera) SetZoomXY(sx, sy float64) {
	c.ZoomX, c.ZoomY = sx, sy
}

// Step advances a pan by one tick and normalizes the rotation.
func (c *Camera) Step() {
	c.Rotation = direction.NormalizeDegrees(c.Rotation)
	if !c.panning {
		return
	}
	d := c.target.Sub(c.Position())
	dist := d.Len()
	if dist <= c.speed+panEpsilon {
		c.MoveTo(c.target.X, c.target.Y)
		return
	}
	step := d.Mul(c.speed / dist)
	c.X += step.X
	c.Y += step.Y
}
