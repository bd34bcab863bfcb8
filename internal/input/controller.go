// Package input tracks keyboard and mouse state between ticks and resolves
// named controls through key bindings.
//
// Backends feed raw events into a Controller at any time; Refresh, called
// once at the start of every tick, turns them into a stable snapshot that
// game code queries for the rest of the tick.
package input

import (
	"strings"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// Controller is the input state of one running game. It is not safe for
// concurrent use; backends must deliver events on the tick goroutine.
type Controller struct {
	// keys
	newKeys      set[Key]
	releasedKeys set[Key]
	keysDown     set[Key]
	keysPressed  set[Key]

	// mouse buttons
	newButtons      set[Button]
	releasedButtons set[Button]
	buttonsDown     set[Button]
	buttonsPressed  set[Button]

	// mouse position in screen pixels
	mouse, prevMouse, mouseDelta geom.Vec

	// key -> upper-cased control names
	bindings        map[Key]set[string]
	controlsDown    set[string]
	controlsPressed set[string]
}

type set[T comparable] map[T]struct{}

func (s set[T]) has(v T) bool {
	_, ok := s[v]
	return ok
}

// NewController returns a controller with the default bindings.
func NewController() *Controller {
	c := &Controller{
		newKeys:         make(set[Key]),
		releasedKeys:    make(set[Key]),
		keysDown:        make(set[Key]),
		keysPressed:     make(set[Key]),
		newButtons:      make(set[Button]),
		releasedButtons: make(set[Button]),
		buttonsDown:     make(set[Button]),
		buttonsPressed:  make(set[Button]),
		controlsDown:    make(set[string]),
		controlsPressed: make(set[string]),
	}
	c.ResetBindings()
	return c
}

// PressKey records that k went down. Repeated presses of a key that is
// already down are ignored, so terminal auto-repeat does not re-trigger it.
func (c *Controller) PressKey(k Key) {
	if !c.keysDown.has(k) {
		c.newKeys[k] = struct{}{}
	}
}

// ReleaseKey records that k went up.
func (c *Controller) ReleaseKey(k Key) {
	c.releasedKeys[k] = struct{}{}
}

// PressButton records that b went down.
func (c *Controller) PressButton(b Button) {
	if !c.buttonsDown.has(b) {
		c.newButtons[b] = struct{}{}
	}
}

// ReleaseButton records that b went up.
func (c *Controller) ReleaseButton(b Button) {
	c.releasedButtons[b] = struct{}{}
}

// MoveMouse records the current mouse position in screen pixels.
func (c *Controller) MoveMouse(x, y float64) {
	c.mouse = geom.Vec{X: x, Y: y}
}

// Refresh folds the events received since the last refresh into the state
// seen by this tick. Keys pressed since the last refresh are down and
// pressed; keys released since then are no longer down.
func (c *Controller) Refresh() {
	refresh(c.keysDown, c.keysPressed, c.newKeys, c.releasedKeys)
	refresh(c.buttonsDown, c.buttonsPressed, c.newButtons, c.releasedButtons)

	c.mouseDelta = c.mouse.Sub(c.prevMouse)
	c.prevMouse = c.mouse

	clear(c.controlsDown)
	clear(c.controlsPressed)
	for k := range c.keysDown {
		for name := range c.bindings[k] {
			c.controlsDown[name] = struct{}{}
		}
	}
	for k := range c.keysPressed {
		for name := range c.bindings[k] {
			c.controlsPressed[name] = struct{}{}
		}
	}
}

func refresh[T comparable](down, pressed, added, released set[T]) {
	clear(pressed)
	for v := range added {
		down[v] = struct{}{}
		pressed[v] = struct{}{}
	}
	clear(added)
	for v := range released {
		delete(down, v)
	}
	clear(released)
}

// KeyDown reports whether k is held this tick.
func (c *Controller) KeyDown(k Key) bool {
	return c.keysDown.has(k)
}

// KeyPressed reports whether k went down just before this tick.
func (c *Controller) KeyPressed(k Key) bool {
	return c.keysPressed.has(k)
}

// ButtonDown reports whether b is held this tick.
func (c *Controller) ButtonDown(b Button) bool {
	return c.buttonsDown.has(b)
}

// ButtonPressed reports whether b went down just before this tick.
func (c *Controller) ButtonPressed(b Button) bool {
	return c.buttonsPressed.has(b)
}

// ControlDown reports whether any key bound to the named control is held.
// Unknown controls are never down.
func (c *Controller) ControlDown(name string) bool {
	return c.controlsDown.has(strings.ToUpper(name))
}

// ControlPressed reports whether any key bound to the named control went
// down just before this tick.
func (c *Controller) ControlPressed(name string) bool {
	return c.controlsPressed.has(strings.ToUpper(name))
}

// Mouse returns the mouse position in screen pixels as of the last refresh.
func (c *Controller) Mouse() geom.Vec {
	return c.prevMouse
}

// MouseDelta returns how far the mouse moved between the last two refreshes.
func (c *Controller) MouseDelta() geom.Vec {
	return c.mouseDelta
}

// KeysDown returns the keys held this tick, in no particular order.
func (c *Controller) KeysDown() []Key {
	keys := make([]Key, 0, len(c.keysDown))
	for k := range c.keysDown {
		keys = append(keys, k)
	}
	return keys
}
