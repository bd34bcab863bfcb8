package input

import (
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

func TestKeyHeldAcrossRefreshes(t *testing.T) {
	c := NewController()
	c.PressKey("x")

	for tick := 0; tick < 3; tick++ {
		c.Refresh()
		if !c.KeyDown("x") {
			t.Errorf("tick %d: KeyDown = false, want true", tick)
		}
		if got, want := c.KeyPressed("x"), tick == 0; got != want {
			t.Errorf("tick %d: KeyPressed = %v, want %v", tick, got, want)
		}
		// auto-repeat while held must not re-trigger
		c.PressKey("x")
	}

	c.ReleaseKey("x")
	c.Refresh()
	if c.KeyDown("x") || c.KeyPressed("x") {
		t.Error("released key should be neither down nor pressed")
	}
}

func TestTapWithinOneTick(t *testing.T) {
	c := NewController()
	c.PressKey(KeySpace)
	c.ReleaseKey(KeySpace)
	c.Refresh()

	if !c.KeyPressed(KeySpace) {
		t.Error("a tap between refreshes should still be seen as pressed")
	}
	if c.KeyDown(KeySpace) {
		t.Error("a tap between refreshes should not stay down")
	}
	if !c.ControlPressed("space") {
		t.Error("SPACE control should be pressed")
	}
}

func TestControlsFollowBindings(t *testing.T) {
	c := NewController()
	c.PressKey("w")
	c.Refresh()

	if !c.ControlDown("UP") || !c.ControlDown("up") {
		t.Error("w should hold UP, case-insensitively")
	}
	if !c.ControlPressed("Up") {
		t.Error("w should press UP")
	}
	if c.ControlDown("DOWN") {
		t.Error("DOWN should not be held")
	}
	if c.ControlDown("NO_SUCH_CONTROL") || c.ControlPressed("NO_SUCH_CONTROL") {
		t.Error("unbound controls should report false")
	}

	c.Refresh()
	if !c.ControlDown("UP") || c.ControlPressed("UP") {
		t.Error("second tick: UP should be down but not pressed")
	}
}

func TestBindingChanges(t *testing.T) {
	c := NewController()
	c.Bind("j", "fire")
	c.UnbindKey(KeySpace)

	c.PressKey("j")
	c.PressKey(KeySpace)
	c.Refresh()

	if !c.ControlDown("FIRE") {
		t.Error("j should trigger FIRE")
	}
	if c.ControlDown("SPACE") {
		t.Error("space was unbound")
	}

	c.Unbind("w", "UP")
	if c.Bound("w", "up") {
		t.Error("w should no longer be bound to UP")
	}
	if !c.Bound(KeyUp, "up") {
		t.Error("up arrow should still be bound to UP")
	}

	c.ClearBindings()
	c.Refresh()
	if c.ControlDown("FIRE") {
		t.Error("cleared bindings should drop FIRE")
	}

	c.ResetBindings()
	if got := c.KeysFor("left"); len(got) != 2 || got[0] != "a" || got[1] != KeyLeft {
		t.Errorf("KeysFor(left) = %v, want [a left]", got)
	}
}

func TestMultiBindingQueries(t *testing.T) {
	c := NewController()
	if c.HasMultiBinding() {
		t.Error("default bindings map each key to one control")
	}
	if !c.HasMultiKeys() {
		t.Error("default controls have several keys")
	}
	if !c.PreferControlOrder() {
		t.Error("defaults should list by control")
	}

	c.Bind(KeySpace, "fire")
	if !c.HasMultiBinding() {
		t.Error("space now triggers SPACE and FIRE")
	}
	if c.PreferControlOrder() {
		t.Error("multi-bound keys should list by key")
	}

	byKey := c.Bindings(false)
	for i := 1; i < len(byKey); i++ {
		if byKey[i-1].Key > byKey[i].Key {
			t.Fatalf("bindings not sorted by key: %v", byKey)
		}
	}
	byControl := c.Bindings(true)
	for i := 1; i < len(byControl); i++ {
		if byControl[i-1].Control > byControl[i].Control {
			t.Fatalf("bindings not sorted by control: %v", byControl)
		}
	}
	if len(byKey) != len(byControl) || len(byKey) != 10 {
		t.Errorf("got %d bindings, want 10", len(byKey))
	}
}

func TestMouse(t *testing.T) {
	c := NewController()
	c.MoveMouse(10, 20)
	c.Refresh()
	if c.Mouse() != geom.V(10, 20) || c.MouseDelta() != geom.V(10, 20) {
		t.Errorf("first refresh: mouse %v delta %v", c.Mouse(), c.MouseDelta())
	}

	c.MoveMouse(15, 18)
	c.Refresh()
	if c.MouseDelta() != geom.V(5, -2) {
		t.Errorf("delta = %v, want (5,-2)", c.MouseDelta())
	}

	c.Refresh()
	if c.MouseDelta() != (geom.Vec{}) {
		t.Errorf("still mouse delta = %v, want zero", c.MouseDelta())
	}

	c.PressButton(ButtonLeft)
	c.Refresh()
	if !c.ButtonPressed(ButtonLeft) || !c.ButtonDown(ButtonLeft) {
		t.Error("left button should be pressed and down")
	}
	c.Refresh()
	if c.ButtonPressed(ButtonLeft) || !c.ButtonDown(ButtonLeft) {
		t.Error("left button should be down only")
	}
	c.ReleaseButton(ButtonLeft)
	c.Refresh()
	if c.ButtonDown(ButtonLeft) {
		t.Error("left button should be released")
	}
}

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		" ":         KeySpace,
		"Space":     KeySpace,
		"ArrowUp":   KeyUp,
		"W":         "w",
		"Escape":    KeyEscape,
		"enter":     KeyEnter,
		"Digit7":    "7",
		"ShiftLeft": KeyShift,
	}
	for in, want := range tests {
		if got := ParseKey(in); got != want {
			t.Errorf("ParseKey(%q) = %q, want %q", in, got, want)
		}
	}
}
