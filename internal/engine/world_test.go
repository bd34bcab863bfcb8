package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// spawner adds a child box during its first update.
type spawner struct {
	Base
	child *box
}

func (s *spawner) Update() {
	if s.child == nil {
		s.child = newBox()
		s.World().Add(s.child, s.X+1, s.Y)
	}
}

// quitter removes itself during its first update.
type quitter struct {
	Base
	updates int
}

func (q *quitter) Update() {
	q.updates++
	q.Remove()
}

func TestAddIsDeferred(t *testing.T) {
	w := newTestWorld()
	s := &spawner{}
	w.Add(s, 0, 0)
	if w.Len() != 0 {
		t.Fatalf("Len() = %d before first update, want 0", w.Len())
	}

	w.Update()
	if s.child == nil {
		t.Fatal("spawner did not run")
	}
	if w.Len() != 1 || s.child.Alive() {
		t.Fatalf("child live during the tick it was added (len %d)", w.Len())
	}
	if s.child.setups != 1 {
		t.Errorf("child setups = %d, want 1 at Add", s.child.setups)
	}
	if s.child.updates != 0 {
		t.Errorf("child updated %d times in the tick it was added", s.child.updates)
	}

	w.Update()
	if w.Len() != 2 || !s.child.Alive() {
		t.Fatalf("child not live on the next tick (len %d)", w.Len())
	}
	if s.child.updates != 1 {
		t.Errorf("child updates = %d, want 1", s.child.updates)
	}
	if got := s.child.Position(); got != geom.V(1, 0) {
		t.Errorf("child position = %v, want (1,0)", got)
	}
}

func TestRemoveIsDeferred(t *testing.T) {
	w := newTestWorld()
	q := &quitter{}
	other := newBox()
	w.Add(q, 0, 0)
	w.Add(other, 0, 0)

	w.Update()
	if !q.Alive() || w.Len() != 2 {
		t.Fatal("entity removed before the next tick")
	}
	if other.updates != 1 {
		t.Errorf("later entity skipped after a removal request: %d updates", other.updates)
	}

	w.Update()
	if q.Alive() || w.Len() != 1 {
		t.Fatalf("entity still live after removal tick (len %d)", w.Len())
	}
	if q.updates != 1 {
		t.Errorf("removed entity updated %d times, want 1", q.updates)
	}
}

func TestUpdateOrderFollowsAddOrder(t *testing.T) {
	w := newTestWorld()
	var boxes []*box
	for i := 0; i < 5; i++ {
		b := newBox()
		boxes = append(boxes, b)
		w.Add(b, float64(i), 0)
	}
	w.Update()

	for i, e := range w.Entities() {
		if e != Entity(boxes[i]) {
			t.Fatalf("entity %d out of order", i)
		}
	}
}

func TestDoubleAddPanics(t *testing.T) {
	w := newTestWorld()
	b := newBox()
	w.Add(b, 0, 0)
	defer func() {
		if recover() == nil {
			t.Error("adding an entity twice should panic")
		}
	}()
	newTestWorld().Add(b, 0, 0)
}

func TestClearAndPause(t *testing.T) {
	w := newTestWorld()
	a, b := newBox(), newBox()
	w.Add(a, 0, 0)
	w.Update()

	w.Pause(true)
	w.Add(b, 0, 0)
	w.Update()
	if w.Running() {
		t.Error("world should be paused")
	}
	if a.updates != 1 || b.updates != 0 {
		t.Errorf("paused world updated entities: %d, %d", a.updates, b.updates)
	}
	if w.Len() != 2 {
		t.Errorf("paused world did not apply pending additions: len %d", w.Len())
	}

	w.Play()
	w.Clear()
	if adds, removes := w.Pending(); adds != 0 || removes != 2 {
		t.Errorf("Pending() = %d, %d after Clear, want 0, 2", adds, removes)
	}
	w.Update()
	if w.Len() != 0 || a.Alive() || b.Alive() {
		t.Errorf("Clear left %d entities", w.Len())
	}
}

func TestAllOfType(t *testing.T) {
	w := newTestWorld()
	w.SetSize(100, 100)
	w.Add(newBox(), 0, 0)
	w.Add(&ball{r: 3}, 0, 0)
	w.Add(newBox(), 0, 0)
	w.Update()

	if got := len(AllOfType[*box](w)); got != 2 {
		t.Errorf("boxes = %d, want 2", got)
	}
	if got := len(AllOfType[*ball](w)); got != 1 {
		t.Errorf("balls = %d, want 1", got)
	}
	if got := len(AllOfType[Entity](w)); got != 3 {
		t.Errorf("entities = %d, want 3", got)
	}
	if got := len(AllOfType[*Edge](w)); got != 4 {
		t.Errorf("edges = %d, want 4", got)
	}
	if AllOfType[*box](nil) != nil {
		t.Error("nil world should have no entities")
	}
}

func TestPanTerminates(t *testing.T) {
	tests := []struct {
		name   string
		to     geom.Vec
		speed  float64
		steps  int
		direct bool
	}{
		{"exact multiple", geom.V(9, 0), 3, 3, false},
		{"remainder", geom.V(10, 0), 3, 4, false},
		{"diagonal", geom.V(30, 40), 7, 8, false},
		{"within one step", geom.V(2, 0), 3, 0, true},
		{"zero speed", geom.V(100, 100), 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Camera
			c.PanTo(tc.to.X, tc.to.Y, tc.speed)
			if tc.direct {
				if c.Panning() || c.Position() != tc.to {
					t.Fatalf("expected immediate move, at %v panning=%v", c.Position(), c.Panning())
				}
				return
			}

			prev := 0.0
			steps := 0
			for c.Panning() {
				c.Step()
				steps++
				d := c.Position().Dist(geom.Vec{})
				if d > tc.to.Len()+1e-9 {
					t.Fatalf("overshoot at step %d: %v", steps, c.Position())
				}
				if d < prev {
					t.Fatalf("moved backwards at step %d", steps)
				}
				prev = d
				if steps > 1000 {
					t.Fatal("pan never finished")
				}
			}
			if steps != tc.steps {
				t.Errorf("steps = %d, want %d", steps, tc.steps)
			}
			if c.Position() != tc.to {
				t.Errorf("final position = %v, want %v", c.Position(), tc.to)
			}
		})
	}
}

func TestMoveToCancelsPan(t *testing.T) {
	var c Camera
	c.PanTo(100, 0, 1)
	c.Step()
	c.MoveTo(-5, -5)
	c.Step()
	if c.Panning() || c.Position() != geom.V(-5, -5) {
		t.Errorf("MoveTo did not cancel pan: %v", c.Position())
	}
}

func TestZoomScale(t *testing.T) {
	tests := []struct {
		mode   ZoomMode
		sx, sy float64
	}{
		{Stretch, 2, 1},
		{Letterbox, 1, 1},
		{Fill, 2, 2},
		{Manual, 3, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			w := newTestWorld()
			w.SetSize(100, 100)
			w.SetViewport(200, 100)
			w.Camera.SetZoomXY(3, 0.5)
			w.Zoom = tc.mode
			if sx, sy := w.Scale(); sx != tc.sx || sy != tc.sy {
				t.Errorf("Scale() = %v, %v, want %v, %v", sx, sy, tc.sx, tc.sy)
			}
		})
	}
}

func TestUnboundedWorldScalesToPreferredSize(t *testing.T) {
	w := newTestWorld()
	w.SetPreferredSize(320, 240)
	w.SetViewport(640, 480)
	if sx, sy := w.Scale(); sx != 2 || sy != 2 {
		t.Errorf("Scale() = %v, %v, want 2, 2", sx, sy)
	}
}

func TestScreenToWorld(t *testing.T) {
	w := newTestWorld()
	w.SetSize(100, 100)
	w.SetViewport(200, 200)
	w.Camera.MoveTo(10, 0)

	p, err := w.ScreenToWorld(geom.V(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	if !near(p, geom.V(10, 0)) {
		t.Errorf("screen center maps to %v, want camera (10,0)", p)
	}

	p, _ = w.ScreenToWorld(geom.V(0, 0))
	if !near(p, geom.V(-40, -50)) {
		t.Errorf("screen origin maps to %v, want (-40,-50)", p)
	}

	w.Camera.Rotation = 30
	for _, q := range []geom.Vec{geom.V(3, 4), geom.V(-20, 7), geom.V(0, 0)} {
		back, err := w.ScreenToWorld(w.WorldToScreen(q))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(back.X-q.X) > 1e-9 || math.Abs(back.Y-q.Y) > 1e-9 {
			t.Errorf("round trip of %v gave %v", q, back)
		}
	}
}

func TestScreenToWorldSingular(t *testing.T) {
	w := newTestWorld()
	w.SetSize(100, 100)
	w.SetViewport(0, 100)

	if _, err := w.ScreenToWorld(geom.V(1, 1)); !errors.Is(err, ErrSingularTransform) {
		t.Errorf("err = %v, want ErrSingularTransform", err)
	}
	// Update must survive a degenerate window.
	w.Update()
}

func TestMouseInWorldSpace(t *testing.T) {
	w := newTestWorld()
	w.SetSize(100, 100)
	w.SetViewport(100, 100)
	w.Camera.MoveTo(5, 5)

	w.Controller().MoveMouse(50, 60)
	w.Controller().Refresh()
	w.Update()
	if got := w.Mouse(); !near(got, geom.V(5, 15)) {
		t.Errorf("Mouse() = %v, want (5,15)", got)
	}
}

func TestParseZoomMode(t *testing.T) {
	for _, z := range []ZoomMode{Stretch, Letterbox, Fill, Manual} {
		got, err := ParseZoomMode(z.String())
		if err != nil || got != z {
			t.Errorf("ParseZoomMode(%q) = %v, %v", z.String(), got, err)
		}
	}
	if _, err := ParseZoomMode("squash"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
