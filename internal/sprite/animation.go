package sprite

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// Animation cycles through a range of frames from a sheet at a fixed rate.
//
// Time is passed in by the caller. Each call to Current advances at most one
// frame, even when several frame delays have passed since the previous call:
// a stalled animation resumes where it stopped instead of skipping ahead.
type Animation struct {
	frames []*Sprite
	delay  time.Duration
	index  int
	last   time.Time
}

// NewAnimation animates every frame of sheet at fps frames per second.
func NewAnimation(sheet *Sprite, fps float64) *Animation {
	return NewAnimationRange(sheet, fps, 0, sheet.Len())
}

// NewAnimationRange animates frames [start, end) of sheet. It panics when the
// range is empty or outside the sheet, or fps is not positive.
func NewAnimationRange(sheet *Sprite, fps float64, start, end int) *Animation {
	if start < 0 || end > sheet.Len() || start >= end {
		panic(fmt.Sprintf("sprite: animation range [%d,%d) invalid for %d frames", start, end, sheet.Len()))
	}
	if fps <= 0 {
		panic(fmt.Sprintf("sprite: animation fps must be positive, got %v", fps))
	}
	frames := make([]*Sprite, 0, end-start)
	for i := start; i < end; i++ {
		frames = append(frames, sheet.Frame(i))
	}
	return &Animation{
		frames: frames,
		delay:  time.Duration(math.Round(1000/fps)) * time.Millisecond,
	}
}

// Delay returns the time each frame is shown.
func (a *Animation) Delay() time.Duration {
	return a.delay
}

// Len returns the number of frames in the animation.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Index returns the index of the frame currently shown.
func (a *Animation) Index() int {
	return a.index
}

// Current returns the frame to show at now. The first call starts the clock.
// Later calls advance one frame, wrapping, when more than one delay has
// passed since the last advance.
func (a *Animation) Current(now time.Time) *Sprite {
	switch {
	case a.last.IsZero():
		a.last = now
	case now.Sub(a.last) > a.delay:
		a.index = (a.index + 1) % len(a.frames)
		a.last = now
	}
	return a.frames[a.index]
}

// Frame returns animation frame i. It panics when i is out of range.
func (a *Animation) Frame(i int) *Sprite {
	if i < 0 || i >= len(a.frames) {
		panic(fmt.Sprintf("sprite: animation frame %d out of range [0,%d)", i, len(a.frames)))
	}
	return a.frames[i]
}

// Image returns the image of animation frame i.
func (a *Animation) Image(i int) image.Image {
	return a.Frame(i).Image()
}

// Reset rewinds to the first frame and restarts the clock on the next call.
func (a *Animation) Reset() {
	a.index = 0
	a.last = time.Time{}
}

// Shape returns the hit shape of the frame currently shown.
func (a *Animation) Shape() geom.Shape {
	return a.frames[a.index].Shape()
}
