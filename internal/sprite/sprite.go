// Package sprite holds images used by entities: plain sprites, sprite sheets
// cut into a grid of frames, time-driven animations and a named image store.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"iter"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// ErrInvalidGrid is returned when a sheet is divided into fewer than one row or column.
var ErrInvalidGrid = errors.New("sprite: rows and cols must be at least 1")

// Source is anything that can give the frame to show at a given time.
type Source interface {
	// Current returns the frame to draw at now.
	Current(now time.Time) *Sprite
	// Shape returns the hit shape of the frame currently shown.
	Shape() geom.Shape
}

// Sprite is an image, optionally divided into rows×cols equal frames. Each
// frame is itself a Sprite; an undivided sprite is its own frame 0.
type Sprite struct {
	img        image.Image
	rows, cols int
	frames     []*Sprite
	hitbox     geom.Shape
}

// New wraps img as a single-frame sprite.
func New(img image.Image) *Sprite {
	s := &Sprite{img: img, rows: 1, cols: 1}
	s.frames = []*Sprite{s}
	return s
}

// NewSheet divides img into rows×cols frames. Frames are cropped here, once.
func NewSheet(img image.Image, rows, cols int) (*Sprite, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, rows, cols)
	}
	if rows == 1 && cols == 1 {
		return New(img), nil
	}
	s := &Sprite{img: img, rows: rows, cols: cols}
	for _, sub := range Divide(img, rows, cols) {
		s.frames = append(s.frames, New(sub))
	}
	return s, nil
}

// MustSheet is like NewSheet but panics on an invalid grid.
func MustSheet(img image.Image, rows, cols int) *Sprite {
	s, err := NewSheet(img, rows, cols)
	if err != nil {
		panic(err)
	}
	return s
}

// Divide crops img into rows×cols images in row-major order.
func Divide(img image.Image, rows, cols int) []image.Image {
	if rows < 1 || cols < 1 {
		return nil
	}
	b := img.Bounds()
	fw, fh := b.Dx()/cols, b.Dy()/rows
	out := make([]image.Image, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r := image.Rect(b.Min.X+x*fw, b.Min.Y+y*fh, b.Min.X+(x+1)*fw, b.Min.Y+(y+1)*fh)
			out = append(out, crop(img, r))
		}
	}
	return out
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func crop(img image.Image, r image.Rectangle) image.Image {
	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

// Image returns the image of frame 0, the part of a sheet that matches its
// Size and Shape. A nil sprite has no image.
func (s *Sprite) Image() image.Image {
	if s == nil {
		return nil
	}
	return s.frames[0].img
}

// SheetImage returns the full, undivided image.
func (s *Sprite) SheetImage() image.Image {
	if s == nil {
		return nil
	}
	return s.img
}

// Rows returns the number of frame rows.
func (s *Sprite) Rows() int { return s.rows }

// Cols returns the number of frame columns.
func (s *Sprite) Cols() int { return s.cols }

// Len returns the number of frames.
func (s *Sprite) Len() int {
	return len(s.frames)
}

// Frame returns frame i, counted left to right then top to bottom.
// It panics when i is out of range.
func (s *Sprite) Frame(i int) *Sprite {
	if i < 0 || i >= len(s.frames) {
		panic(fmt.Sprintf("sprite: frame index %d out of range [0,%d)", i, len(s.frames)))
	}
	return s.frames[i]
}

// FrameImage returns the image of frame i. It panics when i is out of range.
func (s *Sprite) FrameImage(i int) image.Image {
	return s.Frame(i).img
}

// At returns the frame at grid position (row, col). It panics when out of range.
func (s *Sprite) At(row, col int) *Sprite {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		panic(fmt.Sprintf("sprite: grid position (%d,%d) out of range %dx%d", row, col, s.rows, s.cols))
	}
	return s.frames[s.cols*row+col]
}

// Frames iterates over all frames with their index.
func (s *Sprite) Frames() iter.Seq2[int, *Sprite] {
	return func(yield func(int, *Sprite) bool) {
		for i, f := range s.frames {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Size returns the pixel size of one frame.
func (s *Sprite) Size() (w, h int) {
	if s == nil || s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx() / s.cols, b.Dy() / s.rows
}

// Shape returns the hitbox if one was set, otherwise a rectangle matching the
// frame size centered on the origin. A nil sprite has no shape.
func (s *Sprite) Shape() geom.Shape {
	if s == nil {
		return nil
	}
	if s.hitbox != nil {
		return s.hitbox
	}
	w, h := s.Size()
	return geom.Centered(float64(w), float64(h))
}

// SetHitbox overrides the hit shape of this sprite. The shape must be
// centered on the origin.
func (s *Sprite) SetHitbox(shape geom.Shape) {
	s.hitbox = shape
}

// Current returns s; a plain sprite does not change over time. The sprite
// returned by a store for a missing image is nil and stays nil here.
func (s *Sprite) Current(time.Time) *Sprite {
	return s
}
