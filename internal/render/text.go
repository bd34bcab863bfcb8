package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// Align selects which point of the text box sits on the anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var (
	fontOnce sync.Once
	boldFont *opentype.Font
	fontErr  error

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Face returns the bold Go font at the given point size. It falls back to
// the fixed 7x13 bitmap font if the TrueType data cannot be parsed.
func Face(size float64) font.Face {
	fontOnce.Do(func() {
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	if fontErr != nil || size <= 0 {
		return basicfont.Face7x13
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	faces[size] = f
	return f
}

// DrawText draws s with face so that its vertical middle sits on local y
// and its left, center or right edge on local x. Text is rasterized once
// and then mapped through the current transform, so it scales and rotates
// with the canvas.
func (c *Canvas) DrawText(s string, x, y float64, face font.Face, col color.Color, align Align) {
	if s == "" {
		return
	}
	if face == nil {
		face = basicfont.Face7x13
	}
	img := textImage(s, face, col)
	if img == nil {
		return
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	c.DrawImage(img, x, y-h/2)
}

// MeasureText returns the pixel size of s drawn with face.
func MeasureText(s string, face font.Face) geom.Vec {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	return geom.V(float64(font.MeasureString(face, s).Ceil()), float64((m.Ascent + m.Descent).Ceil()))
}

func textImage(s string, face font.Face, col color.Color) *image.RGBA {
	size := MeasureText(s, face)
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, int(size.X), int(size.Y)))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
	}
	d.DrawString(s)
	return img
}
