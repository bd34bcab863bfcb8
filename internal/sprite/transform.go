package sprite

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// TransformImage returns img mapped through m around its center. The result
// is sized to fit the transformed image. A singular m yields nil.
func TransformImage(img image.Image, m geom.Affine) image.Image {
	if _, ok := m.Invert(); !ok {
		return nil
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	// center the source on the origin before applying m
	centered := m.Translate(-w/2-float64(b.Min.X), -h/2-float64(b.Min.Y))
	corners := geom.Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), W: w, H: h}.Transform(centered).Bounds()

	// trim rounding noise so a quarter turn keeps exact pixel sizes
	dw := int(math.Ceil(corners.W - 1e-6))
	dh := int(math.Ceil(corners.H - 1e-6))
	if dw <= 0 || dh <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	s2d := geom.Translation(-corners.X, -corners.Y).Mul(centered)
	draw.ApproxBiLinear.Transform(dst, s2d.Aff3(), img, b, draw.Over, nil)
	return dst
}

// Rotate returns img rotated by deg degrees (clockwise on screen).
func Rotate(img image.Image, deg float64) image.Image {
	return TransformImage(img, geom.Rotation(deg*math.Pi/180))
}

// Scale returns img scaled by (sx, sy). Negative factors mirror the image.
func Scale(img image.Image, sx, sy float64) image.Image {
	return TransformImage(img, geom.Scaling(sx, sy))
}
