package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock shows the upper pixel of a cell as foreground and the lower one
// as background.
const halfBlock = '▀'

// CanvasSize returns the canvas size in pixels for a terminal of cols×rows
// cells. One row is kept for the HUD.
func CanvasSize(cols, rows int) (w, h int) {
	return max(cols, 1), max(rows-1, 1) * 2
}

// cell is the color pair of one character.
type cell struct {
	top, bottom color.RGBA
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// RenderCanvas converts a canvas image to a styled string of half-block
// characters. Adjacent cells with the same colors are grouped to minimize
// ANSI escape sequences. An odd last pixel row is paired with black.
func RenderCanvas(img *image.RGBA) string {
	b := img.Bounds()
	rows := (b.Dy() + 1) / 2
	var sb strings.Builder
	sb.Grow(b.Dx()*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		y := b.Min.Y + 2*row

		x := b.Min.X
		for x < b.Max.X {
			start := cellAt(img, x, y)
			n := 0
			for x < b.Max.X && cellAt(img, x, y) == start {
				n++
				x++
			}
			style := lipgloss.NewStyle().
				Foreground(hex(start.top)).
				Background(hex(start.bottom))
			sb.WriteString(style.Render(strings.Repeat(string(halfBlock), n)))
		}
	}
	return sb.String()
}

func cellAt(img *image.RGBA, x, y int) cell {
	c := cell{top: img.RGBAAt(x, y)}
	if y+1 < img.Bounds().Max.Y {
		c.bottom = img.RGBAAt(x, y+1)
	}
	c.top.A, c.bottom.A = 0xff, 0xff
	return c
}
