package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Named colors used by the engine and the games.
var (
	Black     = color.RGBA{0, 0, 0, 255}
	White     = color.RGBA{255, 255, 255, 255}
	Gray      = color.RGBA{128, 128, 128, 255}
	DarkGray  = color.RGBA{64, 64, 64, 255}
	LightGray = color.RGBA{192, 192, 192, 255}
	Red       = color.RGBA{255, 0, 0, 255}
	Green     = color.RGBA{0, 255, 0, 255}
	Blue      = color.RGBA{0, 0, 255, 255}
	Yellow    = color.RGBA{255, 255, 0, 255}
	Orange    = color.RGBA{255, 200, 0, 255}
	Magenta   = color.RGBA{255, 0, 255, 255}
	Cyan      = color.RGBA{0, 255, 255, 255}
	Pink      = color.RGBA{255, 175, 175, 255}
	Clear     = color.RGBA{}
)

var named = map[string]color.RGBA{
	"black":     Black,
	"white":     White,
	"gray":      Gray,
	"grey":      Gray,
	"darkgray":  DarkGray,
	"lightgray": LightGray,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"yellow":    Yellow,
	"orange":    Orange,
	"magenta":   Magenta,
	"cyan":      Cyan,
	"pink":      Pink,
	"clear":     Clear,
}

// ParseColor accepts a color name ("magenta") or a hex value ("#ff00ff",
// "#ff00ff80", "#f0f").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	nc := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(nc).(color.RGBA), nil
}
