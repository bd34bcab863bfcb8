package input

import "strings"

// Key is a backend-independent key name. Backends translate their own key
// codes into these names: lowercase letters and digits for printable keys,
// and the constants below for the rest.
type Key string

const (
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyEscape    Key = "esc"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyShift     Key = "shift"
)

// ParseKey normalizes a key name: it lowercases it, maps " " to space and
// accepts a few common aliases, including desktop key names such as
// "Digit1" and "ShiftLeft".
func ParseKey(name string) Key {
	switch name {
	case " ":
		return KeySpace
	}
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "arrowup":
		return KeyUp
	case "arrowdown":
		return KeyDown
	case "arrowleft":
		return KeyLeft
	case "arrowright":
		return KeyRight
	case "escape":
		return KeyEscape
	case "return":
		return KeyEnter
	case "shiftleft", "shiftright":
		return KeyShift
	}
	if d, ok := strings.CutPrefix(n, "digit"); ok && len(d) == 1 {
		return Key(d)
	}
	return Key(n)
}

func (k Key) String() string {
	return string(k)
}

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}
