// Package direction provides the eight compass directions and angle
// normalization helpers shared by the engine and the games built on it.
//
// Screen coordinates grow downwards, so South is +90 degrees and North is -90.
package direction

import "math"

// Direction is one of the eight compass directions.
type Direction int

const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
)

var degrees = [...]float64{
	East:      0,
	SouthEast: 45,
	South:     90,
	SouthWest: 135,
	West:      180,
	NorthWest: -135,
	North:     -90,
	NorthEast: -45,
}

var names = [...]string{
	East:      "EAST",
	SouthEast: "SOUTHEAST",
	South:     "SOUTH",
	SouthWest: "SOUTHWEST",
	West:      "WEST",
	NorthWest: "NORTHWEST",
	North:     "NORTH",
	NorthEast: "NORTHEAST",
}

// All returns every direction, clockwise starting from East.
func All() []Direction {
	return []Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}
}

// Cardinals returns North, South, East and West.
func Cardinals() []Direction {
	return []Direction{North, South, East, West}
}

// Ordinals returns the four diagonal directions.
func Ordinals() []Direction {
	return []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
}

// Degrees returns the angle of the direction in (-180, 180].
func (d Direction) Degrees() float64 {
	return degrees[d]
}

// Radians returns the angle of the direction in (-Pi, Pi].
func (d Direction) Radians() float64 {
	return d.Degrees() / 180 * math.Pi
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// IsCardinal reports whether d is one of North, South, East or West.
func (d Direction) IsCardinal() bool {
	return d%2 == 0
}

// Vector returns the unit grid step for d.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	case North:
		return 0, -1
	default:
		return 1, -1
	}
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(names) {
		return "UNKNOWN"
	}
	return names[d]
}

// NormalizeDegrees reduces d into (-180, 180]. 180 stays 180 and -180 maps to 180.
func NormalizeDegrees(d float64) float64 {
	return normalize(d, 360)
}

// NormalizeRadians reduces r into (-Pi, Pi].
func NormalizeRadians(r float64) float64 {
	return normalize(r, 2*math.Pi)
}

func normalize(v, turn float64) float64 {
	half := turn / 2
	if v > -half && v <= half {
		return v
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return math.NaN()
	}
	v = math.Mod(v, turn)
	if v <= -half {
		v += turn
	} else if v > half {
		v -= turn
	}
	return v
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
