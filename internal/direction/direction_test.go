package direction

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 45, 45},
		{"upper bound stays", 180, 180},
		{"lower bound wraps", -180, 180},
		{"just past upper", 181, -179},
		{"full turn", 360, 0},
		{"negative full turn", -360, 0},
		{"many turns", 3*360 + 90, 90},
		{"many negative turns", -5*360 - 90, -90},
		{"odd half turns", 540, 180},
		{"negative odd half turns", -540, 180},
		{"fraction", 359.5, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDegrees(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDegreesRangeAndPeriod(t *testing.T) {
	for d := -1000.0; d <= 1000; d += 7.25 {
		n := NormalizeDegrees(d)
		if n <= -180 || n > 180 {
			t.Fatalf("NormalizeDegrees(%v) = %v, out of (-180, 180]", d, n)
		}
		for k := -3; k <= 3; k++ {
			shifted := NormalizeDegrees(d + 360*float64(k))
			if math.Abs(shifted-n) > 1e-9 {
				t.Errorf("NormalizeDegrees(%v + 360*%d) = %v, want %v", d, k, shifted, n)
			}
		}
	}
}

func TestNormalizeRadians(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		got := NormalizeRadians(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeRadians(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got <= -math.Pi || got > math.Pi+1e-12 {
			t.Errorf("NormalizeRadians(%v) = %v, out of range", tt.in, got)
		}
	}
}

func TestNormalizeNotFinite(t *testing.T) {
	if !math.IsNaN(NormalizeDegrees(math.Inf(1))) {
		t.Error("expected NaN for +Inf")
	}
	if !math.IsNaN(NormalizeDegrees(math.NaN())) {
		t.Error("expected NaN for NaN")
	}
}

func TestDegrees(t *testing.T) {
	want := map[Direction]float64{
		East: 0, SouthEast: 45, South: 90, SouthWest: 135,
		West: 180, NorthWest: -135, North: -90, NorthEast: -45,
	}
	for d, deg := range want {
		if d.Degrees() != deg {
			t.Errorf("%v.Degrees() = %v, want %v", d, d.Degrees(), deg)
		}
		if math.Abs(d.Radians()-deg*math.Pi/180) > 1e-12 {
			t.Errorf("%v.Radians() = %v", d, d.Radians())
		}
	}
}

func TestOpposite(t *testing.T) {
	for _, d := range All() {
		o := d.Opposite()
		if o.Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, o.Opposite())
		}
		diff := NormalizeDegrees(o.Degrees() - d.Degrees())
		if diff != 180 {
			t.Errorf("%v and %v differ by %v degrees, want 180", d, o, diff)
		}
	}
	if North.Opposite() != South || East.Opposite() != West || NorthEast.Opposite() != SouthWest {
		t.Error("unexpected opposite mapping")
	}
}

func TestCardinalsOrdinals(t *testing.T) {
	for _, d := range Cardinals() {
		if !d.IsCardinal() {
			t.Errorf("%v should be cardinal", d)
		}
	}
	for _, d := range Ordinals() {
		if d.IsCardinal() {
			t.Errorf("%v should not be cardinal", d)
		}
	}
	if len(Cardinals())+len(Ordinals()) != len(All()) {
		t.Error("cardinals and ordinals should cover all directions")
	}
}

func TestVectorMatchesDegrees(t *testing.T) {
	for _, d := range All() {
		dx, dy := d.Vector()
		got := math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi
		if math.Abs(NormalizeDegrees(got)-d.Degrees()) > 1e-9 {
			t.Errorf("%v.Vector() points at %v degrees, want %v", d, got, d.Degrees())
		}
	}
}
