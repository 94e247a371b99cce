package stream

import (
	"math"
	"testing"
)

func TestGradientAt(t *testing.T) {
	g := Gradient{{Hue: 0, Pos: 0}, {Hue: 100, Pos: 0.5}, {Hue: 300, Pos: 1}}

	cases := []struct {
		t   float64
		hue float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 50},
		{0.5, 100},
		{0.75, 200},
		{2, 300},
	}
	for _, tc := range cases {
		h, c, l := g.At(tc.t, 0.5, 0.6).Hcl()
		if math.Abs(c-0.5) > 1e-3 || math.Abs(l-0.6) > 1e-3 {
			t.Errorf("At(%v): chroma %v luminance %v changed", tc.t, c, l)
		}
		if d := math.Abs(h - tc.hue); d > 1e-3 && math.Abs(d-360) > 1e-3 {
			t.Errorf("At(%v): hue %v, expected %v", tc.t, h, tc.hue)
		}
	}
}
