package stream

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop pins a hue to a position in [0, 1].
type GradientStop struct {
	Hue float64
	Pos float64
}

// A Gradient is a list of stops sorted by Pos. Hue is interpolated linearly
// between neighbouring stops.
type Gradient []GradientStop

// At returns the HCL colour at position t with the given chroma and
// luminance. Positions outside the stops take the hue of the nearest end.
func (g Gradient) At(t, chroma, lum float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Hcl(0, chroma, lum)
	}

	i := sort.Search(len(g), func(i int) bool { return g[i].Pos >= t })
	switch {
	case i == 0:
		return colorful.Hcl(g[0].Hue, chroma, lum)
	case i == len(g):
		return colorful.Hcl(g[len(g)-1].Hue, chroma, lum)
	}

	lo, hi := g[i-1], g[i]
	frac := (t - lo.Pos) / (hi.Pos - lo.Pos)
	return colorful.Hcl(lo.Hue+frac*(hi.Hue-lo.Hue), chroma, lum)
}
