package stream

import (
	"fmt"
	"math"
)

// A GradientTrail is an Animation that rolls a gradient up through the
// layers of the cube. Luminance rises along the trail, so on a monochrome
// cube it reads as a brightness ramp.
type GradientTrail struct {
	gradient    Gradient
	current     float64
	trailLength int
}

// NewGradientTrail creates an instance of a GradientTrail object. The trail
// length is measured in rows; the cube has Size*Size of them.
func NewGradientTrail(gradient Gradient, trailLength int) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.current = 0

	return g
}

// NextFrame paints every row by its position along the trail.
func (g *GradientTrail) NextFrame(f *Frame) {
	chroma := 1.0
	trail := float64(g.trailLength)
	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			row := float64(int(y)*Size + int(x))
			t := math.Mod(row+trail-g.current, trail) / trail
			c := g.gradient.At(t, chroma, 0.05+0.6*t)
			v := luminance(c)
			for z := uint8(0); z < Size; z++ {
				f.Set(x, y, z, v)
			}
		}
	}

	g.current += 0.5
	g.current = math.Mod(g.current, trail)
}

func (g *GradientTrail) Reset() {
	g.current = 0
}

func (g *GradientTrail) String() string {
	return fmt.Sprintf("gradienttrail(%d)", g.trailLength)
}
