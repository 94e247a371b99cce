package stream

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// A Twinkle is an Animation that lights random voxels, moving one of them
// every frame.
type Twinkle struct {
	rng          *rand.Rand
	numParticles int
	foreColour   colorful.Color
	backColour   colorful.Color

	initialised bool
	particles   []int
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(rng *rand.Rand, numParticles int, level uint8) *Twinkle {
	t := new(Twinkle)
	t.rng = rng
	t.numParticles = numParticles
	t.foreColour = grey(level)
	t.backColour = colorful.Color{}

	t.initialised = false
	t.particles = make([]int, numParticles)

	return t
}

// NextFrame redraws the particles.
func (t *Twinkle) NextFrame(f *Frame) {
	if !t.initialised {
		for i := range t.particles {
			t.particles[i] = t.rng.Intn(numVoxels)
		}
		t.initialised = true
	} else if len(t.particles) > 0 {
		t.particles[t.rng.Intn(len(t.particles))] = t.rng.Intn(numVoxels)
	}

	var lit [numVoxels]bool
	for _, p := range t.particles {
		lit[p] = true
	}

	f.EachMut(func(x, y, z uint8, v *uint8) {
		if lit[voxelIndex(x, y, z)] {
			*v = luminance(t.foreColour)
		} else {
			*v = luminance(t.backColour)
		}
	})
}

// Reset forgets the particles; the next frame scatters a fresh set.
func (t *Twinkle) Reset() {
	t.initialised = false
}

func (t *Twinkle) String() string {
	return fmt.Sprintf("twinkle(%d)", t.numParticles)
}

// voxelIndex is the position of (x, y, z) in layer, row, column order.
func voxelIndex(x, y, z uint8) int {
	return int(y)*Size*Size + int(x)*Size + int(z)
}
