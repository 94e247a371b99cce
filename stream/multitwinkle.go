package stream

import (
	"fmt"
	"math/rand"

	"github.com/matt-g-everett/ledcube/util"
)

const scintillationPeak = 160.0

type multiParticle struct {
	rng       *rand.Rand
	staticLut []float64
	lut       []float64
	memoizer  util.Memoizer
	current   int
	running   bool
	level     uint8
	nextLevel uint8
}

func newMultiParticle(rng *rand.Rand, level uint8, lut []float64, memoizer util.Memoizer) *multiParticle {
	p := new(multiParticle)

	p.rng = rng
	p.level = level
	p.nextLevel = level
	p.staticLut = lut
	p.lut = lut
	p.memoizer = memoizer
	p.current = 0
	p.running = false

	p.updateLut()

	return p
}

func (p *multiParticle) updateLut() {
	if p.staticLut == nil {
		p.lut = util.GenerateLutMemoized((p.rng.Intn(18)+6)*2, p.memoizer)
	}
}

func (p *multiParticle) increment() {
	if p.running {
		p.current++
		if p.current > len(p.lut)/2 {
			p.level = p.nextLevel
		}

		if p.current >= len(p.lut)-1 {
			p.current = 0
			p.running = false

			// New LUT every time a scintillation finishes
			p.updateLut()
		}
	}
}

func (p *multiParticle) scintillate() bool {
	result := !p.running
	p.running = true
	return result
}

func (p *multiParticle) currentLevel() uint8 {
	if !p.running {
		return p.level
	}

	gain := p.lut[p.current]
	l := float64(p.level)
	return uint8(l + (scintillationPeak-l)*gain)
}

// A MultiTwinkle is an Animation where every voxel rests at a background
// level and now and then scintillates up to a peak and back, settling on a
// new background level.
type MultiTwinkle struct {
	rng                 *rand.Rand
	lut                 []float64
	backLevels          []uint8
	scintillationChance int32
	pixels              []*multiParticle
	memoizer            util.Memoizer
}

// NewMultiTwinkle creates an instance of a MultiTwinkle object. A nil lut
// gives each scintillation a random length.
func NewMultiTwinkle(rng *rand.Rand, scintillationChance int32, backLevels []uint8, lut []float64) *MultiTwinkle {
	t := new(MultiTwinkle)

	t.rng = rng
	t.lut = lut
	t.backLevels = backLevels
	t.scintillationChance = scintillationChance
	t.pixels = nil
	t.memoizer = util.Memoizer{}

	return t
}

func (t *MultiTwinkle) randomBackLevel() uint8 {
	return t.backLevels[t.rng.Intn(len(t.backLevels))]
}

// NextFrame advances every voxel's scintillation.
func (t *MultiTwinkle) NextFrame(f *Frame) {
	if t.pixels == nil {
		t.pixels = make([]*multiParticle, numVoxels)
		for i := range t.pixels {
			t.pixels[i] = newMultiParticle(t.rng, t.randomBackLevel(), t.lut, t.memoizer)
		}
	}

	f.EachMut(func(x, y, z uint8, v *uint8) {
		p := t.pixels[voxelIndex(x, y, z)]

		// Start scintillation by chance
		if t.rng.Int31n(t.scintillationChance) == 0 {
			if p.scintillate() {
				p.nextLevel = t.randomBackLevel()
			}
		}

		// Only affects voxels that are scintillating
		p.increment()

		*v = p.currentLevel()
	})
}

func (t *MultiTwinkle) Reset() {
	t.pixels = nil
}

func (t *MultiTwinkle) String() string {
	return fmt.Sprintf("multitwinkle(1/%d)", t.scintillationChance)
}
