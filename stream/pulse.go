package stream

import (
	"fmt"
	"math/rand"

	"github.com/matt-g-everett/ledcube/util"
)

// Pulse is a terminating Animation that breathes the whole cube up to a
// random peak and back down once.
type Pulse struct {
	rng     *rand.Rand
	lut     []float64
	current int
	peak    float64
}

// NewPulse creates a Pulse lasting the given number of frames.
func NewPulse(rng *rand.Rand, frames int) *Pulse {
	p := new(Pulse)
	p.rng = rng
	p.lut = util.GenerateLut(frames)
	p.Reset()
	return p
}

func (p *Pulse) NextFrame(f *Frame) {
	if p.Ended() {
		return
	}

	v := uint8(p.peak * p.lut[p.current])
	for y := uint8(0); y < Size; y++ {
		f.FillLayer(y, v)
	}
	p.current++
}

// Reset rewinds the breath and picks a new peak.
func (p *Pulse) Reset() {
	p.current = 0
	p.peak = float64(128 + p.rng.Intn(128))
}

func (p *Pulse) Ended() bool {
	return p.current >= len(p.lut)
}

func (p *Pulse) String() string {
	return fmt.Sprintf("pulse(%d)", len(p.lut))
}
