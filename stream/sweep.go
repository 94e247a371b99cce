package stream

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Sweep is a terminating Animation that eases a glowing plane once across
// the cube along a random axis.
type Sweep struct {
	rng      *rand.Rand
	frames   int
	axis     int
	reverse  bool
	tween    *gween.Tween
	position float32
	finished bool
}

// NewSweep creates a Sweep that crosses the cube in the given number of frames.
func NewSweep(rng *rand.Rand, frames int) *Sweep {
	s := new(Sweep)
	s.rng = rng
	s.frames = frames
	s.Reset()
	return s
}

// NextFrame moves the plane one frame along its tween.
func (s *Sweep) NextFrame(f *Frame) {
	if s.finished {
		return
	}

	s.position, s.finished = s.tween.Update(1)

	f.EachMut(func(x, y, z uint8, v *uint8) {
		coord := [3]uint8{x, y, z}[s.axis]
		d := math.Abs(float64(coord) - float64(s.position))
		if d >= 1 {
			*v = 0
			return
		}
		*v = uint8(255 * (1 - d))
	})
}

// Reset picks a new axis and direction and rewinds the tween.
func (s *Sweep) Reset() {
	s.axis = s.rng.Intn(3)
	s.reverse = s.rng.Intn(2) == 0

	begin, end := float32(-1), float32(Size)
	if s.reverse {
		begin, end = end, begin
	}
	s.tween = gween.New(begin, end, float32(s.frames), ease.InOutQuad)
	s.position = begin
	s.finished = false
}

// Ended reports whether the plane has left the cube.
func (s *Sweep) Ended() bool {
	return s.finished
}

func (s *Sweep) String() string {
	return fmt.Sprintf("sweep(%d)", s.frames)
}
