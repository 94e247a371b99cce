package stream

import (
	"fmt"
	"math"
)

// Calibrate is a terminating Animation for checking the wiring. It walks the
// bits of each voxel's index from the most significant down, lighting the
// voxels whose current bit is clear, so every voxel shows a unique on/off
// sequence.
type Calibrate struct {
	holdFrames int
	litLength  int
	held       int
}

// NewCalibrate creates a Calibrate that holds each bit pattern for
// holdFrames frames.
func NewCalibrate(holdFrames int) *Calibrate {
	c := new(Calibrate)
	c.holdFrames = holdFrames
	c.Reset()
	return c
}

func (c *Calibrate) prepareFrame(f *Frame) {
	litlen := 1 << c.litLength
	f.EachMut(func(x, y, z uint8, v *uint8) {
		i := voxelIndex(x, y, z)
		if (i/litlen)%2 < 1 {
			*v = 255
		} else {
			*v = 0
		}
	})
}

// NextFrame shows the current bit pattern and moves to the next one once it
// has been held long enough.
func (c *Calibrate) NextFrame(f *Frame) {
	if c.Ended() {
		return
	}

	c.prepareFrame(f)
	c.held++
	if c.held >= c.holdFrames {
		c.held = 0
		c.litLength--
	}
}

func (c *Calibrate) Reset() {
	c.litLength = int(math.Ceil(math.Log2(float64(numVoxels))))
	c.held = 0
}

// Ended reports whether every bit has been shown.
func (c *Calibrate) Ended() bool {
	return c.litLength < 0
}

func (c *Calibrate) String() string {
	return fmt.Sprintf("calibrate(%d)", c.holdFrames)
}
