package dither

// Slots is the length of the Patterner cycle.
const Slots = 32

// patterns[l] has l*Slots/31 bits set, spread as evenly as possible over the
// cycle. Level 31 is fully on.
var patterns = buildPatterns()

func buildPatterns() [Slots]uint32 {
	var p [Slots]uint32
	for level := range p {
		for i := 0; i < Slots; i++ {
			if (i+1)*level/(Slots-1) > i*level/(Slots-1) {
				p[level] |= 1 << uint(i)
			}
		}
	}
	return p
}

// Patterner is a stateless-per-voxel Ditherer: brightness is quantised to 32
// levels and each level plays a fixed pattern over a 32-pass cycle.
type Patterner struct {
	slot int
}

// NewPatterner creates a Patterner at the start of its cycle.
func NewPatterner() *Patterner {
	return &Patterner{}
}

func (p *Patterner) Decide(_ int, brightness uint8) bool {
	return patterns[brightness>>3]>>uint(p.slot)&1 == 1
}

// Advance moves to the next slot of the cycle.
func (p *Patterner) Advance() {
	p.slot = (p.slot + 1) % Slots
}

// Slot returns the current position in the cycle.
func (p *Patterner) Slot() int {
	return p.slot
}
