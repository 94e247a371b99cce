package dither

const (
	threshold = 127
	fullOn    = 255

	// noiseTaps is the feedback mask of the 16-bit Galois LFSR.
	noiseTaps = 0x428e
)

// Diffuser is an error-diffusion Ditherer working along time instead of
// space. Every voxel carries the brightness it still owes. Each pass the
// candidate is the new brightness plus the owed amount plus ±1 of
// pseudo-random noise; the voxel is lit when the candidate passes the mid
// threshold and the candidate minus the output is carried forward.
//
// Brightness 0 is always off and 255 always on, without touching the carried
// error. For every other level the error stays within [-127, 127].
type Diffuser struct {
	noise uint16
	errs  []int16
}

// NewDiffuser creates a Diffuser for the given number of voxels. A zero seed
// is replaced with 1, since the noise generator would never leave zero.
func NewDiffuser(voxels int, seed uint16) *Diffuser {
	if seed == 0 {
		seed = 1
	}
	return &Diffuser{
		noise: seed,
		errs:  make([]int16, voxels),
	}
}

// nextNoise advances the LFSR and returns -1 or +1.
func (d *Diffuser) nextNoise() int16 {
	d.noise = (d.noise >> 1) ^ (-(d.noise & 1) & noiseTaps)
	if d.noise == 0 {
		d.noise = 1
	}
	return int16(d.noise&1)<<1 - 1
}

// Decide reports whether voxel idx is lit this pass.
func (d *Diffuser) Decide(idx int, brightness uint8) bool {
	noise := d.nextNoise()
	switch brightness {
	case 0:
		return false
	case fullOn:
		return true
	}

	candidate := int16(brightness) + d.errs[idx] + noise
	on := candidate > threshold
	if on {
		candidate -= fullOn
	}
	d.errs[idx] = candidate
	return on
}

// Advance is a no-op: the noise moves on every decision.
func (d *Diffuser) Advance() {}

// Err returns the error carried by voxel idx.
func (d *Diffuser) Err(idx int) int16 {
	return d.errs[idx]
}
