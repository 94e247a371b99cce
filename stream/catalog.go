package stream

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// A Constructor builds an animation that owns rng.
type Constructor func(rng *rand.Rand) Animation

var catalog = map[string]Constructor{
	"twinkle": func(rng *rand.Rand) Animation {
		return NewTwinkle(rng, 40, 200)
	},
	"multitwinkle": func(rng *rand.Rand) Animation {
		return NewMultiTwinkle(rng, 400, []uint8{4, 12, 24}, nil)
	},
	"streak": func(rng *rand.Rand) Animation {
		return NewStreak(rng, 12, 40)
	},
	"gradienttrail": func(rng *rand.Rand) Animation {
		return NewGradientTrail(rainbow, 24)
	},
	"infinitystripe": func(rng *rand.Rand) Animation {
		return NewInfinityStripe(rng, 0.05)
	},
	"calibrate": func(rng *rand.Rand) Animation {
		return NewCalibrate(20)
	},
	"sweep": func(rng *rand.Rand) Animation {
		return NewSweep(rng, 90)
	},
	"pulse": func(rng *rand.Rand) Animation {
		return NewPulse(rng, 96)
	},
}

var rainbow = Gradient{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquoise
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// NewAnimation builds the named animation from the catalog.
func NewAnimation(name string, rng *rand.Rand) (Animation, error) {
	ctor, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown animation %q", name)
	}
	return ctor(rng), nil
}

// AnimationNames lists the catalog in alphabetical order.
func AnimationNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// grey is the luminance of a neutral grey of the given 8-bit level.
func grey(level uint8) colorful.Color {
	v := float64(level) / 255
	return colorful.Color{R: v, G: v, B: v}
}
