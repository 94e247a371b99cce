package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// RandomiseSaturation picks a value uniformly in [min, max).
func RandomiseSaturation(rng *rand.Rand, min float64, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// GenerateLut builds a rise-and-fall gain table of the given length, eased
// in and out on both halves.
func GenerateLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	if length%2 == 1 {
		lut[length/2] = 1
	}
	return lut
}

// Memoizer caches LUTs by length.
type Memoizer map[int][]float64

// GenerateLutMemoized returns the cached LUT for length, building it on first use.
func GenerateLutMemoized(length int, memoizer Memoizer) []float64 {
	if lut, ok := memoizer[length]; ok {
		return lut
	}
	lut := GenerateLut(length)
	memoizer[length] = lut
	return lut
}
