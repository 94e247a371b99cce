package dither

import (
	"fmt"
	"math"
)

// GammaTable maps raw brightness to gamma-corrected brightness.
type GammaTable [256]uint8

// NewGammaTable evaluates round(255 * (i/255)^gamma) for every input. The
// table is non-decreasing with t[0] == 0 and t[255] == 255.
func NewGammaTable(gamma float64) (GammaTable, error) {
	var t GammaTable
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return t, fmt.Errorf("gamma must be a positive number, got %v", gamma)
	}

	for i := range t {
		v := math.Round(255 * math.Pow(float64(i)/255, gamma))
		t[i] = uint8(math.Min(255, math.Max(0, v)))
	}
	return t, nil
}

// Correct returns the corrected value of b.
func (t *GammaTable) Correct(b uint8) uint8 {
	return t[b]
}
