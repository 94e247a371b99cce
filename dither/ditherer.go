package dither

// A Ditherer decides, pass by pass, whether a voxel is lit.
//
// Decide is called once per voxel per pass with the voxel's linear index.
// Advance is called once after every complete pass over the display.
type Ditherer interface {
	Decide(idx int, brightness uint8) bool
	Advance()
}
