// Package dither turns 8-bit brightness into on/off decisions for LEDs that
// can only be fully on or fully off.
//
// A display refreshes many times per logical frame. Each refresh ("pass")
// asks a Ditherer whether a voxel is lit; averaged over passes the duty cycle
// approximates the requested brightness. GammaTable corrects brightness for
// the eye before it reaches the ditherer.
package dither
