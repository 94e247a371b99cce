package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the edge length of the cube in voxels.
const Size = 8

const numVoxels = Size * Size * Size

// Frame represents one frame of voxel brightness values for the cube.
//
// Voxels are stored layer first: voxels[y][x][z], where y is the layer, x the
// row within the layer and z the column. Coordinates must be in [0, Size);
// anything larger panics, the buffer has a fixed topology.
type Frame struct {
	voxels [Size][Size][Size]uint8
}

// NewFrame creates a new Frame instance with every voxel off.
func NewFrame() *Frame {
	f := new(Frame)
	return f
}

// Get returns the brightness at (x, y, z).
func (f *Frame) Get(x, y, z uint8) uint8 {
	return f.voxels[y][x][z]
}

// Set stores the brightness at (x, y, z).
func (f *Frame) Set(x, y, z, v uint8) {
	f.voxels[y][x][z] = v
}

// SetColor stores the luminance of c at (x, y, z).
func (f *Frame) SetColor(x, y, z uint8, c colorful.Color) {
	f.Set(x, y, z, luminance(c))
}

func luminance(c colorful.Color) uint8 {
	_, _, l := c.Clamped().Hcl()
	return uint8(math.Round(math.Max(0, math.Min(1, l)) * 255))
}

// Zero turns every voxel off.
func (f *Frame) Zero() {
	f.voxels = [Size][Size][Size]uint8{}
}

// Layer gives direct access to one horizontal layer, indexed [x][z].
func (f *Frame) Layer(y uint8) *[Size][Size]uint8 {
	return &f.voxels[y]
}

// FillLayer sets every voxel of layer y to v.
func (f *Frame) FillLayer(y, v uint8) {
	l := &f.voxels[y]
	for x := range l {
		for z := range l[x] {
			l[x][z] = v
		}
	}
}

// Each calls fn for every voxel in layer, row, column order.
func (f *Frame) Each(fn func(x, y, z, v uint8)) {
	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			for z := uint8(0); z < Size; z++ {
				fn(x, y, z, f.voxels[y][x][z])
			}
		}
	}
}

// EachMut calls fn with a pointer to every voxel so it can be rewritten in place.
func (f *Frame) EachMut(fn func(x, y, z uint8, v *uint8)) {
	for y := uint8(0); y < Size; y++ {
		for x := uint8(0); x < Size; x++ {
			for z := uint8(0); z < Size; z++ {
				fn(x, y, z, &f.voxels[y][x][z])
			}
		}
	}
}

// CopyFrom overwrites f with the contents of src.
func (f *Frame) CopyFrom(src *Frame) {
	f.voxels = src.voxels
}

// MarshalBinary converts a Frame into binary data: a little-endian voxel
// count followed by one brightness byte per voxel in layer, row, column order.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, numVoxels+2)
	binary.LittleEndian.PutUint16(data, numVoxels)
	for y := range f.voxels {
		for x := range f.voxels[y] {
			data = append(data, f.voxels[y][x][:]...)
		}
	}

	return data, nil
}
