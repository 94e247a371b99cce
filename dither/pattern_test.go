package dither

import (
	"math/bits"
	"testing"
)

func TestPatternLevels(t *testing.T) {
	if patterns[0] != 0 {
		t.Errorf("level 0 = %032b, expected all off", patterns[0])
	}
	if patterns[Slots-1] != 0xffffffff {
		t.Errorf("level 31 = %032b, expected all on", patterns[Slots-1])
	}
	for level, p := range patterns {
		if got, expected := bits.OnesCount32(p), level*Slots/(Slots-1); got != expected {
			t.Errorf("level %d has %d bits set, expected %d", level, got, expected)
		}
	}
}

func TestPatternerCycle(t *testing.T) {
	p := NewPatterner()

	for _, b := range []uint8{0, 8, 100, 128, 200, 255} {
		ons := 0
		for i := 0; i < Slots; i++ {
			if p.Decide(0, b) {
				ons++
			}
			p.Advance()
		}
		if p.Slot() != 0 {
			t.Fatalf("slot %d after a full cycle", p.Slot())
		}

		level := int(b >> 3)
		if expected := level * Slots / (Slots - 1); ons != expected {
			t.Errorf("brightness %d lit %d of %d passes, expected %d", b, ons, Slots, expected)
		}
	}
}

func TestPatternerIgnoresIndex(t *testing.T) {
	p := NewPatterner()
	p.Advance()
	p.Advance()
	for idx := 0; idx < 512; idx++ {
		if p.Decide(idx, 150) != p.Decide(0, 150) {
			t.Fatalf("voxel %d decided differently", idx)
		}
	}
}
