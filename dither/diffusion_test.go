package dither

import "testing"

func TestDiffuserExtremes(t *testing.T) {
	d := NewDiffuser(2, 0xace1)
	for pass := 0; pass < 1000; pass++ {
		if d.Decide(0, 0) {
			t.Fatalf("brightness 0 lit on pass %d", pass)
		}
		if !d.Decide(1, 255) {
			t.Fatalf("brightness 255 dark on pass %d", pass)
		}
		d.Advance()
	}
}

func TestDiffuserTracksBrightness(t *testing.T) {
	const passes = 32

	for b := 1; b < 255; b++ {
		d := NewDiffuser(1, uint16(b)+1)
		ons := 0
		for pass := 0; pass < passes; pass++ {
			if d.Decide(0, uint8(b)) {
				ons++
			}
			if e := d.Err(0); e < -127 || e > 127 {
				t.Fatalf("brightness %d: error %d out of range", b, e)
			}
			d.Advance()
		}

		// Lit fraction within 1/passes of b/255.
		diff := ons*255 - passes*b
		if diff < -255 || diff > 255 {
			t.Errorf("brightness %d: %d of %d passes lit", b, ons, passes)
		}
	}
}

func TestDiffuserCarriesNoise(t *testing.T) {
	// The first draw from seed 1 is -1: 100 - 1 = 99 stays below the
	// threshold and is carried in full.
	d := NewDiffuser(1, 1)
	if d.Decide(0, 100) {
		t.Fatal("expected the voxel to stay off")
	}
	if got := d.Err(0); got != 99 {
		t.Errorf("Err(0) = %d, expected 99", got)
	}
}

func TestDiffuserExtremesKeepError(t *testing.T) {
	d := NewDiffuser(1, 1)
	d.Decide(0, 100)
	before := d.Err(0)

	for i := 0; i < 50; i++ {
		d.Decide(0, 0)
		d.Decide(0, 255)
	}
	if d.Err(0) != before {
		t.Errorf("Err(0) = %d after extremes, expected %d", d.Err(0), before)
	}
}

func TestDiffuserZeroSeed(t *testing.T) {
	d := NewDiffuser(1, 0)
	for i := 0; i < 100000; i++ {
		d.nextNoise()
		if d.noise == 0 {
			t.Fatalf("noise reached zero after %d steps", i)
		}
	}
}

func TestDiffuserNoiseIsBalanced(t *testing.T) {
	d := NewDiffuser(1, 1)
	sum := 0
	for i := 0; i < 10000; i++ {
		n := d.nextNoise()
		if n != 1 && n != -1 {
			t.Fatalf("noise %d is not ±1", n)
		}
		sum += int(n)
	}
	if sum < -2000 || sum > 2000 {
		t.Errorf("noise sum %d over 10000 steps is lopsided", sum)
	}
}
