package util

import (
	"math/rand"
	"testing"
)

func TestGenerateLut(t *testing.T) {
	for _, length := range []int{2, 11, 12, 96} {
		lut := GenerateLut(length)
		if len(lut) != length {
			t.Fatalf("len = %d, expected %d", len(lut), length)
		}
		if lut[0] != 0 {
			t.Errorf("length %d: lut[0] = %v, expected 0", length, lut[0])
		}
		for i := range lut {
			if lut[i] != lut[length-1-i] {
				t.Errorf("length %d: not symmetric at %d", length, i)
			}
			if lut[i] < 0 || lut[i] > 1 {
				t.Errorf("length %d: lut[%d] = %v out of range", length, i, lut[i])
			}
		}
	}

	if lut := GenerateLut(11); lut[5] != 1 {
		t.Errorf("odd length should peak at 1, got %v", lut[5])
	}
}

func TestGenerateLutMemoized(t *testing.T) {
	m := Memoizer{}
	a := GenerateLutMemoized(20, m)
	b := GenerateLutMemoized(20, m)
	if &a[0] != &b[0] {
		t.Error("expected the cached table to be returned")
	}
	if len(m) != 1 {
		t.Errorf("memoizer holds %d tables, expected 1", len(m))
	}
}

func TestRandomiseSaturation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		if v := RandomiseSaturation(rng, 0.4, 0.9); v < 0.4 || v >= 0.9 {
			t.Fatalf("value %v outside [0.4, 0.9)", v)
		}
	}
}
