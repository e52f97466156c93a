package qoi

import (
	"image/color"
	"testing"
)

func TestHash(t *testing.T) {
	for _, tc := range []struct {
		px   color.NRGBA
		hash uint8
	}{
		{px: color.NRGBA{}, hash: 0},
		{px: startPixel, hash: 53},
		{px: color.NRGBA{R: 1, G: 2, B: 3, A: 255}, hash: 23},
		{px: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, hash: 38},
	} {
		if actual := hash(tc.px); actual != tc.hash {
			t.Fatalf("invalid hash of %+v: expected %d, actual %d", tc.px, tc.hash, actual)
		}
	}
}

func TestCache(t *testing.T) {
	var c cache
	px := color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	if _, ok := c.lookup(px); ok {
		t.Fatal("empty cache must not hold pixel")
	}
	c.store(px)
	index, ok := c.lookup(px)
	if !ok || index != hash(px) {
		t.Fatalf("stored pixel not found: index %d, ok %v", index, ok)
	}
	if _, ok := c.lookup(color.NRGBA{}); !ok {
		t.Fatal("zero pixel must be found in an untouched slot")
	}
}
