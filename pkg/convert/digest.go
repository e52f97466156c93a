package convert

import (
	"image/color"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the xxhash64 of the pixel stream, 4 bytes per pixel in RGBA order.
// It also returns the number of pixels hashed.
func Digest(pixels iter.Seq[color.NRGBA]) (uint64, uint64) {
	d := xxhash.New()
	var buf [4]byte
	n := uint64(0)
	for px := range pixels {
		buf[0], buf[1], buf[2], buf[3] = px.R, px.G, px.B, px.A
		d.Write(buf[:])
		n++
	}
	return d.Sum64(), n
}
