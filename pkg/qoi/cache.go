package qoi

import (
	"image/color"
)

// The pixel every stream starts from.
var startPixel = color.NRGBA{A: 255}

// cache is the 64 slot table of previously resolved pixels. The zero value is the state at stream start.
type cache [cacheSize]color.NRGBA

// Generates a hash from the provided color. It is a number between 0 and 63.
func hash(px color.NRGBA) uint8 {
	return uint8((int(px.R)*3 + int(px.G)*5 + int(px.B)*7 + int(px.A)*11) % cacheSize)
}

// store remembers a resolved pixel. Pixels repeated by a run are not stored again.
func (c *cache) store(px color.NRGBA) {
	c[hash(px)] = px
}

// lookup reports whether px is the pixel currently held in its slot.
func (c *cache) lookup(px color.NRGBA) (uint8, bool) {
	i := hash(px)
	return i, c[i] == px
}
