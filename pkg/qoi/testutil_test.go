package qoi

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"math/rand"
)

// stream assembles a header, the given opcode bytes and the end marker.
func stream(h Header, ops ...byte) []byte {
	data, _ := h.MarshalBinary()
	data = append(data, ops...)
	return append(data, endMarker[:]...)
}

// countingReader counts the bytes read through it.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

var (
	errSinkFull  = errors.New("sink full")
	errTransport = errors.New("connection reset")
)

// brokenReader serves data and then fails with errTransport instead of io.EOF.
func brokenReader(data []byte) io.Reader {
	return io.MultiReader(bytes.NewReader(data), failingReader{})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errTransport
}

// limitedWriter accepts at most n bytes.
type limitedWriter struct {
	n      int
	writes int
}

func (l *limitedWriter) Write(p []byte) (int, error) {
	l.writes++
	if len(p) > l.n {
		n := l.n
		l.n = 0
		return n, errSinkFull
	}
	l.n -= len(p)
	return len(p), nil
}

// randomPixels generates pixels that exercise every opcode: repeats, small and large deltas,
// revisits and alpha changes.
func randomPixels(seed int64, n int) []color.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	pixels := make([]color.NRGBA, 0, n)
	prev := startPixel
	for len(pixels) < n {
		px := prev
		switch rnd.Intn(7) {
		case 0:
			// repeat
		case 1:
			px.R += uint8(rnd.Intn(4)) - 2
			px.G += uint8(rnd.Intn(4)) - 2
			px.B += uint8(rnd.Intn(4)) - 2
		case 2:
			dg := uint8(rnd.Intn(64)) - 32
			px.G += dg
			px.R += dg + uint8(rnd.Intn(16)) - 8
			px.B += dg + uint8(rnd.Intn(16)) - 8
		case 3:
			px.R, px.G, px.B = uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256))
		case 4:
			px.A = uint8(rnd.Intn(256))
		case 5:
			if len(pixels) > 0 {
				px = pixels[rnd.Intn(len(pixels))]
			}
		case 6:
			for i := rnd.Intn(70); i > 0 && len(pixels) < n-1; i-- {
				pixels = append(pixels, px)
			}
		}
		pixels = append(pixels, px)
		prev = px
	}
	return pixels
}
