package qoi

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"iter"
)

// Decoder reads the pixel stream of a QuiteOk image one pixel at a time.
// It holds all state of a single decode pass and is not safe for concurrent use.
type Decoder struct {
	r      io.Reader
	header Header

	px        color.NRGBA
	seen      cache
	run       uint8
	remaining uint64

	buf   [5]byte
	err   error
	stats Stats
}

// NewDecoder reads and validates the header from r. No decoder is returned if the header is invalid.
func NewDecoder(r io.Reader) (*Decoder, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		r:         r,
		header:    header,
		px:        startPixel,
		remaining: header.PixelCount(),
	}, nil
}

// Header returns the decoded header.
func (d *Decoder) Header() Header {
	return d.header
}

// Remaining returns the number of pixels not yet produced.
func (d *Decoder) Remaining() uint64 {
	return d.remaining
}

// Err returns the error that terminated the pass, or nil if the pass is still running or completed normally.
func (d *Decoder) Err() error {
	return d.err
}

// Stats returns the opcode counters of the pass so far.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// Next decodes the next pixel. It returns false once all pixels were produced or the stream failed,
// see Decoder.Err. Bytes after the last opcode are never read.
func (d *Decoder) Next() (color.NRGBA, bool) {
	if d.err != nil || d.remaining == 0 {
		return color.NRGBA{}, false
	}

	// handle other run iterations
	if d.run > 0 {
		d.run -= 1
		d.remaining -= 1
		d.stats.Pixels++
		return d.px, true
	}

	// decode new pixel
	if !d.read(d.buf[:1]) {
		return color.NRGBA{}, false
	}
	op := d.buf[0]
	switch {
	case op == OpRgb:
		if !d.read(d.buf[1:4]) {
			return color.NRGBA{}, false
		}
		// alpha stays, the encoder only uses OpRgb while alpha is unchanged
		d.px.R = d.buf[1]
		d.px.G = d.buf[2]
		d.px.B = d.buf[3]
		d.stats.count(OpRgb)
	case op == OpRgba:
		if !d.read(d.buf[1:5]) {
			return color.NRGBA{}, false
		}
		d.px = color.NRGBA{R: d.buf[1], G: d.buf[2], B: d.buf[3], A: d.buf[4]}
		d.stats.count(OpRgba)
	case op&opMask == OpIndex:
		d.px = d.seen[op&argMask]
		d.stats.count(OpIndex)
	case op&opMask == OpDiff:
		// uint8 arithmetic wraps around modulo 256
		d.px.R += (op>>4)&0b11 - 2
		d.px.G += (op>>2)&0b11 - 2
		d.px.B += (op>>0)&0b11 - 2
		d.stats.count(OpDiff)
	case op&opMask == OpLuma:
		if !d.read(d.buf[1:2]) {
			return color.NRGBA{}, false
		}
		dg := op&argMask - 32
		dr := (d.buf[1]>>4)&0b1111 - 8 + dg
		db := (d.buf[1]>>0)&0b1111 - 8 + dg
		d.px.R += dr
		d.px.G += dg
		d.px.B += db
		d.stats.count(OpLuma)
	case op&opMask == OpRun:
		// the first iteration is emitted right away, the run pixel was already cached
		d.run = op & argMask
		d.remaining -= 1
		d.stats.count(OpRun)
		d.stats.Pixels++
		return d.px, true
	default:
		d.err = fmt.Errorf("%w: %08b", ErrMalformedOpcode, op)
		return color.NRGBA{}, false
	}

	d.seen.store(d.px)
	d.remaining -= 1
	d.stats.Pixels++
	return d.px, true
}

// Pixels returns the remaining pixels as a single-use sequence. Stopping the iteration early leaves the
// decoder where it stopped. Check Decoder.Err after the loop.
func (d *Decoder) Pixels() iter.Seq[color.NRGBA] {
	return func(yield func(color.NRGBA) bool) {
		for {
			px, ok := d.Next()
			if !ok || !yield(px) {
				return
			}
		}
	}
}

// ReadEnd reads the end marker that follows the last opcode. It may only be called after all pixels were decoded.
func (d *Decoder) ReadEnd() error {
	if d.err != nil {
		return d.err
	}
	if d.remaining > 0 {
		return fmt.Errorf("%w: %d pixels not decoded", ErrInvalidEndMarker, d.remaining)
	}
	var buf [len(endMarker)]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return readError("end marker", err)
	}
	if !bytes.Equal(buf[:], endMarker[:]) {
		return fmt.Errorf("%w: actual % x", ErrInvalidEndMarker, buf)
	}
	return nil
}

// read fills buf or terminates the pass.
func (d *Decoder) read(buf []byte) bool {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		d.err = readError(fmt.Sprintf("%d pixels remaining", d.remaining), err)
		return false
	}
	return true
}
