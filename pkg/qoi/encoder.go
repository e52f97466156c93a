package qoi

import (
	"image/color"
	"io"
	"iter"
)

// Encoder writes the pixel stream of a QuiteOk image one pixel at a time.
// It holds all state of a single encode pass and is not safe for concurrent use.
type Encoder struct {
	w      io.Writer
	header Header

	prev      color.NRGBA
	seen      cache
	run       uint8
	remaining uint64

	buf    [5]byte
	err    error
	closed bool
	stats  Stats
}

// NewEncoder writes the header to w and prepares a pass for h.PixelCount() pixels.
func NewEncoder(w io.Writer, h Header) (*Encoder, error) {
	e := &Encoder{
		w:         w,
		header:    h,
		prev:      startPixel,
		remaining: h.PixelCount(),
	}
	if err := WriteHeader(w, h); err != nil {
		return nil, err
	}
	return e, nil
}

// EncodePixels encodes a complete image: header, at most h.PixelCount() pixels and the end marker.
// Surplus pixels are not pulled from the sequence.
func EncodePixels(w io.Writer, h Header, pixels iter.Seq[color.NRGBA]) error {
	e, err := NewEncoder(w, h)
	if err != nil {
		return err
	}
	if e.remaining > 0 {
		for px := range pixels {
			if err := e.Encode(px); err != nil {
				return err
			}
			if e.remaining == 0 {
				break
			}
		}
	}
	return e.Close()
}

// Stats returns the opcode counters of the pass so far.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Encode adds the next pixel. Pixels beyond the header's pixel count are ignored.
// The first write error is returned by every later call.
func (e *Encoder) Encode(curr color.NRGBA) error {
	if e.err != nil {
		return e.err
	}
	if e.closed || e.remaining == 0 {
		return nil
	}
	e.remaining -= 1
	e.stats.Pixels++

	// OpRun
	if curr == e.prev {
		e.run += 1
		if e.run == MaxRun {
			e.flushRun()
		}
		return e.err
	}
	e.flushRun()

	e.resolve(curr)
	e.prev = curr
	return e.err
}

// resolve emits the cheapest non-run opcode for curr and caches it.
// The order index, diff, luma, rgb is part of the format.
func (e *Encoder) resolve(curr color.NRGBA) {
	// OpIndex
	if index, ok := e.seen.lookup(curr); ok {
		e.emit(OpIndex, OpIndex|index)
		return
	}
	e.seen.store(curr)

	// OpRgba
	if curr.A != e.prev.A {
		e.emit(OpRgba, OpRgba, curr.R, curr.G, curr.B, curr.A)
		return
	}

	// alpha channel is the same

	// deltas wrap around modulo 256 and are read as signed
	dr := int(int8(curr.R - e.prev.R))
	dg := int(int8(curr.G - e.prev.G))
	db := int(int8(curr.B - e.prev.B))

	// OpDiff
	if (-2 <= dr && dr <= 1) && (-2 <= dg && dg <= 1) && (-2 <= db && db <= 1) {
		e.emit(OpDiff, OpDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2)<<0)
		return
	}

	drDg := dr - dg
	dbDg := db - dg

	// OpLuma
	if (-32 <= dg && dg <= 31) && (-8 <= drDg && drDg <= 7) && (-8 <= dbDg && dbDg <= 7) {
		e.emit(OpLuma, OpLuma|byte(dg+32), byte(drDg+8)<<4|byte(dbDg+8))
		return
	}

	// OpRgb
	e.emit(OpRgb, OpRgb, curr.R, curr.G, curr.B)
}

// Close flushes a pending run and appends the end marker. Calling it again has no effect.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return nil
	}
	e.closed = true

	e.flushRun()
	if e.err == nil {
		e.write(endMarker[:])
	}
	return e.err
}

func (e *Encoder) flushRun() {
	if e.run == 0 {
		return
	}
	e.emit(OpRun, OpRun|(e.run-1))
	e.run = 0
}

func (e *Encoder) emit(op byte, data ...byte) {
	if e.err != nil {
		return
	}
	e.stats.count(op)
	e.write(append(e.buf[:0], data...))
}

func (e *Encoder) write(data []byte) {
	if e.err != nil {
		return
	}
	if _, err := e.w.Write(data); err != nil {
		e.err = err
	}
}
