package qoi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Channels is the informational channel tag of a header.
type Channels uint8

const (
	RGB  Channels = 3
	RGBA Channels = 4
)

func (c Channels) Valid() bool {
	return c == RGB || c == RGBA
}

func (c Channels) String() string {
	switch c {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return fmt.Sprintf("Channels(%d)", uint8(c))
}

// Colorspace is the informational colorspace tag of a header. It is carried through unchanged.
type Colorspace uint8

const (
	SRGB   Colorspace = 0
	Linear Colorspace = 1
)

func (c Colorspace) Valid() bool {
	return c == SRGB || c == Linear
}

func (c Colorspace) String() string {
	switch c {
	case SRGB:
		return "sRGB"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("Colorspace(%d)", uint8(c))
}

// Header is the 14 byte preamble of a QuiteOk image.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   Channels
	Colorspace Colorspace
}

// PixelCount returns width*height. A uint64 holds every product of two uint32 values.
func (h Header) PixelCount() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// ReadHeader reads exactly HeaderSize bytes from r and validates them.
// Nothing beyond the header is consumed.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, readError("header", err)
	}
	var h Header
	if err := h.UnmarshalBinary(buf[:]); err != nil {
		return Header{}, err
	}
	return h, nil
}

// WriteHeader writes the header to w. The header is not validated.
func WriteHeader(w io.Writer, h Header) error {
	buf, _ := h.MarshalBinary()
	_, err := w.Write(buf)
	return err
}

// MarshalBinary encodes the header into its HeaderSize byte form.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, Magic...)
	buf = binary.BigEndian.AppendUint32(buf, h.Width)
	buf = binary.BigEndian.AppendUint32(buf, h.Height)
	buf = append(buf, byte(h.Channels), byte(h.Colorspace))
	return buf, nil
}

// UnmarshalBinary decodes and validates a header. It expects exactly HeaderSize bytes.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: header size, expected %d, actual %d", ErrTruncated, HeaderSize, len(data))
	}
	if magic := string(data[0:4]); magic != Magic {
		return fmt.Errorf("%w: expected %q, actual %q", ErrInvalidMagic, Magic, magic)
	}
	width := binary.BigEndian.Uint32(data[4:8])
	height := binary.BigEndian.Uint32(data[8:12])
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: actual %dx%d", ErrInvalidDimensions, width, height)
	}
	channels := Channels(data[12])
	if !channels.Valid() {
		return fmt.Errorf("%w: actual %d", ErrInvalidChannels, data[12])
	}
	colorspace := Colorspace(data[13])
	if !colorspace.Valid() {
		return fmt.Errorf("%w: actual %d", ErrInvalidColorspace, data[13])
	}

	*h = Header{
		Width:      width,
		Height:     height,
		Channels:   channels,
		Colorspace: colorspace,
	}
	return nil
}

// readError reports short reads as ErrTruncated and passes other transport errors through with context.
func readError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: %w", ErrTruncated, what, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}
