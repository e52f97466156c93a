package qoi

import (
	"errors"
)

// A List of opcodes used in the pixel stream. They specify how the bytes are encoded.
const (
	OpRgb   = byte(0b11111110)
	OpRgba  = byte(0b11111111)
	OpIndex = byte(0b00000000)
	OpDiff  = byte(0b01000000)
	OpLuma  = byte(0b10000000)
	OpRun   = byte(0b11000000)

	// opMask selects the 2-bit tag of the short opcodes.
	opMask = byte(0b11000000)
	// argMask selects the 6-bit payload of the short opcodes.
	argMask = byte(0b00111111)
)

// Magic is the magic code used for files of the QuiteOk image format.
const Magic = "qoif"

const (
	// HeaderSize is the size of the fixed preamble in bytes.
	HeaderSize = 14
	// MaxRun is the longest run a single run opcode can carry.
	MaxRun = 62
	// MaxPixels limits the images Decode is willing to allocate.
	MaxPixels = 400_000_000

	cacheSize = 64
)

var (
	ErrTruncated         = errors.New("truncated stream")
	ErrInvalidMagic      = errors.New("invalid magic")
	ErrInvalidDimensions = errors.New("invalid dimensions: width and height must be greater than 0")
	ErrInvalidChannels   = errors.New("invalid channels: must be 3 or 4")
	ErrInvalidColorspace = errors.New("invalid colorspace: must be 0 or 1")
	ErrMalformedOpcode   = errors.New("malformed opcode")
	ErrInvalidEndMarker  = errors.New("invalid end marker")
	ErrTooLarge          = errors.New("image too large")
)

// The end marker appended after the last opcode.
var endMarker = [...]byte{0, 0, 0, 0, 0, 0, 0, 1}
