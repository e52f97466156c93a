package convert

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// EncodeFlags holds command-line flags for encode.
type EncodeFlags struct {
	In      string // Source image (PNG, JPEG, GIF or QOI)
	Out     string // Destination QOI file
	RGB     bool   // Tag the header as 3 channels
	Linear  bool   // Tag the header as linear colorspace
	Zstd    bool   // Wrap the output in a zstd frame
	Verify  bool   // Decode the output again and compare digests
	Verbose bool
}

// DecodeFlags holds command-line flags for decode.
type DecodeFlags struct {
	In      string // Source QOI file
	Out     string // Destination PNG file
	Zstd    bool   // Source is wrapped in a zstd frame
	Verbose bool
}

// InspectFlags holds command-line flags for inspect.
type InspectFlags struct {
	In   string
	Zstd bool
}

var errMissingPath = errors.New("missing -in or -out")

// ParseEncodeFlags parses command-line flags for encode.
func ParseEncodeFlags(args []string, output io.Writer) (*EncodeFlags, error) {
	fs := newFlagSet("encode", "Usage: qoistream encode -in IMAGE -out FILE.qoi [OPTIONS]\n\nEncode a PNG, JPEG, GIF or QOI image to QOI.", output)

	flags := &EncodeFlags{}
	fs.StringVar(&flags.In, "in", "", "Source image")
	fs.StringVar(&flags.Out, "out", "", "Destination QOI file")
	fs.BoolVar(&flags.RGB, "rgb", false, "Tag the header as 3 channels (RGB)")
	fs.BoolVar(&flags.Linear, "linear", false, "Tag the header as linear colorspace")
	fs.BoolVar(&flags.Zstd, "zstd", false, "Wrap the output in a zstd frame")
	fs.BoolVar(&flags.Verify, "verify", false, "Decode the output again and compare pixel digests")
	fs.BoolVar(&flags.Verbose, "v", false, "Log progress")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.In == "" || flags.Out == "" {
		return nil, errMissingPath
	}
	return flags, nil
}

// ParseDecodeFlags parses command-line flags for decode.
func ParseDecodeFlags(args []string, output io.Writer) (*DecodeFlags, error) {
	fs := newFlagSet("decode", "Usage: qoistream decode -in FILE.qoi -out IMAGE.png [OPTIONS]\n\nDecode a QOI image to PNG.", output)

	flags := &DecodeFlags{}
	fs.StringVar(&flags.In, "in", "", "Source QOI file")
	fs.StringVar(&flags.Out, "out", "", "Destination PNG file")
	fs.BoolVar(&flags.Zstd, "zstd", false, "Source is wrapped in a zstd frame")
	fs.BoolVar(&flags.Verbose, "v", false, "Log progress")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.In == "" || flags.Out == "" {
		return nil, errMissingPath
	}
	return flags, nil
}

// ParseInspectFlags parses command-line flags for inspect.
func ParseInspectFlags(args []string, output io.Writer) (*InspectFlags, error) {
	fs := newFlagSet("inspect", "Usage: qoistream inspect -in FILE.qoi [OPTIONS]\n\nPrint header, opcode statistics and pixel digest of a QOI image.", output)

	flags := &InspectFlags{}
	fs.StringVar(&flags.In, "in", "", "Source QOI file")
	fs.BoolVar(&flags.Zstd, "zstd", false, "Source is wrapped in a zstd frame")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.In == "" {
		return nil, fmt.Errorf("missing -in")
	}
	return flags, nil
}

func newFlagSet(name, usage string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "%s\n\nOptions:\n", usage)
		fs.PrintDefaults()
	}
	return fs
}
