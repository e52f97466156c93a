// Package convert is the file level layer of the qoistream command. It bridges QOI files to the
// standard image formats and to zstd framed files.
package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"

	"qoistream/pkg/qoi"
)

// EncodeFile encodes the image at flags.In to a QOI file at flags.Out.
func EncodeFile(flags *EncodeFlags, logger *log.Logger) error {
	in, err := openInput(flags.In, false)
	if err != nil {
		return err
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", flags.In, err)
	}
	logger.Printf("read %s image %s from %s", format, img.Bounds().Size(), flags.In)

	opts := &qoi.Options{Channels: qoi.RGBA, Colorspace: qoi.SRGB}
	if flags.RGB {
		opts.Channels = qoi.RGB
	}
	if flags.Linear {
		opts.Colorspace = qoi.Linear
	}

	out, err := createOutput(flags.Out, flags.Zstd)
	if err != nil {
		return err
	}
	if err := qoi.Encode(out, img, opts); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", flags.Out, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write %s: %w", flags.Out, err)
	}
	logger.Printf("wrote %s", flags.Out)

	if flags.Verify {
		return verify(img, flags.Out, flags.Zstd, logger)
	}
	return nil
}

// verify decodes the written file again and compares its pixel digest with the source image.
func verify(src image.Image, path string, compressed bool, logger *log.Logger) error {
	in, err := openInput(path, compressed)
	if err != nil {
		return err
	}
	defer in.Close()

	d, err := qoi.NewDecoder(in)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	got, _ := Digest(d.Pixels())
	if err := d.Err(); err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	want, _ := Digest(qoi.ImagePixels(src))
	if got != want {
		return fmt.Errorf("verify %s: digest mismatch, expected %016x, actual %016x", path, want, got)
	}
	logger.Printf("verified %s: digest %016x", path, got)
	return nil
}

// DecodeFile decodes the QOI file at flags.In to a PNG file at flags.Out.
func DecodeFile(flags *DecodeFlags, logger *log.Logger) error {
	in, err := openInput(flags.In, flags.Zstd)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := qoi.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", flags.In, err)
	}
	logger.Printf("read qoi image %s from %s", img.Bounds().Size(), flags.In)

	out, err := createOutput(flags.Out, false)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", flags.Out, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write %s: %w", flags.Out, err)
	}
	logger.Printf("wrote %s", flags.Out)
	return nil
}

// Report describes a QOI stream as seen by inspect.
type Report struct {
	Header qoi.Header
	Stats  qoi.Stats
	Digest uint64
	// Pixels is the number of pixels actually decoded.
	Pixels uint64
	// End is nil if the end marker is present and intact.
	End error
}

// InspectFile reads the QOI file at flags.In and reports on it.
func InspectFile(flags *InspectFlags) (*Report, error) {
	in, err := openInput(flags.In, flags.Zstd)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return Inspect(in)
}

// Inspect decodes the whole stream from r without keeping the pixels.
func Inspect(r io.Reader) (*Report, error) {
	d, err := qoi.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	digest, n := Digest(d.Pixels())
	if err := d.Err(); err != nil {
		return nil, err
	}
	return &Report{
		Header: d.Header(),
		Stats:  d.Stats(),
		Digest: digest,
		Pixels: n,
		End:    d.ReadEnd(),
	}, nil
}

// WriteTo prints the report in a human readable form.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "size:       %dx%d (%d pixels)\n", r.Header.Width, r.Header.Height, r.Pixels)
	fmt.Fprintf(&buf, "channels:   %s\n", r.Header.Channels)
	fmt.Fprintf(&buf, "colorspace: %s\n", r.Header.Colorspace)
	fmt.Fprintf(&buf, "opcodes:    %d (index %d, diff %d, luma %d, run %d, rgb %d, rgba %d)\n",
		r.Stats.Ops(), r.Stats.Index, r.Stats.Diff, r.Stats.Luma, r.Stats.Run, r.Stats.Rgb, r.Stats.Rgba)
	if r.End != nil {
		fmt.Fprintf(&buf, "end marker: %v\n", r.End)
	} else {
		fmt.Fprintf(&buf, "end marker: ok\n")
	}
	fmt.Fprintf(&buf, "digest:     %016x\n", r.Digest)
	return buf.WriteTo(w)
}
