package convert

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// openInput opens path for buffered reading, unwrapping a zstd frame if requested.
func openInput(path string, compressed bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(bufio.NewReader(f), compressed)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{Reader: r, close: func() error {
		r.Close()
		return f.Close()
	}}, nil
}

// createOutput creates path for buffered writing, wrapping it in a zstd frame if requested.
// Close flushes all layers.
func createOutput(path string, compressed bool) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	w, err := NewWriter(bw, compressed)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &writeCloser{Writer: w, close: func() error {
		if err := w.Close(); err != nil {
			f.Close()
			return err
		}
		if err := bw.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}}, nil
}

// NewReader returns r itself, or a zstd decompressing reader if compressed is set.
func NewReader(r io.Reader, compressed bool) (io.ReadCloser, error) {
	if !compressed {
		return io.NopCloser(r), nil
	}
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(true))
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return dec.IOReadCloser(), nil
}

// NewWriter returns w itself, or a zstd compressing writer if compressed is set.
// Close must be called to finish the frame; it does not close w.
func NewWriter(w io.Writer, compressed bool) (io.WriteCloser, error) {
	if !compressed {
		return nopWriteCloser{w}, nil
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1), zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("zstd encode: %w", err)
	}
	return enc, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error {
	return w.close()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
