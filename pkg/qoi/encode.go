package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"iter"
)

// Encode encodes a given image to the QuiteOk image format and writes the encoded bytes to the writer.
// A nil o writes RGBA/sRGB tags, or the tags of img if it is an *Image.
func Encode(w io.Writer, img image.Image, o *Options) error {
	bounds := img.Bounds()
	if bounds.Empty() {
		return fmt.Errorf("%w: actual %dx%d", ErrInvalidDimensions, bounds.Dx(), bounds.Dy())
	}

	header := Header{
		Width:      uint32(bounds.Dx()),
		Height:     uint32(bounds.Dy()),
		Channels:   RGBA,
		Colorspace: SRGB,
	}
	if qimg, ok := img.(*Image); ok {
		header.Channels = qimg.Header.Channels
		header.Colorspace = qimg.Header.Colorspace
	}
	if o != nil {
		header.Channels = o.Channels
		header.Colorspace = o.Colorspace
	}

	return EncodePixels(w, header, ImagePixels(img))
}

// ImagePixels walks img in row-major order as non-premultiplied pixels.
func ImagePixels(img image.Image) iter.Seq[color.NRGBA] {
	return func(yield func(color.NRGBA) bool) {
		bounds := img.Bounds()
		if qimg, ok := img.(*Image); ok {
			img = qimg.NRGBA
		}
		if nrgba, ok := img.(*image.NRGBA); ok {
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					if !yield(nrgba.NRGBAAt(x, y)) {
						return
					}
				}
			}
			return
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if !yield(color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)) {
					return
				}
			}
		}
	}
}
