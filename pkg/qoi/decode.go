package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Decode reads a QuiteOk image from r. The returned image is an *Image. The end marker is not validated.
func Decode(r io.Reader) (image.Image, error) {
	d, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}
	if d.header.PixelCount() > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, d.header.Width, d.header.Height, MaxPixels)
	}

	img := &Image{
		NRGBA:  image.NewNRGBA(image.Rect(0, 0, int(d.header.Width), int(d.header.Height))),
		Header: d.header,
	}
	off := 0
	for px := range d.Pixels() {
		pix := img.Pix[off : off+4 : off+4]
		pix[0] = px.R
		pix[1] = px.G
		pix[2] = px.B
		pix[3] = px.A
		off += 4
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeConfig reads only the header of a QuiteOk image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}
