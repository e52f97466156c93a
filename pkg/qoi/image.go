package qoi

import (
	"image"
)

// Image is a decoded QuiteOk image. It keeps the header tags so that re-encoding carries them through.
type Image struct {
	*image.NRGBA
	Header Header
}

// Options selects the informational header tags written by Encode.
type Options struct {
	Channels   Channels
	Colorspace Colorspace
}

func init() {
	image.RegisterFormat("qoi", Magic, Decode, DecodeConfig)
}
