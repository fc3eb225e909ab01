package qoi

import "fmt"

// Image is an in-memory QOI raster plus its header fields. It owns its
// raster: there is no caller-supplied release function as in the original C
// implementation (qoi_new_from_data's freeing_function) — ownership is
// transferred to the Image on construction and released by the garbage
// collector once the Image becomes unreachable.
type Image struct {
	width      uint32
	height     uint32
	channels   uint8
	colorspace uint8
	raster     []byte
}

// NewImage constructs an Image from an existing raster. The raster must be
// exactly width*height*channels bytes, row-major, interleaved; ownership of
// the slice transfers to the returned Image, and the caller must not
// continue to mutate it through any other alias.
func NewImage(width, height uint32, channels, colorspace uint8, raster []byte) (*Image, error) {
	if channels != 3 && channels != 4 {
		return nil, ErrInvalidChannels
	}
	if colorspace != 0 && colorspace != 1 {
		return nil, ErrInvalidColorspace
	}
	want := int(width) * int(height) * int(channels)
	if len(raster) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRasterSize, len(raster), want)
	}
	return &Image{
		width:      width,
		height:     height,
		channels:   channels,
		colorspace: colorspace,
		raster:     raster,
	}, nil
}

// NewBlankImage allocates a zeroed raster of the right size for the given
// dimensions and returns an Image owning it.
func NewBlankImage(width, height uint32, channels, colorspace uint8) (*Image, error) {
	if channels != 3 && channels != 4 {
		return nil, ErrInvalidChannels
	}
	if colorspace != 0 && colorspace != 1 {
		return nil, ErrInvalidColorspace
	}
	return &Image{
		width:      width,
		height:     height,
		channels:   channels,
		colorspace: colorspace,
		raster:     make([]byte, int(width)*int(height)*int(channels)),
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() uint32 { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() uint32 { return img.height }

// Channels returns 3 (RGB) or 4 (RGBA).
func (img *Image) Channels() uint8 { return img.channels }

// Colorspace returns the informational colorspace tag (0 = sRGB with linear
// alpha, 1 = all linear). The codec never interprets this value.
func (img *Image) Colorspace() uint8 { return img.colorspace }

// HasAlpha reports whether the image carries an alpha channel.
func (img *Image) HasAlpha() bool { return img.channels == 4 }

// Stride returns the number of bytes between the start of subsequent pixel
// rows: width * channels.
func (img *Image) Stride() int { return int(img.width) * int(img.channels) }

// Raster returns the image's raster, borrowed: mutating it mutates the
// image.
func (img *Image) Raster() []byte { return img.raster }

// RasterClone returns a detached copy of the raster, independent of the
// image's lifetime.
func (img *Image) RasterClone() []byte {
	clone := make([]byte, len(img.raster))
	copy(clone, img.raster)
	return clone
}
