package qoi

import (
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("qoi", magic, ImageDecode, DecodeConfig)
}

// ImageDecode decodes a QOI image.Image from an io.Reader. Registered with
// the standard image package (see init) so image.Decode recognizes the
// "qoif" magic automatically, the same wiring the teacher's decode test
// performs by hand.
func ImageDecode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return nrgbaFromRaster(int(img.width), int(img.height), int(img.channels), img.raster), nil
}

// DecodeConfig decodes only the image.Config (width, height, color model)
// from the 14-byte header, without decoding the opcode stream.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, ErrFileContent
	}
	h, err := parseHeader(buf)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:      int(h.Width),
		Height:     int(h.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// ImageEncode converts an arbitrary image.Image to a 4-channel raster and
// writes it as a complete QOI stream to w.
func ImageEncode(w io.Writer, m image.Image) error {
	bounds := m.Bounds()
	raster := rasterFromImage(m, 4)
	img, err := NewImage(uint32(bounds.Dx()), uint32(bounds.Dy()), 4, 0, raster)
	if err != nil {
		return err
	}
	data, err := EncodeImage(img)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
