package qoi

import (
	"image"
	"image/draw"
)

// rasterFromImage packs an arbitrary image.Image into a tightly-packed,
// row-major raster of the requested channel count (3 or 4). Grounded on the
// teacher's imageToNRGBA/nrgbaImageToQOI pair, generalized to also emit
// 3-channel (no-alpha) output.
func rasterFromImage(m image.Image, channels uint8) []byte {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba, ok := m.(*image.NRGBA)
	if !ok || !bounds.Eq(nrgba.Bounds()) {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), m, bounds.Min, draw.Src)
		nrgba = dst
	}

	raster := make([]byte, width*height*int(channels))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			srcOff := nrgba.PixOffset(x+nrgba.Rect.Min.X, y+nrgba.Rect.Min.Y)
			px := nrgba.Pix[srcOff : srcOff+4 : srcOff+4]
			dstOff := (y*width + x) * int(channels)
			raster[dstOff] = px[0]
			raster[dstOff+1] = px[1]
			raster[dstOff+2] = px[2]
			if channels == 4 {
				raster[dstOff+3] = px[3]
			}
		}
	}
	return raster
}

// nrgbaFromRaster builds an *image.NRGBA directly from a decoded raster,
// borrowing the raster as the NRGBA's Pix slice when channels == 4 (no
// copy), and expanding to NRGBA with alpha forced to 255 when channels == 3
// (mirroring the original C decoder's has_alpha_channel convention).
func nrgbaFromRaster(width, height int, channels int, raster []byte) *image.NRGBA {
	if channels == 4 {
		return &image.NRGBA{
			Pix:    raster,
			Stride: width * 4,
			Rect:   image.Rect(0, 0, width, height),
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		srcOff := i * 3
		dstOff := i * 4
		img.Pix[dstOff] = raster[srcOff]
		img.Pix[dstOff+1] = raster[srcOff+1]
		img.Pix[dstOff+2] = raster[srcOff+2]
		img.Pix[dstOff+3] = 255
	}
	return img
}
