package qoi

// pixel is a four-channel 8-bit color value. Arithmetic on its fields is
// always modular 8-bit: callers rely on the Go unsigned-overflow wraparound
// for the DIFF/LUMA delta math.
type pixel struct {
	R, G, B, A uint8
}

// startPixel is the previous-pixel register's value at the start of both
// encode and decode: opaque black.
var startPixel = pixel{R: 0, G: 0, B: 0, A: 255}

func (p pixel) equals(other pixel) bool {
	return p.R == other.R && p.G == other.G && p.B == other.B && p.A == other.A
}

// hash computes the QOI seen-table index for p, in [0, 63].
func (p pixel) hash() uint8 {
	return (p.R*3 + p.G*5 + p.B*7 + p.A*11) % 64
}
