package qoi

import (
	"bytes"
	"testing"
)

func mustImage(t *testing.T, width, height uint32, channels, colorspace uint8, raster []byte) *Image {
	t.Helper()
	img, err := NewImage(width, height, channels, colorspace, raster)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return img
}

func opcodesOf(t *testing.T, img *Image) []byte {
	t.Helper()
	data, err := EncodeImage(img)
	if err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}
	if !bytes.HasPrefix(data, []byte(magic)) {
		t.Fatalf("missing magic prefix")
	}
	if !bytes.HasSuffix(data, endMarker[:]) {
		t.Fatalf("missing end marker suffix")
	}
	return data[headerSize : len(data)-endMarkerSize]
}

func TestEncodeSinglePixelRun(t *testing.T) {
	// A 1x1 RGBA image of (0,0,0,255) equals the initial previous-pixel
	// register exactly, so it is the single-byte RUN(length=1) opcode.
	img := mustImage(t, 1, 1, 4, 0, []byte{0, 0, 0, 255})
	got := opcodesOf(t, img)
	want := []byte{0xC0}
	if !bytes.Equal(got, want) {
		t.Fatalf("opcodes = %#x, want %#x", got, want)
	}
}

func TestEncodeZeroAlphaFirstPixelIsIndexZero(t *testing.T) {
	// A 1x1 RGBA image of (0,0,0,0): da=1 relative to the initial
	// previous-pixel (0,0,0,255) so DIFF is excluded, but
	// SeenTable[hash((0,0,0,0))] == SeenTable[0] already equals (0,0,0,0)
	// (the table's own zero-initialized value), so this is INDEX(0), a
	// single byte -- not RGBA. See DESIGN.md for why this differs from the
	// distilled spec's prose walkthrough.
	img := mustImage(t, 1, 1, 4, 0, []byte{0, 0, 0, 0})
	got := opcodesOf(t, img)
	want := []byte{0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("opcodes = %#x, want %#x", got, want)
	}
}

func opaqueBlackRaster(pixels int) []byte {
	raster := make([]byte, pixels*4)
	for i := 0; i < pixels; i++ {
		raster[i*4+3] = 255
	}
	return raster
}

func TestEncodeRunOf63IsSplitAt62(t *testing.T) {
	// All 63 pixels equal (0,0,0,255), the initial previous-pixel, so the
	// run starts at pixel 0 and the 62-cap forces a RUN(62)+RUN(1) split.
	img := mustImage(t, 63, 1, 4, 0, opaqueBlackRaster(63))
	got := opcodesOf(t, img)
	want := []byte{0xC0 | 61, 0xC0 | 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("opcodes = %#x, want %#x", got, want)
	}
}

func TestEncodeRunOf64IsSplitAt62And2(t *testing.T) {
	img := mustImage(t, 64, 1, 4, 0, opaqueBlackRaster(64))
	got := opcodesOf(t, img)
	want := []byte{0xFD, 0xC1}
	if !bytes.Equal(got, want) {
		t.Fatalf("opcodes = %#x, want %#x", got, want)
	}
}

func TestEncodeDiffBoundary(t *testing.T) {
	// dr=-2, dg=-2, db=-2, da=0 against the first pixel (10,10,10,255),
	// which itself encodes as the 2-byte LUMA (dg=10, dr_dg=db_dg=0): the
	// second pixel must avoid RUN/INDEX/LUMA so the DIFF byte is directly
	// observable.
	raster := []byte{
		10, 10, 10, 255, // first pixel just establishes a non-trivial previous-pixel register
		8, 8, 8, 255, // second pixel: dr=dg=db=-2, exercising the DIFF boundary
	}
	img := mustImage(t, 2, 1, 4, 0, raster)
	got := opcodesOf(t, img)
	if len(got) != 3 {
		t.Fatalf("opcodes = %#x, want 3 bytes (LUMA then DIFF)", got)
	}
	wantDiffByte := byte(0x40)
	if got[len(got)-1] != wantDiffByte {
		t.Fatalf("last opcode byte = %#x, want %#x", got[len(got)-1], wantDiffByte)
	}
}

func TestEncodeLumaBoundary(t *testing.T) {
	// dg=-32, dr_dg=-8, db_dg=-8 -> bytes 0x80, 0x00.
	prev := pixel{R: 40, G: 40, B: 40, A: 255}
	// dg = -32 => cur.G = prev.G - 32
	// dr_dg = -8, dr = dr_dg + dg = -8 + -32 = -40 => cur.R = prev.R - 40
	// db_dg = -8, db = -40 => cur.B = prev.B - 40
	cur := pixel{
		R: prev.R - 40,
		G: prev.G - 32,
		B: prev.B - 40,
		A: prev.A,
	}
	full := []byte{prev.R, prev.G, prev.B, prev.A, cur.R, cur.G, cur.B, cur.A}
	img := mustImage(t, 2, 1, 4, 0, full)
	got := opcodesOf(t, img)
	if len(got) < 2 {
		t.Fatalf("opcodes too short: %#x", got)
	}
	wantLuma := []byte{0x80, 0x00}
	gotLuma := got[len(got)-2:]
	if !bytes.Equal(gotLuma, wantLuma) {
		t.Fatalf("luma bytes = %#x, want %#x", gotLuma, wantLuma)
	}
}

func TestEncodeTwoIdenticalRGBPixels(t *testing.T) {
	// width=2 height=1 channels=3, both pixels (10,20,30): first pixel must
	// fall through DIFF (dr=10 out of range) and LUMA (dr_dg=-10 out of
	// range) to RGB; second pixel equals prev so it's RUN(1).
	raster := []byte{10, 20, 30, 10, 20, 30}
	img := mustImage(t, 2, 1, 3, 0, raster)
	got := opcodesOf(t, img)
	want := []byte{0xFE, 0x0A, 0x14, 0x1E, 0xC0}
	if !bytes.Equal(got, want) {
		t.Fatalf("opcodes = %#x, want %#x", got, want)
	}
}

func TestEncodeIndexReuse(t *testing.T) {
	raster := []byte{
		50, 100, 150, 255,
		0, 0, 0, 255,
		50, 100, 150, 255,
	}
	img := mustImage(t, 3, 1, 4, 0, raster)
	got := opcodesOf(t, img)

	// pixel 1: RGB fallback (5 bytes would be RGBA, but da==0 here since
	// channels==4 supplies alpha 255 matching prev's initial 255)
	if got[0] != tagRGB {
		t.Fatalf("first opcode tag = %#x, want tagRGB", got[0])
	}
	// pixel 3 reuses the slot written by pixel 1: hash(50,100,150,255) = 25
	last := got[len(got)-1]
	if last != 25 {
		t.Fatalf("last opcode (INDEX byte) = %#x, want 0x19 (hash 25)", last)
	}
}

func TestEncodeOutputSizeBound(t *testing.T) {
	// Every pixel differs wildly from its predecessor: worst case, 5 bytes
	// per RGBA pixel.
	width, height := 4, 4
	raster := make([]byte, width*height*4)
	for i := range raster {
		raster[i] = byte(i * 97)
	}
	img := mustImage(t, uint32(width), uint32(height), 4, 0, raster)
	got := opcodesOf(t, img)
	if len(got) > width*height*5 {
		t.Fatalf("opcode length %d exceeds 5 bytes/pixel bound %d", len(got), width*height*5)
	}
}
