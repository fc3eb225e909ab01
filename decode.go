package qoi

import "fmt"

const (
	tagRGB     = 0xFE
	tagRGBA    = 0xFF
	tagMask2   = 0b1100_0000
	opIndex    = 0b0000_0000
	opDiff     = 0b0100_0000
	opLuma     = 0b1000_0000
	opRun      = 0b1100_0000
	maxRunLen  = 62
	indexMask  = 0b0011_1111
	diffBias   = 2
	lumaGBias  = 32
	lumaRBBias = 8
)

// decodeState is the scratch state of one decode pass: a previous-pixel
// register and a seen-pixel table. Each call to Decode allocates a fresh
// decodeState, so concurrent decodes of independent streams never share
// mutable state (see the concurrency model in SPEC_FULL.md §5).
type decodeState struct {
	prev  pixel
	table seenTable
}

// Decode parses a full QOI byte stream (header, opcode stream, end marker)
// and returns the decoded Image.
func Decode(data []byte) (*Image, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Channels != 3 && h.Channels != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, h.Channels)
	}

	total := int(h.Width) * int(h.Height) * int(h.Channels)
	raster := make([]byte, total)

	if err := decodeOpcodes(data[headerSize:], raster, int(h.Channels)); err != nil {
		return nil, err
	}

	return &Image{
		width:      h.Width,
		height:     h.Height,
		channels:   h.Channels,
		colorspace: h.Colorspace,
		raster:     raster,
	}, nil
}

// decodeOpcodes consumes the opcode stream in src (the end marker, if
// present, is never reached as a tag byte because the loop stops once out
// is filled) and fills out with decoded pixel bytes.
func decodeOpcodes(src []byte, out []byte, channels int) error {
	st := decodeState{prev: startPixel}

	pos := 0
	total := len(out)
	idx := 0

	for pos < total {
		if idx >= len(src) {
			return fmt.Errorf("%w: stream ended after %d of %d pixel bytes", ErrFileContent, pos, total)
		}
		tag := src[idx]
		idx++

		switch {
		case tag == tagRGB:
			if idx+3 > len(src) {
				return fmt.Errorf("%w: truncated RGB opcode", ErrFileContent)
			}
			p := pixel{R: src[idx], G: src[idx+1], B: src[idx+2], A: st.prev.A}
			idx += 3
			pos = st.emit(out, pos, p, channels)

		case tag == tagRGBA:
			if idx+4 > len(src) {
				return fmt.Errorf("%w: truncated RGBA opcode", ErrFileContent)
			}
			p := pixel{R: src[idx], G: src[idx+1], B: src[idx+2], A: src[idx+3]}
			idx += 4
			pos = st.emit(out, pos, p, channels)

		case tag&tagMask2 == opIndex:
			p := st.table.get(tag & indexMask)
			pos = st.emit(out, pos, p, channels)

		case tag&tagMask2 == opDiff:
			dr := int((tag>>4)&0x3) - diffBias
			dg := int((tag>>2)&0x3) - diffBias
			db := int(tag&0x3) - diffBias
			p := pixel{
				R: st.prev.R + uint8(dr),
				G: st.prev.G + uint8(dg),
				B: st.prev.B + uint8(db),
				A: st.prev.A,
			}
			pos = st.emit(out, pos, p, channels)

		case tag&tagMask2 == opLuma:
			if idx+1 > len(src) {
				return fmt.Errorf("%w: truncated LUMA opcode", ErrFileContent)
			}
			rb := src[idx]
			idx++
			dg := int(tag&0x3F) - lumaGBias
			drdg := int((rb>>4)&0xF) - lumaRBBias
			dbdg := int(rb&0xF) - lumaRBBias
			dr := drdg + dg
			db := dbdg + dg
			p := pixel{
				R: st.prev.R + uint8(dr),
				G: st.prev.G + uint8(dg),
				B: st.prev.B + uint8(db),
				A: st.prev.A,
			}
			pos = st.emit(out, pos, p, channels)

		case tag&tagMask2 == opRun:
			length := int(tag&indexMask) + 1
			if length > maxRunLen {
				// Unreachable on-wire (the encoder never emits more than
				// maxRunLen-1 in the low 6 bits) but guarded defensively.
				length = maxRunLen
			}
			for i := 0; i < length && pos < total; i++ {
				pos = st.emit(out, pos, st.prev, channels)
			}

		default:
			// Unreachable: the six cases above (RGB, RGBA, and the four
			// 2-bit major classes) cover every possible byte value.
			return ErrMalformedOpcode
		}
	}

	return nil
}

// emit writes pixel p at byte offset pos in out, skipping the alpha byte
// when channels == 3, updates the previous-pixel register and seen table,
// and returns the new offset.
func (st *decodeState) emit(out []byte, pos int, p pixel, channels int) int {
	out[pos] = p.R
	out[pos+1] = p.G
	out[pos+2] = p.B
	if channels == 4 {
		out[pos+3] = p.A
	}
	st.prev = p
	st.table.put(p)
	return pos + channels
}
