package qoi

// encodeState is the scratch state of one encode pass: a previous-pixel
// register and a seen-pixel table, freshly allocated per call so concurrent
// encodes of independent images never share mutable state.
type encodeState struct {
	prev  pixel
	table seenTable
}

// EncodeImage emits the full QOI byte stream (header, opcode stream, end
// marker) for img.
func EncodeImage(img *Image) ([]byte, error) {
	h := header{
		Width:      img.width,
		Height:     img.height,
		Channels:   img.channels,
		Colorspace: img.colorspace,
	}

	buf := make([]byte, 0, headerSize+len(img.raster)+endMarkerSize)
	buf = appendHeader(buf, h)
	buf = encodeOpcodes(buf, img.raster, int(img.channels))
	buf = append(buf, endMarker[:]...)
	return buf, nil
}

// encodeOpcodes appends the opcode stream for raster (channels bytes per
// pixel, row-major) to buf and returns the extended slice.
func encodeOpcodes(buf []byte, raster []byte, channels int) []byte {
	st := encodeState{prev: startPixel}

	pixelAt := func(byteIdx int) pixel {
		p := pixel{R: raster[byteIdx], G: raster[byteIdx+1], B: raster[byteIdx+2], A: 255}
		if channels == 4 {
			p.A = raster[byteIdx+3]
		}
		return p
	}

	total := len(raster)
	i := 0
	for i < total {
		cur := pixelAt(i)

		if cur.equals(st.prev) {
			length := 1
			for i+length*channels < total && length < maxRunLen {
				if !pixelAt(i + length*channels).equals(st.prev) {
					break
				}
				length++
			}
			buf = append(buf, opRun|byte(length-1))
			i += length * channels
			st.prev = cur
			st.table.put(cur)
			continue
		}

		dr := int8(cur.R - st.prev.R)
		dg := int8(cur.G - st.prev.G)
		db := int8(cur.B - st.prev.B)
		da := int8(cur.A - st.prev.A)

		switch {
		case da == 0 && inRange(dr, -2, 1) && inRange(dg, -2, 1) && inRange(db, -2, 1):
			buf = append(buf, opDiff|byte(dr+2)<<4|byte(dg+2)<<2|byte(db+2))

		case st.table.get(cur.hash()).equals(cur):
			buf = append(buf, opIndex|cur.hash())

		case da == 0 && inRange(dg, -32, 31) && inRange(dr-dg, -8, 7) && inRange(db-dg, -8, 7):
			drdg := dr - dg
			dbdg := db - dg
			buf = append(buf, opLuma|byte(dg+lumaGBias))
			buf = append(buf, byte(drdg+lumaRBBias)<<4|byte(dbdg+lumaRBBias))

		case da == 0:
			buf = append(buf, tagRGB, cur.R, cur.G, cur.B)

		default:
			buf = append(buf, tagRGBA, cur.R, cur.G, cur.B, cur.A)
		}

		st.prev = cur
		st.table.put(cur)
		i += channels
	}

	return buf
}

func inRange(v int8, lo, hi int8) bool {
	return v >= lo && v <= hi
}
