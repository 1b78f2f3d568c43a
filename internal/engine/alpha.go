package engine

// Alpha transforms for interleaved 4-channel 8-bit pixels with a
// trailing alpha component. Both operate pixel-wise with no cross-pixel
// dependency; src and dst may describe the same memory for in-place use.

const (
	alphaMax = 255

	// mulRoundBias makes integer division by 255 round to nearest:
	// (v + 127) / 255 == round(v / 255) for v in [0, 255*255].
	mulRoundBias = 127
)

// MultiplyAlphaU8x4 scales every color component by the pixel's alpha:
// c' = round(c * a / 255). The alpha component itself is preserved.
func MultiplyAlphaU8x4(dst, src Plane) {
	rowLen := src.RowBytes()
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for i := 0; i < rowLen; i += 4 {
			a := srow[i+3]
			if a == alphaMax {
				drow[i] = srow[i]
				drow[i+1] = srow[i+1]
				drow[i+2] = srow[i+2]
				drow[i+3] = a
				continue
			}
			ai := int(a)
			drow[i] = byte((int(srow[i])*ai + mulRoundBias) / alphaMax)
			drow[i+1] = byte((int(srow[i+1])*ai + mulRoundBias) / alphaMax)
			drow[i+2] = byte((int(srow[i+2])*ai + mulRoundBias) / alphaMax)
			drow[i+3] = a
		}
	}
}

// DivideAlphaU8x4 is the inverse transform: c' = round(c * 255 / a),
// clamped to 255. Zero-alpha pixels are copied unchanged; premultiplied
// color at zero alpha is already zero and carries no information, so any
// stored value is acceptable and must not fault.
func DivideAlphaU8x4(dst, src Plane) {
	rowLen := src.RowBytes()
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for i := 0; i < rowLen; i += 4 {
			a := srow[i+3]
			if a == 0 || a == alphaMax {
				drow[i] = srow[i]
				drow[i+1] = srow[i+1]
				drow[i+2] = srow[i+2]
				drow[i+3] = a
				continue
			}
			ai := int(a)
			drow[i] = divAlpha(int(srow[i]), ai)
			drow[i+1] = divAlpha(int(srow[i+1]), ai)
			drow[i+2] = divAlpha(int(srow[i+2]), ai)
			drow[i+3] = a
		}
	}
}

func divAlpha(c, a int) byte {
	v := (c*alphaMax + a/2) / a
	if v > alphaMax {
		return alphaMax
	}
	return byte(v)
}
