package engine

import (
	"github.com/tphakala/go-image-resizer/internal/cpuid"
	"github.com/tphakala/go-image-resizer/internal/filter"
)

// The 8-bit convolution kernels accumulate in int32 fixed point with
// 14-bit coefficients. Because every chunk's coefficients sum to exactly
// filter.FixedOne and integer addition is order-independent, the scalar
// and unrolled kernels produce bit-identical output.

// u8Kernels is one entry of the 8-bit kernel registry: the horizontal
// and vertical pass implementations for one capability level.
type u8Kernels struct {
	horizontal func(dst, src Plane, channels int, chunks []filter.FixedChunk)
	vertical   func(dst, src Plane, channels int, chunks []filter.FixedChunk, bufs *Buffers)
}

// u8KernelTable maps capability levels to specialized kernels. Levels
// without an entry fall back to the scalar pair.
var u8KernelTable = map[cpuid.Level]u8Kernels{
	cpuid.LevelSSE41: {horizontal: horizontalU8Taps4, vertical: verticalU8Rows2},
	cpuid.LevelAVX2:  {horizontal: horizontalU8Taps4, vertical: verticalU8Rows2},
	cpuid.LevelNEON:  {horizontal: horizontalU8Taps4, vertical: verticalU8Rows2},
}

func u8KernelsFor(level cpuid.Level) u8Kernels {
	if k, ok := u8KernelTable[level]; ok {
		return k
	}
	return u8Kernels{horizontal: horizontalU8, vertical: verticalU8}
}

// ConvolveU8 resizes an 8-bit plane with 1 or 4 interleaved channels by
// separable convolution: a horizontal pass into an intermediate plane of
// dst.Width x src.Height, then a vertical pass into dst.
func ConvolveU8(dst, src Plane, channels int, hchunks, vchunks []filter.FixedChunk, level cpuid.Level, bufs *Buffers) {
	k := u8KernelsFor(level)

	interm := Plane{
		Pix:       bufs.Bytes(dst.Width * channels * src.Height),
		Width:     dst.Width,
		Height:    src.Height,
		Stride:    dst.Width * channels,
		PixelSize: channels,
	}

	k.horizontal(interm, src, channels, hchunks)
	k.vertical(dst, interm, channels, vchunks, bufs)
}

// horizontalU8 is the scalar horizontal pass.
func horizontalU8(dst, src Plane, channels int, chunks []filter.FixedChunk) {
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for x, ch := range chunks {
			base := ch.Start * channels
			for c := 0; c < channels; c++ {
				acc := int32(filter.FixedHalf)
				off := base + c
				for i, w := range ch.Coeffs {
					acc += int32(w) * int32(srow[off+i*channels])
				}
				drow[x*channels+c] = clampU8(acc >> filter.FixedBits)
			}
		}
	}
}

// horizontalU8Taps4 processes four taps per iteration.
func horizontalU8Taps4(dst, src Plane, channels int, chunks []filter.FixedChunk) {
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for x, ch := range chunks {
			base := ch.Start * channels
			n := len(ch.Coeffs)
			for c := 0; c < channels; c++ {
				acc := int32(filter.FixedHalf)
				off := base + c
				i := 0
				for ; i+4 <= n; i += 4 {
					acc += int32(ch.Coeffs[i])*int32(srow[off+i*channels]) +
						int32(ch.Coeffs[i+1])*int32(srow[off+(i+1)*channels]) +
						int32(ch.Coeffs[i+2])*int32(srow[off+(i+2)*channels]) +
						int32(ch.Coeffs[i+3])*int32(srow[off+(i+3)*channels])
				}
				for ; i < n; i++ {
					acc += int32(ch.Coeffs[i]) * int32(srow[off+i*channels])
				}
				drow[x*channels+c] = clampU8(acc >> filter.FixedBits)
			}
		}
	}
}

// verticalU8 is the scalar vertical pass. It accumulates one source row
// at a time into a shared int32 row accumulator.
func verticalU8(dst, src Plane, channels int, chunks []filter.FixedChunk, bufs *Buffers) {
	rowLen := dst.Width * channels
	acc := bufs.I32(rowLen)
	for dy, ch := range chunks {
		for i := range acc {
			acc[i] = filter.FixedHalf
		}
		for i, w := range ch.Coeffs {
			srow := src.Row(ch.Start + i)
			cw := int32(w)
			for x, s := range srow[:rowLen] {
				acc[x] += cw * int32(s)
			}
		}
		drow := dst.Row(dy)
		for x, a := range acc {
			drow[x] = clampU8(a >> filter.FixedBits)
		}
	}
}

// verticalU8Rows2 accumulates two source rows per iteration.
func verticalU8Rows2(dst, src Plane, channels int, chunks []filter.FixedChunk, bufs *Buffers) {
	rowLen := dst.Width * channels
	acc := bufs.I32(rowLen)
	for dy, ch := range chunks {
		for i := range acc {
			acc[i] = filter.FixedHalf
		}
		n := len(ch.Coeffs)
		i := 0
		for ; i+2 <= n; i += 2 {
			r0 := src.Row(ch.Start + i)
			r1 := src.Row(ch.Start + i + 1)
			c0 := int32(ch.Coeffs[i])
			c1 := int32(ch.Coeffs[i+1])
			for x := range acc {
				acc[x] += c0*int32(r0[x]) + c1*int32(r1[x])
			}
		}
		for ; i < n; i++ {
			srow := src.Row(ch.Start + i)
			cw := int32(ch.Coeffs[i])
			for x, s := range srow[:rowLen] {
				acc[x] += cw * int32(s)
			}
		}
		drow := dst.Row(dy)
		for x, a := range acc {
			drow[x] = clampU8(a >> filter.FixedBits)
		}
	}
}
