// Package engine implements the pixel-level resize kernels: separable
// convolution, nearest-neighbor copy and the alpha multiply/divide
// transforms. It operates on raw planes; validation and pixel-format
// dispatch happen in the public package.
package engine

import "unsafe"

// Plane is a non-owning view of a rectangular pixel grid. Pix holds the
// raw bytes, Stride is the distance in bytes between row starts and
// PixelSize the number of bytes per pixel. A cropped region is expressed
// by offsetting Pix and narrowing Width/Height while keeping the stride
// of the underlying buffer.
type Plane struct {
	Pix       []byte
	Width     int
	Height    int
	Stride    int
	PixelSize int
}

// Row returns the pixel bytes of row y, excluding any stride padding.
func (p Plane) Row(y int) []byte {
	off := y * p.Stride
	return p.Pix[off : off+p.Width*p.PixelSize]
}

// RowBytes is the number of payload bytes per row.
func (p Plane) RowBytes() int {
	return p.Width * p.PixelSize
}

// floatRow reinterprets row y as a slice of F. The caller guarantees the
// plane's pixel size matches the size of F.
func floatRow[F float32 | float64](p Plane, y int) []F {
	row := p.Row(y)
	return unsafe.Slice((*F)(unsafe.Pointer(&row[0])), p.Width)
}

// int32Row reinterprets row y as a slice of int32.
func int32Row(p Plane, y int) []int32 {
	row := p.Row(y)
	return unsafe.Slice((*int32)(unsafe.Pointer(&row[0])), p.Width)
}

// CopyPlane copies src into dst row by row. Both planes must have the
// same width, height and pixel size.
func CopyPlane(dst, src Plane) {
	for y := 0; y < src.Height; y++ {
		copy(dst.Row(y), src.Row(y))
	}
}

// Buffers holds the scratch storage reused by the convolution kernels
// across calls: the intermediate image of the horizontal pass and the
// per-row accumulation and staging buffers. A zero Buffers is ready to
// use; buffers grow on demand and are retained until Reset.
type Buffers struct {
	bytes  []byte
	i32    []int32
	f32    []float32
	f64    []float64
	f64Row []float64
}

// Reset releases all retained scratch storage.
func (b *Buffers) Reset() {
	*b = Buffers{}
}

// Bytes returns a byte buffer of length n.
func (b *Buffers) Bytes(n int) []byte {
	if cap(b.bytes) < n {
		b.bytes = make([]byte, n)
	}
	return b.bytes[:n]
}

// I32 returns an int32 buffer of length n.
func (b *Buffers) I32(n int) []int32 {
	if cap(b.i32) < n {
		b.i32 = make([]int32, n)
	}
	return b.i32[:n]
}

// F64Row returns a float64 staging buffer of length n, distinct from the
// buffer returned by floatBuf.
func (b *Buffers) F64Row(n int) []float64 {
	if cap(b.f64Row) < n {
		b.f64Row = make([]float64, n)
	}
	return b.f64Row[:n]
}

// floatBuf returns the intermediate float buffer of length n for type F.
func floatBuf[F float32 | float64](b *Buffers, n int) []F {
	var zero F
	switch any(zero).(type) {
	case float32:
		if cap(b.f32) < n {
			b.f32 = make([]float32, n)
		}
		buf, ok := any(b.f32[:n]).([]F)
		if !ok {
			panic("engine: buffer type assertion failed for float32")
		}
		return buf
	default:
		if cap(b.f64) < n {
			b.f64 = make([]float64, n)
		}
		buf, ok := any(b.f64[:n]).([]F)
		if !ok {
			panic("engine: buffer type assertion failed for float64")
		}
		return buf
	}
}

// clampU8 clips an accumulated fixed-point result to the 8-bit range.
func clampU8(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 0xFF {
		return 0xFF
	}
	return byte(v)
}
