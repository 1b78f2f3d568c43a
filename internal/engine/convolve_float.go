package engine

import (
	"github.com/tphakala/go-image-resizer/internal/cpuid"
	"github.com/tphakala/go-image-resizer/internal/filter"
	"github.com/tphakala/go-image-resizer/internal/simdops"
)

// opsFor selects the slice kernel backend for the given capability
// level. The scalar backend is the guaranteed fallback; the vectorized
// backend serves every SIMD tier and dispatches to the best instruction
// set it was built with.
func opsFor[F simdops.Float](level cpuid.Level) *simdops.Ops[F] {
	if level == cpuid.LevelNone {
		return simdops.Scalar[F]()
	}
	return simdops.For[F]()
}

// ConvolveFloat resizes a single-channel float plane by separable
// convolution. The horizontal pass writes the intermediate image in
// column-major order so that both passes reduce to dot products over
// contiguous slices. Accumulation stays in F and is never clamped.
func ConvolveFloat[F simdops.Float](dst, src Plane, hchunks, vchunks []filter.ChunkOf[F], level cpuid.Level, bufs *Buffers) {
	ops := opsFor[F](level)
	srcH := src.Height
	interm := floatBuf[F](bufs, dst.Width*srcH)

	for y := 0; y < srcH; y++ {
		srow := floatRow[F](src, y)
		for x, ch := range hchunks {
			window := srow[ch.Start : ch.Start+len(ch.Weights)]
			interm[x*srcH+y] = ops.DotProductUnsafe(window, ch.Weights)
		}
	}

	for x := 0; x < dst.Width; x++ {
		col := interm[x*srcH : (x+1)*srcH]
		for dy, ch := range vchunks {
			window := col[ch.Start : ch.Start+len(ch.Weights)]
			floatRow[F](dst, dy)[x] = ops.DotProductUnsafe(window, ch.Weights)
		}
	}
}
