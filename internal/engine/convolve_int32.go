package engine

import (
	"math"

	"github.com/tphakala/go-image-resizer/internal/filter"
	"github.com/tphakala/go-image-resizer/internal/simdops"
)

// ConvolveI32 resizes a single-channel int32 plane. Samples are widened
// to float64 for accumulation so that long tap runs cannot overflow,
// then rounded to nearest (half away from zero) and clamped to the
// int32 range on the final store. The intermediate image is kept in
// column-major float64, so no precision is lost between the passes.
//
// Accumulation always runs in strict element order. Integer formats
// promise bit-identical output across capability tiers, and float
// addition is order-sensitive: a multi-accumulator backend can shift an
// accumulation by an ulp and tip a near-half value across the rounding
// boundary. The summation order therefore must not depend on the
// selected backend.
func ConvolveI32(dst, src Plane, hchunks, vchunks []filter.ChunkOf[float64], bufs *Buffers) {
	ops := simdops.Scalar[float64]()
	srcH := src.Height
	interm := floatBuf[float64](bufs, dst.Width*srcH)
	row := bufs.F64Row(src.Width)

	for y := 0; y < srcH; y++ {
		srow := int32Row(src, y)
		for x, v := range srow {
			row[x] = float64(v)
		}
		for x, ch := range hchunks {
			window := row[ch.Start : ch.Start+len(ch.Weights)]
			interm[x*srcH+y] = ops.DotProductUnsafe(window, ch.Weights)
		}
	}

	for x := 0; x < dst.Width; x++ {
		col := interm[x*srcH : (x+1)*srcH]
		for dy, ch := range vchunks {
			window := col[ch.Start : ch.Start+len(ch.Weights)]
			int32Row(dst, dy)[x] = roundClampI32(ops.DotProductUnsafe(window, ch.Weights))
		}
	}
}

func roundClampI32(v float64) int32 {
	v = math.Round(v)
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
